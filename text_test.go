package atelier_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/atelier"
	"github.com/stretchr/testify/assert"
)

func TestExcerpt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		max  int
		want string
	}{
		{"short text is kept", "Calm rooms.", 20, "Calm rooms."},
		{"whitespace is collapsed", "  Calm\n\trooms  ", 20, "Calm rooms"},
		{"cut at word boundary", "Warm minimalism keeps rooms calm", 20, "Warm minimalism…"},
		{"trailing punctuation dropped", "Oak, clay, linen and stone", 10, "Oak…"},
		{"no limit", "Warm minimalism keeps rooms calm", 0, "Warm minimalism keeps rooms calm"},
		{"counts runes", "Café café café", 9, "Café…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, atelier.Excerpt(tt.text, tt.max))
		})
	}
}

func TestReadingMinutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, atelier.ReadingMinutes("   "))
	assert.Equal(t, 1, atelier.ReadingMinutes("one word"))
	assert.Equal(t, 1, atelier.ReadingMinutes(strings.Repeat("word ", atelier.WordsPerMinute)))
	assert.Equal(t, 2, atelier.ReadingMinutes(strings.Repeat("word ", atelier.WordsPerMinute+1)))
}
