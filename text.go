package atelier

import "strings"

// ExcerptLength is the maximum length of a derived blog excerpt.
const ExcerptLength = 160

// WordsPerMinute is the reading speed used for ReadingMinutes.
const WordsPerMinute = 200

// Excerpt shortens text to at most max runes, cutting at a word boundary
// and appending an ellipsis when anything was cut.
func Excerpt(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	runes := []rune(text)
	if max <= 0 || len(runes) <= max {
		return text
	}

	cut := string(runes[:max])
	if i := strings.LastIndex(cut, " "); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimRight(cut, " ,.;:") + "…"
}

// ReadingMinutes estimates the reading time of text. Non-empty text takes
// at least one minute.
func ReadingMinutes(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return (words + WordsPerMinute - 1) / WordsPerMinute
}
