package fallback_test

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/fallback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type post struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

func TestItem(t *testing.T) {
	t.Parallel()

	t.Run("fetches by identifier", func(t *testing.T) {
		t.Parallel()

		fetch := func(_ context.Context, id string) (json.RawMessage, error) {
			return json.Marshal(post{Slug: id, Title: "Live " + id})
		}

		it := fallback.NewItem(context.Background(), "warm-minimalism", fetch, post{Title: "Fallback"})
		defer it.Close()

		s := settle(t, it.Engine)
		assert.Equal(t, post{Slug: "warm-minimalism", Title: "Live warm-minimalism"}, s.Data)
		assert.True(t, s.IsFromAPI)
	})

	t.Run("empty identifier settles without a network call", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int32
		fetch := func(context.Context, string) (json.RawMessage, error) {
			calls.Add(1)
			return json.RawMessage(`{}`), nil
		}

		it := fallback.NewItem(context.Background(), "", fetch, post{Title: "Fallback"})
		defer it.Close()

		s := settle(t, it.Engine)
		assert.Equal(t, post{Title: "Fallback"}, s.Data)
		assert.False(t, s.IsFromAPI)
		assert.True(t, s.IsInitialized)
		require.NotNil(t, s.Err)
		assert.True(t, s.Err.IsMissingIdentifier())
		assert.Equal(t, "No identifier provided", s.Err.Message)
		assert.Equal(t, int32(0), calls.Load())
	})

	t.Run("switches identifiers", func(t *testing.T) {
		t.Parallel()

		fetch := func(_ context.Context, id string) (json.RawMessage, error) {
			if id == "missing" {
				return nil, &atelier.APIError{Message: "Not found", Status: 404}
			}
			return json.Marshal(post{Slug: id})
		}

		it := fallback.NewItem(context.Background(), "", fetch, post{Title: "Fallback"},
			fallback.WithRetry(false))
		defer it.Close()
		settle(t, it.Engine)

		it.SetID("a")
		assert.Equal(t, "a", settle(t, it.Engine).Data.Slug)

		it.SetID("missing")
		s := settle(t, it.Engine)
		assert.Equal(t, post{Title: "Fallback"}, s.Data)
		require.NotNil(t, s.Err)
		assert.True(t, s.Err.IsNotFound())
	})
}
