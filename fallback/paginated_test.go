package fallback_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/fallback"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settlePage[T any](t *testing.T, p *fallback.Paginated[T]) fallback.PageState[T] {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()
	s, err := p.Wait(ctx)
	require.NoError(t, err, "engine did not settle")
	return s
}

func namesPage(raw json.RawMessage) atelier.Page[string] {
	var v struct {
		Names      []string           `json:"names"`
		Pagination atelier.Pagination `json:"pagination"`
	}
	_ = json.Unmarshal(raw, &v)
	return atelier.Page[string]{Items: v.Names, Pagination: v.Pagination}
}

func TestPaginated(t *testing.T) {
	t.Parallel()

	t.Run("reports fallback items as a single page", func(t *testing.T) {
		t.Parallel()

		fetch := func(context.Context, atelier.PageQuery) (json.RawMessage, error) {
			return nil, serverError()
		}

		p := fallback.NewPaginated(context.Background(), atelier.PageQuery{}, fetch,
			[]string{"a", "b", "c"}, namesPage, fallback.WithRetry(false))
		defer p.Close()

		s := settlePage(t, p)
		assert.Equal(t, []string{"a", "b", "c"}, s.Items)
		assert.Equal(t, atelier.Pagination{Page: 1, Limit: 10, Total: 3, Pages: 1}, s.Pagination)
		assert.False(t, s.IsFromAPI)
		require.NotNil(t, s.Err)
		assert.True(t, s.IsInitialized)
	})

	t.Run("exposes API items and pagination", func(t *testing.T) {
		t.Parallel()

		fetch := func(context.Context, atelier.PageQuery) (json.RawMessage, error) {
			return json.RawMessage(`{"names":["x","y"],"pagination":{"page":2,"limit":2,"total":9,"pages":5}}`), nil
		}

		p := fallback.NewPaginated(context.Background(), atelier.PageQuery{Page: 2, Limit: 2}, fetch,
			[]string{"a"}, namesPage)
		defer p.Close()

		s := settlePage(t, p)
		assert.Equal(t, []string{"x", "y"}, s.Items)
		assert.Equal(t, atelier.Pagination{Page: 2, Limit: 2, Total: 9, Pages: 5}, s.Pagination)
		assert.True(t, s.IsFromAPI)
	})

	t.Run("defaults missing pagination", func(t *testing.T) {
		t.Parallel()

		fetch := func(context.Context, atelier.PageQuery) (json.RawMessage, error) {
			return json.RawMessage(`{"names":["x","y"]}`), nil
		}

		p := fallback.NewPaginated(context.Background(), atelier.PageQuery{}, fetch, nil, namesPage)
		defer p.Close()

		s := settlePage(t, p)
		assert.Equal(t, atelier.SinglePage(2), s.Pagination)
	})

	t.Run("decodes a JSON page without a transform", func(t *testing.T) {
		t.Parallel()

		fetch := func(context.Context, atelier.PageQuery) (json.RawMessage, error) {
			return json.RawMessage(`{"items":["x"],"pagination":{"page":1,"limit":1,"total":4,"pages":4}}`), nil
		}

		p := fallback.NewPaginated[string](context.Background(), atelier.PageQuery{}, fetch, nil, nil)
		defer p.Close()

		s := settlePage(t, p)
		assert.Equal(t, []string{"x"}, s.Items)
		assert.Equal(t, 4, s.Pagination.Pages)
	})

	t.Run("refetches when the query changes", func(t *testing.T) {
		t.Parallel()

		var mu sync.Mutex
		var queries []atelier.PageQuery
		fetch := func(_ context.Context, q atelier.PageQuery) (json.RawMessage, error) {
			mu.Lock()
			queries = append(queries, q)
			mu.Unlock()
			return json.RawMessage(`{"names":["x"]}`), nil
		}

		p := fallback.NewPaginated(context.Background(), atelier.PageQuery{}, fetch, nil, namesPage)
		defer p.Close()
		settlePage(t, p)

		// Normalizes to the same query.
		p.SetQuery(atelier.PageQuery{Page: 1, Limit: 10})
		settlePage(t, p)

		p.SetQuery(atelier.PageQuery{Page: 2, Filters: map[string]string{"category": "kitchen"}})
		settlePage(t, p)

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, queries, 2)
		assert.Equal(t, atelier.PageQuery{Page: 1, Limit: 10}, queries[0])
		assert.Equal(t, 2, queries[1].Page)
		assert.Equal(t, 10, queries[1].Limit)
		assert.Equal(t, "kitchen", queries[1].Filters["category"])
	})

	t.Run("passes the page to success callbacks", func(t *testing.T) {
		t.Parallel()

		var got atelier.Page[string]
		fetch := func(context.Context, atelier.PageQuery) (json.RawMessage, error) {
			return json.RawMessage(`{"names":["x"]}`), nil
		}

		p := fallback.NewPaginated(context.Background(), atelier.PageQuery{}, fetch, nil, namesPage,
			fallback.OnSuccess(func(page atelier.Page[string]) { got = page }))
		defer p.Close()

		settlePage(t, p)
		assert.Equal(t, []string{"x"}, got.Items)
	})
}
