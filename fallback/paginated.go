package fallback

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/atelier"
)

// PageFetcher fetches one page of a list endpoint.
type PageFetcher func(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error)

// PageState is a snapshot of a Paginated engine.
type PageState[T any] struct {
	Items         []T
	Pagination    atelier.Pagination
	IsLoading     bool
	IsFromAPI     bool
	Err           *atelier.APIError
	IsInitialized bool
}

// Paginated is an engine keyed by a page query.
type Paginated[T any] struct {
	engine *Engine[atelier.Page[T]]
	fetch  PageFetcher
}

// NewPaginated starts an engine for the page selected by q. The fallback
// items are reported as a single page when the engine has no API data.
// transform maps the raw response onto a page; a nil transform decodes the
// response as a JSON page.
func NewPaginated[T any](ctx context.Context, q atelier.PageQuery, fetch PageFetcher, fallback []T, transform func(json.RawMessage) atelier.Page[T], opts ...Option) *Paginated[T] {
	if transform != nil {
		opts = append(opts, WithTransform(transform))
	}
	p := &Paginated[T]{fetch: fetch}
	initial := atelier.Page[T]{Items: fallback, Pagination: atelier.SinglePage(len(fallback))}
	p.engine = New(ctx, q.Key(), p.bind(q), initial, opts...)
	return p
}

// SetQuery switches to another page or filter set. Equal queries are a
// no-op.
func (p *Paginated[T]) SetQuery(q atelier.PageQuery) {
	p.engine.SetKey(q.Key(), p.bind(q))
}

// State returns the current snapshot.
func (p *Paginated[T]) State() PageState[T] {
	return pageState(p.engine.State())
}

// Wait blocks until the current fetch cycle has settled or ctx is done.
func (p *Paginated[T]) Wait(ctx context.Context) (PageState[T], error) {
	s, err := p.engine.Wait(ctx)
	return pageState(s), err
}

// Changed returns a channel that is closed on the next state transition.
func (p *Paginated[T]) Changed() <-chan struct{} {
	return p.engine.Changed()
}

// Refetch starts a new cycle for the current query.
func (p *Paginated[T]) Refetch() {
	p.engine.Refetch()
}

// Close stops the engine.
func (p *Paginated[T]) Close() {
	p.engine.Close()
}

func (p *Paginated[T]) bind(q atelier.PageQuery) Fetcher {
	q = q.Normalize()
	return func(ctx context.Context) (json.RawMessage, error) {
		return p.fetch(ctx, q)
	}
}

func pageState[T any](s State[atelier.Page[T]]) PageState[T] {
	items := s.Data.Items
	if items == nil {
		items = []T{}
	}
	pagination := s.Data.Pagination
	if pagination.IsZero() {
		pagination = atelier.SinglePage(len(items))
	}
	return PageState[T]{
		Items:         items,
		Pagination:    pagination,
		IsLoading:     s.IsLoading,
		IsFromAPI:     s.IsFromAPI,
		Err:           s.Err,
		IsInitialized: s.IsInitialized,
	}
}
