package fallback

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/atelier"
)

// ItemFetcher fetches a single entity by identifier.
type ItemFetcher func(ctx context.Context, id string) (json.RawMessage, error)

// Item is an engine keyed by an entity identifier. An empty identifier
// settles on the fallback without a network call.
type Item[T any] struct {
	*Engine[T]
	fetch ItemFetcher
}

// NewItem starts an engine for the entity identified by id.
func NewItem[T any](ctx context.Context, id string, fetch ItemFetcher, fallback T, opts ...Option) *Item[T] {
	it := &Item[T]{fetch: fetch}
	it.Engine = New(ctx, id, it.bind(id), fallback, opts...)
	return it
}

// SetID switches to another entity.
func (it *Item[T]) SetID(id string) {
	it.SetKey(id, it.bind(id))
}

func (it *Item[T]) bind(id string) Fetcher {
	return func(ctx context.Context) (json.RawMessage, error) {
		if id == "" {
			return nil, atelier.MissingIdentifierError()
		}
		return it.fetch(ctx, id)
	}
}
