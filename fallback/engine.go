// Package fallback implements a fetch-with-fallback engine.
//
// An Engine always holds displayable data: the fallback until a fetch
// succeeds, the fetched data afterwards, and the fallback again whenever an
// attempt fails. Failed attempts are retried on a bounded schedule. All
// transitions happen on a single goroutine owned by the engine; results and
// timers belonging to a superseded key or refetch are discarded.
package fallback

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fwojciec/atelier"
)

// Fetcher performs one network attempt. It must honor ctx, which is
// cancelled when the attempt's result is no longer wanted.
type Fetcher func(ctx context.Context) (json.RawMessage, error)

// State is a snapshot of an engine.
//
// Data is never missing: it holds the fallback whenever IsFromAPI is false.
// IsLoading false implies IsInitialized true.
type State[T any] struct {
	Data          T
	IsLoading     bool
	IsFromAPI     bool
	Err           *atelier.APIError
	IsInitialized bool
}

// Settled reports whether the current fetch cycle has finished.
func (s State[T]) Settled() bool {
	return !s.IsLoading
}

type keyChanged struct {
	key   string
	fetch Fetcher
	done  chan struct{}
}

type refetchRequested struct {
	done chan struct{}
}

type fetchSettled struct {
	gen uint64
	raw json.RawMessage
	err error
}

type retryDue struct {
	gen uint64
}

// Engine fetches data for a key and exposes it with a fallback.
//
// Callbacks run on the engine goroutine before the transition they report
// is published, so a settled Wait has observed them. They may read State but
// must not call SetKey, Refetch or Close synchronously.
type Engine[T any] struct {
	fallback  T
	cfg       config
	transform func(json.RawMessage) T
	onSuccess func(T)
	logger    *slog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	events chan any
	done   chan struct{}

	mu      sync.RWMutex
	state   State[T]
	changed chan struct{}

	// Owned by the loop goroutine.
	key      string
	fetch    Fetcher
	gen      uint64
	attempt  int
	policy   backoff.BackOff
	inflight context.CancelFunc
	timer    *time.Timer
}

// New starts an engine for key and immediately begins the first attempt.
// The engine stops when ctx is cancelled or Close is called.
//
// New panics if a typed option does not match T.
func New[T any](ctx context.Context, key string, fetch Fetcher, fallback T, opts ...Option) *Engine[T] {
	cfg := newConfig(opts)

	e := &Engine[T]{
		fallback: fallback,
		cfg:      cfg,
		logger:   cfg.logger,
		events:   make(chan any),
		done:     make(chan struct{}),
		changed:  make(chan struct{}),
		state:    State[T]{Data: fallback, IsLoading: true},
		key:      key,
		fetch:    fetch,
	}
	if cfg.transform != nil {
		fn, ok := cfg.transform.(func(json.RawMessage) T)
		if !ok {
			panic(fmt.Sprintf("fallback: transform %T does not produce %T", cfg.transform, fallback))
		}
		e.transform = fn
	}
	if cfg.onSuccess != nil {
		fn, ok := cfg.onSuccess.(func(T))
		if !ok {
			panic(fmt.Sprintf("fallback: success callback %T does not accept %T", cfg.onSuccess, fallback))
		}
		e.onSuccess = fn
	}

	e.ctx, e.cancel = context.WithCancel(ctx)
	go e.run()
	return e
}

// State returns the current snapshot.
func (e *Engine[T]) State() State[T] {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.state
}

// Changed returns a channel that is closed on the next state transition.
// Call it before State to avoid missing a transition.
func (e *Engine[T]) Changed() <-chan struct{} {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.changed
}

// Wait blocks until the current fetch cycle has settled or ctx is done.
func (e *Engine[T]) Wait(ctx context.Context) (State[T], error) {
	for {
		ch := e.Changed()
		s := e.State()
		if s.Settled() {
			return s, nil
		}
		select {
		case <-ch:
		case <-ctx.Done():
			return s, ctx.Err()
		}
	}
}

// SetKey switches the engine to a new key. The same key is a no-op; a
// different key resets the data to the fallback and starts a new cycle.
// SetKey returns once the transition has been applied.
func (e *Engine[T]) SetKey(key string, fetch Fetcher) {
	done := make(chan struct{})
	if e.post(keyChanged{key: key, fetch: fetch, done: done}) {
		e.await(done)
	}
}

// Refetch discards pending retries and starts a new cycle for the current
// key. Data is kept until the new cycle settles.
func (e *Engine[T]) Refetch() {
	done := make(chan struct{})
	if e.post(refetchRequested{done: done}) {
		e.await(done)
	}
}

// Close cancels any in-flight attempt and pending retry and stops the
// engine. It is safe to call more than once.
func (e *Engine[T]) Close() {
	e.cancel()
	<-e.done
}

func (e *Engine[T]) post(ev any) bool {
	select {
	case e.events <- ev:
		return true
	case <-e.ctx.Done():
		return false
	}
}

func (e *Engine[T]) await(done <-chan struct{}) {
	select {
	case <-done:
	case <-e.done:
	}
}

func (e *Engine[T]) run() {
	defer close(e.done)
	defer e.shutdown()

	e.begin()
	for {
		select {
		case <-e.ctx.Done():
			return
		case ev := <-e.events:
			e.handle(ev)
		}
	}
}

func (e *Engine[T]) handle(ev any) {
	switch ev := ev.(type) {
	case keyChanged:
		if ev.key != e.key {
			e.logger.Debug("key changed", "from", e.key, "to", ev.key)
			e.key, e.fetch = ev.key, ev.fetch
			e.set(State[T]{Data: e.fallback, IsLoading: true})
			e.begin()
		}
		close(ev.done)
	case refetchRequested:
		e.logger.Debug("refetch requested", "key", e.key)
		e.update(func(s *State[T]) {
			s.IsInitialized = false
			s.IsLoading = true
		})
		e.begin()
		close(ev.done)
	case fetchSettled:
		if ev.gen != e.gen {
			e.logger.Debug("discarding stale result", "key", e.key)
			return
		}
		e.settle(ev)
	case retryDue:
		if ev.gen != e.gen {
			return
		}
		e.timer = nil
		e.attempt++
		e.launch()
	}
}

// begin starts a new fetch cycle, superseding the previous one.
func (e *Engine[T]) begin() {
	e.stop()
	e.gen++
	e.attempt = 0
	e.policy = e.cfg.newBackOff()
	e.launch()
}

func (e *Engine[T]) stop() {
	if e.inflight != nil {
		e.inflight()
		e.inflight = nil
	}
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

func (e *Engine[T]) launch() {
	ctx, cancel := context.WithCancel(e.ctx)
	e.inflight = cancel
	gen, fetch := e.gen, e.fetch

	e.logger.Debug("fetch attempt", "key", e.key, "attempt", e.attempt)
	go func() {
		var (
			raw json.RawMessage
			err = errors.New("fallback: no fetcher")
		)
		if fetch != nil {
			raw, err = fetch(ctx)
		}
		e.post(fetchSettled{gen: gen, raw: raw, err: err})
	}()
}

func (e *Engine[T]) settle(ev fetchSettled) {
	if e.inflight != nil {
		e.inflight()
		e.inflight = nil
	}

	err := ev.err
	var data T
	if err == nil {
		data, err = e.decode(ev.raw)
	}
	if err == nil {
		if e.onSuccess != nil {
			e.onSuccess(data)
		}
		e.set(State[T]{Data: data, IsFromAPI: true, IsInitialized: true})
		return
	}

	apiErr := atelier.ToAPIError(err)
	delay := backoff.Stop
	if e.cfg.retry && !apiErr.IsMissingIdentifier() {
		delay = e.policy.NextBackOff()
	}
	retrying := delay != backoff.Stop

	if e.cfg.onError != nil {
		e.cfg.onError(apiErr)
	}
	e.update(func(s *State[T]) {
		s.Data = e.fallback
		s.IsFromAPI = false
		s.Err = apiErr
		s.IsLoading = retrying
		if !retrying {
			s.IsInitialized = true
		}
	})

	if !retrying {
		e.logger.Info("using fallback data", "key", e.key, "attempts", e.attempt+1, "error", apiErr)
		return
	}
	e.logger.Warn("fetch failed, retrying", "key", e.key, "attempt", e.attempt, "delay", delay, "error", apiErr)
	gen := e.gen
	e.timer = time.AfterFunc(delay, func() {
		e.post(retryDue{gen: gen})
	})
}

func (e *Engine[T]) decode(raw json.RawMessage) (T, error) {
	if e.transform != nil {
		return e.transform(raw), nil
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("decoding response: %w", err)
	}
	return v, nil
}

// shutdown runs when the loop exits. A cycle interrupted by cancellation
// settles with whatever data it holds.
func (e *Engine[T]) shutdown() {
	e.stop()
	if e.State().IsLoading {
		e.update(func(s *State[T]) {
			s.IsLoading = false
			s.IsInitialized = true
		})
	}
}

func (e *Engine[T]) set(s State[T]) {
	e.update(func(st *State[T]) {
		*st = s
	})
}

func (e *Engine[T]) update(fn func(*State[T])) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.state)
	close(e.changed)
	e.changed = make(chan struct{})
}
