package fallback

import (
	"encoding/json"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/fwojciec/atelier"
)

// Retry defaults.
const (
	DefaultRetryDelay = 5 * time.Second
	DefaultMaxRetries = 3
)

// Option configures an engine.
type Option func(*config)

type config struct {
	retry       bool
	delay       time.Duration
	maxRetries  int
	exponential bool
	logger      *slog.Logger

	// transform and onSuccess hold typed funcs checked against the
	// engine's data type in New.
	transform any
	onSuccess any
	onError   func(*atelier.APIError)
}

func newConfig(opts []Option) config {
	c := config{
		retry:      true,
		delay:      DefaultRetryDelay,
		maxRetries: DefaultMaxRetries,
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	return c
}

// WithRetry enables or disables automatic retries. Enabled by default.
func WithRetry(enabled bool) Option {
	return func(c *config) {
		c.retry = enabled
	}
}

// WithRetryDelay sets the delay between a failed attempt and its retry.
// Defaults to DefaultRetryDelay (5s).
func WithRetryDelay(d time.Duration) Option {
	return func(c *config) {
		if d >= 0 {
			c.delay = d
		}
	}
}

// WithMaxRetries bounds the number of retries after the initial attempt.
// Defaults to DefaultMaxRetries (3).
func WithMaxRetries(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.maxRetries = n
		}
	}
}

// WithExponentialBackoff doubles the delay after every retry, starting
// from the retry delay. Retries are still bounded by WithMaxRetries.
func WithExponentialBackoff() Option {
	return func(c *config) {
		c.exponential = true
	}
}

// WithLogger logs attempts, failures and discarded results.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithTransform maps the raw response onto the engine's data type. Without
// a transform the response is decoded as JSON. T must match the engine's
// data type; New panics otherwise.
func WithTransform[T any](fn func(raw json.RawMessage) T) Option {
	return func(c *config) {
		c.transform = fn
	}
}

// OnSuccess is called with the transformed data after every successful
// fetch. T must match the engine's data type; New panics otherwise.
func OnSuccess[T any](fn func(data T)) Option {
	return func(c *config) {
		c.onSuccess = fn
	}
}

// OnError is called after every failed attempt, including attempts that
// will be retried.
func OnError(fn func(err *atelier.APIError)) Option {
	return func(c *config) {
		c.onError = fn
	}
}

// newBackOff returns the retry schedule for one fetch cycle.
func (c config) newBackOff() backoff.BackOff {
	var b backoff.BackOff = backoff.NewConstantBackOff(c.delay)
	if c.exponential {
		eb := backoff.NewExponentialBackOff()
		eb.InitialInterval = c.delay
		eb.RandomizationFactor = 0
		eb.Multiplier = 2
		eb.MaxInterval = max(eb.MaxInterval, c.delay)
		eb.MaxElapsedTime = 0
		eb.Reset()
		b = eb
	}
	return backoff.WithMaxRetries(b, uint64(c.maxRetries))
}
