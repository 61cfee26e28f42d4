// Package site wires backend endpoints, transforms and demo content into
// fetch-with-fallback engines, one per page resource.
package site

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/fallback"
	atslog "github.com/fwojciec/atelier/slog"
)

// TestimonialSource selects the contacts testimonials are drawn from.
var TestimonialSource = atelier.PageQuery{Page: 1, Limit: 100}

// FeaturedPortfolio selects the projects shown on the home page.
var FeaturedPortfolio = atelier.PageQuery{Page: 1, Limit: 6, Filters: map[string]string{"featured": "true"}}

// RetryConfig tunes engine retries. Zero values select the engine defaults.
type RetryConfig struct {
	Disabled    bool          `yaml:"disabled"`
	Delay       time.Duration `yaml:"delay"`
	MaxRetries  int           `yaml:"max_retries"`
	Exponential bool          `yaml:"exponential"`
}

func (c RetryConfig) options() []fallback.Option {
	var opts []fallback.Option
	if c.Disabled {
		opts = append(opts, fallback.WithRetry(false))
	}
	if c.Delay > 0 {
		opts = append(opts, fallback.WithRetryDelay(c.Delay))
	}
	if c.MaxRetries > 0 {
		opts = append(opts, fallback.WithMaxRetries(c.MaxRetries))
	}
	if c.Exponential {
		opts = append(opts, fallback.WithExponentialBackoff())
	}
	return opts
}

// Loader starts engines for the site's resources. Every engine it returns
// must be closed by the caller.
type Loader struct {
	API       atelier.API
	Transform atelier.Transformer
	Logger    *slog.Logger
	Retry     RetryConfig
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l.Logger
}

func (l *Loader) options(resource string, extra ...fallback.Option) []fallback.Option {
	opts := append(l.Retry.options(),
		fallback.WithLogger(l.logger().With("resource", resource)),
		fallback.OnError(atslog.ErrorHook(l.logger(), resource)),
	)
	return append(opts, extra...)
}

// PublicSettings loads the public site settings once.
func (l *Loader) PublicSettings(ctx context.Context) *fallback.Engine[atelier.Settings] {
	return fallback.New(ctx, "", l.API.FindSettings, FallbackSettings, l.options("settings",
		fallback.WithTransform(l.Transform.Settings),
		fallback.OnSuccess(atslog.SuccessHook[atelier.Settings](l.logger(), "settings")),
	)...)
}

// AdminSettings loads the admin settings once. Requires a stored token.
func (l *Loader) AdminSettings(ctx context.Context) *fallback.Engine[atelier.Settings] {
	return fallback.New(ctx, "", l.API.FindAdminSettings, FallbackAdminSettings, l.options("admin settings",
		fallback.WithTransform(l.Transform.Settings),
		fallback.OnSuccess(atslog.SuccessHook[atelier.Settings](l.logger(), "admin settings")),
	)...)
}

func (l *Loader) Blogs(ctx context.Context, q atelier.PageQuery) *fallback.Paginated[atelier.BlogPost] {
	return fallback.NewPaginated(ctx, q, l.API.FindBlogs, FallbackBlogPosts, l.Transform.BlogPage, l.options("blogs")...)
}

// BlogPost loads a post by slug. The fallback is the demo post with the
// same slug, or nil.
func (l *Loader) BlogPost(ctx context.Context, slug string) *fallback.Item[*atelier.BlogPost] {
	return fallback.NewItem(ctx, slug, l.API.FindBlogBySlug, FallbackBlogPost(slug), l.options("blog post",
		fallback.WithTransform(l.Transform.Blog),
	)...)
}

func (l *Loader) Portfolio(ctx context.Context, q atelier.PageQuery) *fallback.Paginated[atelier.PortfolioItem] {
	return fallback.NewPaginated(ctx, q, l.API.FindPortfolio, FallbackPortfolio, l.Transform.PortfolioPage, l.options("portfolio")...)
}

// PortfolioItem loads a project by id. The fallback is the demo project
// with the same id or slug, or nil.
func (l *Loader) PortfolioItem(ctx context.Context, id string) *fallback.Item[*atelier.PortfolioItem] {
	return fallback.NewItem(ctx, id, l.API.FindPortfolioItem, FallbackPortfolioItem(id), l.options("portfolio item",
		fallback.WithTransform(l.Transform.SinglePortfolio),
	)...)
}

func (l *Loader) Stats(ctx context.Context) *fallback.Engine[atelier.Stats] {
	return fallback.New(ctx, "", l.API.FindStats, FallbackStats, l.options("stats",
		fallback.WithTransform(l.Transform.Stats),
	)...)
}

// Testimonials derives testimonials from rated contacts.
func (l *Loader) Testimonials(ctx context.Context) *fallback.Engine[[]atelier.Testimonial] {
	fetch := func(ctx context.Context) (json.RawMessage, error) {
		return l.API.FindContacts(ctx, TestimonialSource)
	}
	return fallback.New(ctx, "", fetch, FallbackTestimonials, l.options("testimonials",
		fallback.WithTransform(l.Transform.Testimonials),
	)...)
}

// Contacts lists contact submissions. There is no demo content.
func (l *Loader) Contacts(ctx context.Context, q atelier.PageQuery) *fallback.Paginated[atelier.Contact] {
	return fallback.NewPaginated(ctx, q, l.API.FindContacts, []atelier.Contact{}, l.Transform.ContactPage, l.options("contacts")...)
}

// Quotes lists quote requests. There is no demo content.
func (l *Loader) Quotes(ctx context.Context, q atelier.PageQuery) *fallback.Paginated[atelier.Quote] {
	return fallback.NewPaginated(ctx, q, l.API.FindQuotes, []atelier.Quote{}, l.Transform.QuotePage, l.options("quotes")...)
}
