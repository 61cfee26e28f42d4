package atelier

import (
	"context"
	"encoding/json"
)

// The services below describe the backend endpoints. Read methods return
// the raw JSON response so the fetch engine can run a Transformer over it.

// AuthService authenticates admin users.
type AuthService interface {
	// Login stores the returned token in the credential store on success.
	Login(ctx context.Context, email, password string) (json.RawMessage, error)

	// Register stores the returned token in the credential store on success.
	Register(ctx context.Context, name, email, password string) (json.RawMessage, error)

	// Logout clears the credential store even if the backend call fails.
	Logout(ctx context.Context) error

	Me(ctx context.Context) (json.RawMessage, error)
}

// BlogService manages blog posts.
type BlogService interface {
	FindBlogs(ctx context.Context, q PageQuery) (json.RawMessage, error)
	FindBlogBySlug(ctx context.Context, slug string) (json.RawMessage, error)
	CreateBlog(ctx context.Context, post *BlogPost) (json.RawMessage, error)
	UpdateBlog(ctx context.Context, id string, post *BlogPost) (json.RawMessage, error)
	DeleteBlog(ctx context.Context, id string) error
}

// PortfolioService manages portfolio items.
type PortfolioService interface {
	FindPortfolio(ctx context.Context, q PageQuery) (json.RawMessage, error)
	FindPortfolioItem(ctx context.Context, id string) (json.RawMessage, error)
	CreatePortfolioItem(ctx context.Context, item *PortfolioItem) (json.RawMessage, error)
	UpdatePortfolioItem(ctx context.Context, id string, item *PortfolioItem) (json.RawMessage, error)
	DeletePortfolioItem(ctx context.Context, id string) error
}

// ContactService manages contact form submissions.
type ContactService interface {
	SubmitContact(ctx context.Context, req *ContactRequest) (json.RawMessage, error)
	FindContacts(ctx context.Context, q PageQuery) (json.RawMessage, error)
	UpdateContactStatus(ctx context.Context, id, status string) (json.RawMessage, error)
	DeleteContact(ctx context.Context, id string) error
}

// QuoteService manages quote requests.
type QuoteService interface {
	SubmitQuote(ctx context.Context, req *QuoteRequest) (json.RawMessage, error)
	FindQuotes(ctx context.Context, q PageQuery) (json.RawMessage, error)
	UpdateQuoteStatus(ctx context.Context, id, status string) (json.RawMessage, error)
}

// SettingsService reads and writes site settings.
type SettingsService interface {
	FindSettings(ctx context.Context) (json.RawMessage, error)
	FindAdminSettings(ctx context.Context) (json.RawMessage, error)
	UpdateSettings(ctx context.Context, s *Settings) (json.RawMessage, error)
}

// API is the complete backend surface.
type API interface {
	AuthService
	BlogService
	PortfolioService
	ContactService
	QuoteService
	SettingsService

	// FindStats returns the home page figures.
	FindStats(ctx context.Context) (json.RawMessage, error)

	// UploadImage uploads an image and returns the response holding its URL.
	UploadImage(ctx context.Context, upload Upload) (json.RawMessage, error)
}

// Transformer maps raw backend responses onto domain types.
// Every method is pure and total: it never panics or fails, and degrades
// missing or malformed fields to zero values.
type Transformer interface {
	Blogs(raw json.RawMessage) []BlogPost
	BlogPage(raw json.RawMessage) Page[BlogPost]
	// Blog returns nil when the response holds no post.
	Blog(raw json.RawMessage) *BlogPost

	Portfolio(raw json.RawMessage) []PortfolioItem
	PortfolioPage(raw json.RawMessage) Page[PortfolioItem]
	// SinglePortfolio returns nil when the response holds no item.
	SinglePortfolio(raw json.RawMessage) *PortfolioItem

	Stats(raw json.RawMessage) Stats
	Testimonials(raw json.RawMessage) []Testimonial
	Settings(raw json.RawMessage) Settings

	ContactPage(raw json.RawMessage) Page[Contact]
	QuotePage(raw json.RawMessage) Page[Quote]
}
