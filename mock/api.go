package mock

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/atelier"
)

var _ atelier.API = (*API)(nil)

// API is a mock implementation of atelier.API.
type API struct {
	LoginFn    func(ctx context.Context, email, password string) (json.RawMessage, error)
	RegisterFn func(ctx context.Context, name, email, password string) (json.RawMessage, error)
	LogoutFn   func(ctx context.Context) error
	MeFn       func(ctx context.Context) (json.RawMessage, error)

	FindBlogsFn      func(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error)
	FindBlogBySlugFn func(ctx context.Context, slug string) (json.RawMessage, error)
	CreateBlogFn     func(ctx context.Context, post *atelier.BlogPost) (json.RawMessage, error)
	UpdateBlogFn     func(ctx context.Context, id string, post *atelier.BlogPost) (json.RawMessage, error)
	DeleteBlogFn     func(ctx context.Context, id string) error

	FindPortfolioFn       func(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error)
	FindPortfolioItemFn   func(ctx context.Context, id string) (json.RawMessage, error)
	CreatePortfolioItemFn func(ctx context.Context, item *atelier.PortfolioItem) (json.RawMessage, error)
	UpdatePortfolioItemFn func(ctx context.Context, id string, item *atelier.PortfolioItem) (json.RawMessage, error)
	DeletePortfolioItemFn func(ctx context.Context, id string) error

	SubmitContactFn       func(ctx context.Context, req *atelier.ContactRequest) (json.RawMessage, error)
	FindContactsFn        func(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error)
	UpdateContactStatusFn func(ctx context.Context, id, status string) (json.RawMessage, error)
	DeleteContactFn       func(ctx context.Context, id string) error

	SubmitQuoteFn       func(ctx context.Context, req *atelier.QuoteRequest) (json.RawMessage, error)
	FindQuotesFn        func(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error)
	UpdateQuoteStatusFn func(ctx context.Context, id, status string) (json.RawMessage, error)

	FindSettingsFn      func(ctx context.Context) (json.RawMessage, error)
	FindAdminSettingsFn func(ctx context.Context) (json.RawMessage, error)
	UpdateSettingsFn    func(ctx context.Context, s *atelier.Settings) (json.RawMessage, error)

	FindStatsFn   func(ctx context.Context) (json.RawMessage, error)
	UploadImageFn func(ctx context.Context, upload atelier.Upload) (json.RawMessage, error)
}

func (a *API) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	return a.LoginFn(ctx, email, password)
}

func (a *API) Register(ctx context.Context, name, email, password string) (json.RawMessage, error) {
	return a.RegisterFn(ctx, name, email, password)
}

func (a *API) Logout(ctx context.Context) error {
	return a.LogoutFn(ctx)
}

func (a *API) Me(ctx context.Context) (json.RawMessage, error) {
	return a.MeFn(ctx)
}

func (a *API) FindBlogs(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.FindBlogsFn(ctx, q)
}

func (a *API) FindBlogBySlug(ctx context.Context, slug string) (json.RawMessage, error) {
	return a.FindBlogBySlugFn(ctx, slug)
}

func (a *API) CreateBlog(ctx context.Context, post *atelier.BlogPost) (json.RawMessage, error) {
	return a.CreateBlogFn(ctx, post)
}

func (a *API) UpdateBlog(ctx context.Context, id string, post *atelier.BlogPost) (json.RawMessage, error) {
	return a.UpdateBlogFn(ctx, id, post)
}

func (a *API) DeleteBlog(ctx context.Context, id string) error {
	return a.DeleteBlogFn(ctx, id)
}

func (a *API) FindPortfolio(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.FindPortfolioFn(ctx, q)
}

func (a *API) FindPortfolioItem(ctx context.Context, id string) (json.RawMessage, error) {
	return a.FindPortfolioItemFn(ctx, id)
}

func (a *API) CreatePortfolioItem(ctx context.Context, item *atelier.PortfolioItem) (json.RawMessage, error) {
	return a.CreatePortfolioItemFn(ctx, item)
}

func (a *API) UpdatePortfolioItem(ctx context.Context, id string, item *atelier.PortfolioItem) (json.RawMessage, error) {
	return a.UpdatePortfolioItemFn(ctx, id, item)
}

func (a *API) DeletePortfolioItem(ctx context.Context, id string) error {
	return a.DeletePortfolioItemFn(ctx, id)
}

func (a *API) SubmitContact(ctx context.Context, req *atelier.ContactRequest) (json.RawMessage, error) {
	return a.SubmitContactFn(ctx, req)
}

func (a *API) FindContacts(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.FindContactsFn(ctx, q)
}

func (a *API) UpdateContactStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	return a.UpdateContactStatusFn(ctx, id, status)
}

func (a *API) DeleteContact(ctx context.Context, id string) error {
	return a.DeleteContactFn(ctx, id)
}

func (a *API) SubmitQuote(ctx context.Context, req *atelier.QuoteRequest) (json.RawMessage, error) {
	return a.SubmitQuoteFn(ctx, req)
}

func (a *API) FindQuotes(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.FindQuotesFn(ctx, q)
}

func (a *API) UpdateQuoteStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	return a.UpdateQuoteStatusFn(ctx, id, status)
}

func (a *API) FindSettings(ctx context.Context) (json.RawMessage, error) {
	return a.FindSettingsFn(ctx)
}

func (a *API) FindAdminSettings(ctx context.Context) (json.RawMessage, error) {
	return a.FindAdminSettingsFn(ctx)
}

func (a *API) UpdateSettings(ctx context.Context, s *atelier.Settings) (json.RawMessage, error) {
	return a.UpdateSettingsFn(ctx, s)
}

func (a *API) FindStats(ctx context.Context) (json.RawMessage, error) {
	return a.FindStatsFn(ctx)
}

func (a *API) UploadImage(ctx context.Context, upload atelier.Upload) (json.RawMessage, error) {
	return a.UploadImageFn(ctx, upload)
}
