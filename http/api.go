package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fwojciec/atelier"
	"github.com/tidwall/gjson"
)

// Ensure API implements atelier.API at compile time.
var _ atelier.API = (*API)(nil)

// API implements the backend endpoints on top of an atelier.Client.
// It shares the credential store with the client so that a login is
// visible to every subsequent request.
type API struct {
	client atelier.Client
	creds  atelier.CredentialStore
}

// NewAPI returns an API sending requests through client.
func NewAPI(client atelier.Client, creds atelier.CredentialStore) *API {
	return &API{client: client, creds: creds}
}

func (a *API) get(ctx context.Context, endpoint string) (json.RawMessage, error) {
	return a.client.Request(ctx, http.MethodGet, endpoint, nil)
}

func (a *API) send(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	return a.client.Request(ctx, method, endpoint, body)
}

func (a *API) delete(ctx context.Context, endpoint string) error {
	_, err := a.client.Request(ctx, http.MethodDelete, endpoint, nil)
	return err
}

func withQuery(endpoint string, q atelier.PageQuery) string {
	return endpoint + "?" + q.Values().Encode()
}

// Login authenticates an admin user and stores the returned token, if any.
func (a *API) Login(ctx context.Context, email, password string) (json.RawMessage, error) {
	raw, err := a.send(ctx, http.MethodPost, "/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if err := a.storeToken(ctx, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Register creates an admin user and stores the returned token, if any.
func (a *API) Register(ctx context.Context, name, email, password string) (json.RawMessage, error) {
	raw, err := a.send(ctx, http.MethodPost, "/auth/register", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	})
	if err != nil {
		return nil, err
	}
	if err := a.storeToken(ctx, raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Logout notifies the backend and clears the stored token. The token is
// cleared even when the backend call fails.
func (a *API) Logout(ctx context.Context) error {
	_, callErr := a.send(ctx, http.MethodPost, "/auth/logout", nil)
	if a.creds != nil {
		if err := a.creds.ClearToken(ctx); err != nil {
			return fmt.Errorf("clearing credentials: %w", err)
		}
	}
	return callErr
}

// Me returns the authenticated user.
func (a *API) Me(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "/auth/me")
}

func (a *API) storeToken(ctx context.Context, raw json.RawMessage) error {
	token := gjson.GetBytes(raw, "data.token").String()
	if token == "" {
		token = gjson.GetBytes(raw, "token").String()
	}
	if token == "" || a.creds == nil {
		return nil
	}
	if err := a.creds.SetToken(ctx, token); err != nil {
		return fmt.Errorf("storing credentials: %w", err)
	}
	return nil
}

func (a *API) FindBlogs(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.get(ctx, withQuery("/blogs", q))
}

func (a *API) FindBlogBySlug(ctx context.Context, slug string) (json.RawMessage, error) {
	return a.get(ctx, "/blogs/"+url.PathEscape(slug))
}

func (a *API) CreateBlog(ctx context.Context, post *atelier.BlogPost) (json.RawMessage, error) {
	if err := post.Validate(); err != nil {
		return nil, err
	}
	return a.send(ctx, http.MethodPost, "/blogs", post)
}

func (a *API) UpdateBlog(ctx context.Context, id string, post *atelier.BlogPost) (json.RawMessage, error) {
	return a.send(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), post)
}

func (a *API) DeleteBlog(ctx context.Context, id string) error {
	return a.delete(ctx, "/blogs/"+url.PathEscape(id))
}

func (a *API) FindPortfolio(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.get(ctx, withQuery("/portfolio", q))
}

func (a *API) FindPortfolioItem(ctx context.Context, id string) (json.RawMessage, error) {
	return a.get(ctx, "/portfolio/"+url.PathEscape(id))
}

func (a *API) CreatePortfolioItem(ctx context.Context, item *atelier.PortfolioItem) (json.RawMessage, error) {
	if err := item.Validate(); err != nil {
		return nil, err
	}
	return a.send(ctx, http.MethodPost, "/portfolio", item)
}

func (a *API) UpdatePortfolioItem(ctx context.Context, id string, item *atelier.PortfolioItem) (json.RawMessage, error) {
	return a.send(ctx, http.MethodPut, "/portfolio/"+url.PathEscape(id), item)
}

func (a *API) DeletePortfolioItem(ctx context.Context, id string) error {
	return a.delete(ctx, "/portfolio/"+url.PathEscape(id))
}

func (a *API) SubmitContact(ctx context.Context, req *atelier.ContactRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return a.send(ctx, http.MethodPost, "/contacts", req)
}

func (a *API) FindContacts(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.get(ctx, withQuery("/contacts", q))
}

func (a *API) UpdateContactStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	return a.send(ctx, http.MethodPatch, "/contacts/"+url.PathEscape(id)+"/status", map[string]string{"status": status})
}

func (a *API) DeleteContact(ctx context.Context, id string) error {
	return a.delete(ctx, "/contacts/"+url.PathEscape(id))
}

func (a *API) SubmitQuote(ctx context.Context, req *atelier.QuoteRequest) (json.RawMessage, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return a.send(ctx, http.MethodPost, "/quotes", req)
}

func (a *API) FindQuotes(ctx context.Context, q atelier.PageQuery) (json.RawMessage, error) {
	return a.get(ctx, withQuery("/quotes", q))
}

func (a *API) UpdateQuoteStatus(ctx context.Context, id, status string) (json.RawMessage, error) {
	return a.send(ctx, http.MethodPatch, "/quotes/"+url.PathEscape(id)+"/status", map[string]string{"status": status})
}

func (a *API) FindStats(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "/stats")
}

func (a *API) FindSettings(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "/settings")
}

func (a *API) FindAdminSettings(ctx context.Context) (json.RawMessage, error) {
	return a.get(ctx, "/settings/admin")
}

func (a *API) UpdateSettings(ctx context.Context, s *atelier.Settings) (json.RawMessage, error) {
	return a.send(ctx, http.MethodPut, "/settings", s)
}

// UploadImage uploads an image under the "image" form field unless the
// upload names another field.
func (a *API) UploadImage(ctx context.Context, upload atelier.Upload) (json.RawMessage, error) {
	if upload.Field == "" {
		upload.Field = "image"
	}
	return a.client.UploadFile(ctx, "/upload", upload)
}
