// Package http provides the HTTP implementation of atelier.Client and the
// studio backend's REST endpoints on top of it.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/atelier"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultTimeout is the default timeout for backend requests.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements atelier.Client at compile time.
var _ atelier.Client = (*Client)(nil)

// Client sends JSON requests to the studio backend. It attaches the bearer
// token held by its credential store and turns every failure into an
// *atelier.APIError. It performs no retries.
type Client struct {
	baseURL string
	creds   atelier.CredentialStore
	client  *http.Client
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. WithTimeout is
// ignored when a client is supplied.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// WithRateLimit limits outgoing requests to rps per second with no bursting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a Client for the backend at baseURL. A nil creds sends
// unauthenticated requests only.
func NewClient(baseURL string, creds atelier.CredentialStore, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		creds:   creds,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{
			Timeout: c.timeout,
		}
	}

	return c
}

// Request sends a JSON request to endpoint and returns the response body.
func (c *Client) Request(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+endpoint, r)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

// UploadFile sends upload as a multipart form. The Content-Type carries the
// multipart boundary instead of application/json.
func (c *Client) UploadFile(ctx context.Context, endpoint string, upload atelier.Upload) (json.RawMessage, error) {
	if upload.Content == nil {
		return nil, atelier.Errorf(atelier.EINVALID, "upload content required")
	}
	field := upload.Field
	if field == "" {
		field = "file"
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range upload.Fields {
		if err := mw.WriteField(k, v); err != nil {
			return nil, fmt.Errorf("writing form field %q: %w", k, err)
		}
	}
	part, err := mw.CreateFormFile(field, upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := io.Copy(part, upload.Content); err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("closing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req)
}

func (c *Client) do(req *http.Request) (json.RawMessage, error) {
	ctx := req.Context()

	if c.creds != nil {
		token, err := c.creds.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("reading credentials: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, networkError(err)
		}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, networkError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, networkError(err)
	}

	ok := resp.StatusCode >= 200 && resp.StatusCode < 300
	if !json.Valid(body) {
		if ok {
			return nil, networkError(fmt.Errorf("decoding response from %s: invalid JSON", req.URL.Path))
		}
		return nil, &atelier.APIError{
			Message: http.StatusText(resp.StatusCode),
			Status:  resp.StatusCode,
			Data:    body,
		}
	}

	if !ok {
		return nil, responseError(resp.StatusCode, body)
	}
	return body, nil
}

// envelope is the backend's response wrapper.
type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Errors  json.RawMessage `json:"errors"`
}

func responseError(status int, body []byte) *atelier.APIError {
	var env envelope
	_ = json.Unmarshal(body, &env)

	msg := env.Message
	if msg == "" {
		msg = "An error occurred"
	}
	return &atelier.APIError{
		Message: msg,
		Status:  status,
		Data:    body,
		Errors:  env.Errors,
	}
}

func networkError(err error) *atelier.APIError {
	return &atelier.APIError{Message: "Network error", Status: 0, Cause: err}
}
