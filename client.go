package atelier

import (
	"context"
	"encoding/json"
	"io"
)

// Client performs single calls against the studio backend and classifies
// their outcome. A Client never retries; retrying is the fetch engine's job.
type Client interface {
	// Request sends a JSON request and returns the raw JSON response body.
	// A nil body sends no payload. Failures are returned as *APIError.
	Request(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error)

	// UploadFile sends a multipart form and returns the raw JSON response body.
	UploadFile(ctx context.Context, endpoint string, upload Upload) (json.RawMessage, error)
}

// Upload is a single file sent as a multipart form.
type Upload struct {
	// Field is the form field name of the file part.
	Field    string
	Filename string
	Content  io.Reader

	// Fields are extra form values sent alongside the file.
	Fields map[string]string
}

// CredentialStore holds the bearer token used to authenticate requests.
// It is a single slot: written on login or register, cleared on logout,
// read on every request.
type CredentialStore interface {
	// Token returns the stored token, or "" when none is stored.
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	ClearToken(ctx context.Context) error
}
