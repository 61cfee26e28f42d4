package mock

import (
	"context"
	"encoding/json"

	"github.com/fwojciec/atelier"
)

var _ atelier.Client = (*Client)(nil)

// Client is a mock implementation of atelier.Client.
type Client struct {
	RequestFn    func(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error)
	UploadFileFn func(ctx context.Context, endpoint string, upload atelier.Upload) (json.RawMessage, error)
}

func (c *Client) Request(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	return c.RequestFn(ctx, method, endpoint, body)
}

func (c *Client) UploadFile(ctx context.Context, endpoint string, upload atelier.Upload) (json.RawMessage, error) {
	return c.UploadFileFn(ctx, endpoint, upload)
}

var _ atelier.CredentialStore = (*CredentialStore)(nil)

// CredentialStore is a mock implementation of atelier.CredentialStore.
type CredentialStore struct {
	TokenFn      func(ctx context.Context) (string, error)
	SetTokenFn   func(ctx context.Context, token string) error
	ClearTokenFn func(ctx context.Context) error
}

func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	return s.TokenFn(ctx)
}

func (s *CredentialStore) SetToken(ctx context.Context, token string) error {
	return s.SetTokenFn(ctx, token)
}

func (s *CredentialStore) ClearToken(ctx context.Context) error {
	return s.ClearTokenFn(ctx)
}
