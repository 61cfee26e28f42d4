package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fwojciec/atelier"
)

// Compile-time interface verification.
var _ atelier.CredentialStore = (*CredentialStore)(nil)

// CredentialStore persists the bearer token across CLI invocations. Tokens
// are stored per backend so switching API URLs does not leak credentials.
type CredentialStore struct {
	db      *DB
	backend string
}

// NewCredentialStore creates a CredentialStore for the backend at baseURL.
func NewCredentialStore(db *DB, baseURL string) *CredentialStore {
	return &CredentialStore{db: db, backend: baseURL}
}

// Token returns the stored token, or "" when none is stored.
func (s *CredentialStore) Token(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `
		SELECT token FROM credentials WHERE backend = ?
	`, s.backend).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read token: %w", err)
	}
	return token, nil
}

// SetToken stores token, replacing any previous one. An empty token clears
// the slot.
func (s *CredentialStore) SetToken(ctx context.Context, token string) error {
	if token == "" {
		return s.ClearToken(ctx)
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO credentials (backend, token, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(backend) DO UPDATE SET
			token = excluded.token,
			updated_at = excluded.updated_at
	`, s.backend, token, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	return nil
}

// ClearToken removes the stored token.
func (s *CredentialStore) ClearToken(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM credentials WHERE backend = ?
	`, s.backend); err != nil {
		return fmt.Errorf("failed to clear token: %w", err)
	}
	return nil
}
