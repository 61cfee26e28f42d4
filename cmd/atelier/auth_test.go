package main_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCmd(t *testing.T) {
	t.Parallel()

	t.Run("greets the user", func(t *testing.T) {
		t.Parallel()

		var gotEmail, gotPassword string
		api := &mock.API{
			LoginFn: func(_ context.Context, email, password string) (json.RawMessage, error) {
				gotEmail, gotPassword = email, password
				return json.RawMessage(`{"success":true,"data":{"token":"tok","user":{"name":"Ada"}}}`), nil
			},
		}

		res := run(t, api, "login", "--email", "ada@example.com", "--password", "secret")

		require.NoError(t, res.err)
		assert.Equal(t, "ada@example.com", gotEmail)
		assert.Equal(t, "secret", gotPassword)
		assert.Contains(t, res.stdout, "Logged in as Ada")
	})

	t.Run("reports bad credentials", func(t *testing.T) {
		t.Parallel()

		api := &mock.API{
			LoginFn: func(context.Context, string, string) (json.RawMessage, error) {
				return nil, &atelier.APIError{Message: "Invalid credentials", Status: 401}
			},
		}

		res := run(t, api, "login", "--email", "ada@example.com", "--password", "wrong")

		require.Error(t, res.err)
		assert.Contains(t, res.stderr, "error: Invalid credentials")
	})
}

func TestLogoutCmd(t *testing.T) {
	t.Parallel()

	called := false
	api := &mock.API{
		LogoutFn: func(context.Context) error {
			called = true
			return nil
		},
	}

	res := run(t, api, "logout")

	require.NoError(t, res.err)
	assert.True(t, called)
	assert.Contains(t, res.stdout, "Logged out")
}
