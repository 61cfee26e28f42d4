package slog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/fwojciec/atelier"
	"github.com/fwojciec/atelier/mock"
	atslog "github.com/fwojciec/atelier/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingClient_Request(t *testing.T) {
	t.Parallel()

	t.Run("logs request with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.Client{
			RequestFn: func(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
				return json.RawMessage(`{"success":true}`), nil
			},
		}

		client := atslog.NewLoggingClient(inner, logger)
		raw, err := client.Request(context.Background(), "GET", "/blogs?page=1", nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{"success":true}`, string(raw))
		output := buf.String()
		assert.Contains(t, output, "msg=request")
		assert.Contains(t, output, "method=GET")
		assert.Contains(t, output, "endpoint=\"/blogs?page=1\"")
		assert.Contains(t, output, "bytes=16")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs status and error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Client{
			RequestFn: func(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
				return nil, &atelier.APIError{Message: "Server error", Status: 500}
			},
		}

		client := atslog.NewLoggingClient(inner, logger)
		_, err := client.Request(context.Background(), "GET", "/stats", nil)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=WARN")
		assert.Contains(t, output, "status=500")
		assert.Contains(t, output, "err=\"Server error (status 500)\"")
	})

	t.Run("successful requests are debug only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Client{
			RequestFn: func(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
				return json.RawMessage(`{}`), nil
			},
		}

		client := atslog.NewLoggingClient(inner, logger)
		_, err := client.Request(context.Background(), "GET", "/stats", nil)

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingClient_UploadFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	var got atelier.Upload
	inner := &mock.Client{
		UploadFileFn: func(ctx context.Context, endpoint string, upload atelier.Upload) (json.RawMessage, error) {
			got = upload
			return json.RawMessage(`{"url":"/u/a.png"}`), nil
		},
	}

	client := atslog.NewLoggingClient(inner, logger)
	_, err := client.UploadFile(context.Background(), "/upload", atelier.Upload{
		Filename: "a.png",
		Content:  strings.NewReader("png"),
	})

	require.NoError(t, err)
	assert.Equal(t, "a.png", got.Filename)
	output := buf.String()
	assert.Contains(t, output, "msg=upload")
	assert.Contains(t, output, "filename=a.png")
	assert.Contains(t, output, "endpoint=/upload")
}
