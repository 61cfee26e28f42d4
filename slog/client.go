package slog

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/fwojciec/atelier"
)

// Ensure LoggingClient implements atelier.Client.
var _ atelier.Client = (*LoggingClient)(nil)

// LoggingClient wraps a Client with request logging.
type LoggingClient struct {
	next   atelier.Client
	logger *slog.Logger
}

// NewLoggingClient creates a new LoggingClient.
func NewLoggingClient(next atelier.Client, logger *slog.Logger) *LoggingClient {
	return &LoggingClient{next: next, logger: logger}
}

// Request delegates to the wrapped client and logs the call.
func (c *LoggingClient) Request(ctx context.Context, method, endpoint string, body any) (raw json.RawMessage, err error) {
	defer func(begin time.Time) {
		c.log(ctx, "request", method, endpoint, len(raw), begin, err)
	}(time.Now())
	return c.next.Request(ctx, method, endpoint, body)
}

// UploadFile delegates to the wrapped client and logs the upload.
func (c *LoggingClient) UploadFile(ctx context.Context, endpoint string, upload atelier.Upload) (raw json.RawMessage, err error) {
	defer func(begin time.Time) {
		c.log(ctx, "upload", "POST", endpoint, len(raw), begin, err, "filename", upload.Filename)
	}(time.Now())
	return c.next.UploadFile(ctx, endpoint, upload)
}

func (c *LoggingClient) log(ctx context.Context, msg, method, endpoint string, size int, begin time.Time, err error, extra ...any) {
	attrs := []any{
		"method", method,
		"endpoint", endpoint,
		"bytes", size,
		"duration", time.Since(begin),
	}
	attrs = append(attrs, extra...)
	if err == nil {
		c.logger.DebugContext(ctx, msg, attrs...)
		return
	}
	if apiErr := atelier.ToAPIError(err); apiErr.Status != 0 {
		attrs = append(attrs, "status", apiErr.Status)
	}
	attrs = append(attrs, "err", err)
	c.logger.WarnContext(ctx, msg, attrs...)
}
