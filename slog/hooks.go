package slog

import (
	"log/slog"

	"github.com/fwojciec/atelier"
)

// SuccessHook returns an engine success callback that logs which resource
// was loaded from the backend.
func SuccessHook[T any](logger *slog.Logger, resource string) func(T) {
	return func(T) {
		logger.Debug("loaded from api", "resource", resource)
	}
}

// ErrorHook returns an engine error callback that logs a failed attempt.
func ErrorHook(logger *slog.Logger, resource string) func(*atelier.APIError) {
	return func(err *atelier.APIError) {
		logger.Warn("api unavailable, using fallback",
			"resource", resource,
			"status", err.Status,
			"err", err.Message,
		)
	}
}
