package atelier

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Application error codes.
const (
	EINTERNAL     = "internal"
	EINVALID      = "invalid"
	ENOTFOUND     = "not_found"
	EUNAUTHORIZED = "unauthorized"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("atelier error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// API errors are mapped onto the closest application code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &apiErr):
		switch {
		case apiErr.IsNotFound():
			return ENOTFOUND
		case apiErr.IsUnauthorized(), apiErr.IsForbidden():
			return EUNAUTHORIZED
		case apiErr.Status == http.StatusBadRequest, apiErr.IsMissingIdentifier():
			return EINVALID
		}
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	var apiErr *APIError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &e):
		return e.Message
	case errors.As(err, &apiErr):
		return apiErr.Message
	}
	return "Internal error"
}

// ErrNoIdentifier is returned by item fetches invoked without an id or slug.
// No request is issued in that case.
var ErrNoIdentifier = errors.New("No identifier provided")

// APIError is the classified outcome of a failed backend call.
// Status is the HTTP status code, or 0 when no response was received.
type APIError struct {
	Message string
	Status  int

	// Data holds the raw response body, if any.
	Data json.RawMessage

	// Errors holds the structured "errors" field of the response envelope.
	Errors json.RawMessage

	Cause error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status == 0 {
		return e.Message
	}
	return fmt.Sprintf("%s (status %d)", e.Message, e.Status)
}

func (e *APIError) Unwrap() error { return e.Cause }

// IsNetworkError reports whether the call never reached a server.
func (e *APIError) IsNetworkError() bool {
	return e.Status == 0 && !e.IsMissingIdentifier()
}

// IsClientError reports a 4xx response.
func (e *APIError) IsClientError() bool {
	return e.Status >= 400 && e.Status < 500
}

// IsServerError reports a 5xx response.
func (e *APIError) IsServerError() bool {
	return e.Status >= 500 && e.Status < 600
}

func (e *APIError) IsUnauthorized() bool { return e.Status == http.StatusUnauthorized }

func (e *APIError) IsForbidden() bool { return e.Status == http.StatusForbidden }

func (e *APIError) IsNotFound() bool { return e.Status == http.StatusNotFound }

// IsValidationError reports a 400 response that carries field errors.
func (e *APIError) IsValidationError() bool {
	return e.Status == http.StatusBadRequest && hasErrors(e.Errors)
}

// IsMissingIdentifier reports an item fetch that was skipped for lack of an id.
func (e *APIError) IsMissingIdentifier() bool {
	return errors.Is(e.Cause, ErrNoIdentifier)
}

// hasErrors reports whether the envelope carried an errors field. An empty
// object or list still counts.
func hasErrors(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}

// MissingIdentifierError returns the error reported when an item fetch has
// no identifier to look up.
func MissingIdentifierError() *APIError {
	return &APIError{Message: ErrNoIdentifier.Error(), Cause: ErrNoIdentifier}
}

// ToAPIError normalizes err into an *APIError. Errors that carry no HTTP
// status are reported as network errors. Returns nil for a nil error.
func ToAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	if errors.Is(err, ErrNoIdentifier) {
		return MissingIdentifierError()
	}
	return &APIError{Message: err.Error(), Cause: err}
}
