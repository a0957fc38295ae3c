// Package errors provides structured error handling with HTTP status code mapping.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType represents the category of error for metrics and response formatting.
type ErrorType string

const (
	// TypeValidation indicates invalid input (HTTP 400)
	TypeValidation ErrorType = "validation"
	// TypeNotFound indicates an unknown word or endpoint (HTTP 404)
	TypeNotFound ErrorType = "not_found"
	// TypeConflict indicates a duplicate entry (HTTP 400)
	TypeConflict ErrorType = "conflict"
	// TypeMethodNotAllowed indicates an unsupported HTTP method (HTTP 405)
	TypeMethodNotAllowed ErrorType = "method_not_allowed"
	// TypeInternal indicates server-side error (HTTP 500)
	TypeInternal ErrorType = "internal"
)

// Error represents a structured error with type, message, and context.
// RequestNumber is zero when the response must not report it. A non-zero
// Status overrides the status derived from Type.
type Error struct {
	Type          ErrorType
	Message       string
	RequestNumber int64
	Status        int
	Cause         error
	Context       map[string]any
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// HTTPStatus returns the appropriate HTTP status code for this error type.
func (e *Error) HTTPStatus() int {
	if e.Status != 0 {
		return e.Status
	}

	switch e.Type {
	case TypeValidation, TypeConflict:
		// Duplicates are reported to clients as bad requests.
		return http.StatusBadRequest
	case TypeNotFound:
		return http.StatusNotFound
	case TypeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

func newError(t ErrorType, message string, cause error) *Error {
	return &Error{
		Type:    t,
		Message: message,
		Cause:   cause,
		Context: make(map[string]any),
	}
}

// ValidationError creates a new validation error (HTTP 400).
func ValidationError(message string) *Error {
	return newError(TypeValidation, message, nil)
}

// NotFoundError creates a new not-found error (HTTP 404).
func NotFoundError(message string) *Error {
	return newError(TypeNotFound, message, nil)
}

// ConflictError creates a new duplicate-entry error (HTTP 400).
func ConflictError(message string) *Error {
	return newError(TypeConflict, message, nil)
}

// MethodNotAllowedError creates a new unsupported-method error (HTTP 405).
func MethodNotAllowedError(message string) *Error {
	return newError(TypeMethodNotAllowed, message, nil)
}

// InternalError creates a new internal error (HTTP 500).
func InternalError(message string, cause error) *Error {
	return newError(TypeInternal, message, cause)
}

// WithCause attaches the underlying cause (chainable). It is logged, never sent to clients.
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithRequestNumber makes the response report the request number (chainable).
func (e *Error) WithRequestNumber(n int64) *Error {
	e.RequestNumber = n
	return e
}

// WithStatus pins the HTTP status regardless of the error type (chainable).
func (e *Error) WithStatus(status int) *Error {
	e.Status = status
	return e
}

// WithField adds a log context field to the error (chainable).
func (e *Error) WithField(key string, value any) *Error {
	if e.Context == nil {
		e.Context = make(map[string]any)
	}
	e.Context[key] = value
	return e
}

// ErrorResponse represents the JSON structure sent to clients.
type ErrorResponse struct {
	RequestNumber int64  `json:"requestNumber,omitempty"`
	Message       string `json:"message"`
}

// ToResponse converts an Error to an ErrorResponse for JSON serialization.
func (e *Error) ToResponse() ErrorResponse {
	return ErrorResponse{
		RequestNumber: e.RequestNumber,
		Message:       e.Message,
	}
}

// AsStructuredError converts any error into a structured Error.
// If err is already an *Error, returns it unchanged.
// Otherwise wraps it as an internal error.
func AsStructuredError(err error) *Error {
	if err == nil {
		return nil
	}

	var structuredErr *Error
	if errors.As(err, &structuredErr) {
		return structuredErr
	}

	return InternalError("internal server error", err)
}
