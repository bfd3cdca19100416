// Package apierror provides the typed errors returned by the business core
// and the standardized error response structures for the API. All errors
// returned to clients go through this package to ensure consistency and to
// prevent leaking internal details (stack traces, file paths, etc.).
package apierror

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a business-core failure.
type Kind int

const (
	InvalidInput Kind = iota + 1
	DuplicateName
	InsufficientStock
	NotFound
	PersistenceFailure
)

// Error is the typed error returned by services and the repository.
// Handlers map its Kind to an HTTP status; everything else treats it
// as a plain error.
type Error struct {
	Kind   Kind
	Detail string
}

func (e *Error) Error() string { return e.Detail }

// E builds a typed error with a formatted detail message.
func E(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from an error chain, or 0 for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Status maps an error to the HTTP status code handlers should respond with.
// Untyped errors are treated as internal.
func Status(err error) int {
	switch KindOf(err) {
	case InvalidInput, InsufficientStock:
		return http.StatusBadRequest
	case DuplicateName:
		return http.StatusConflict
	case NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Validation failed", Fields: fields}
}
