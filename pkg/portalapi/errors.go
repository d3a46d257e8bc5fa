// Package portalapi holds the wire types of the portal's HTTP API: request
// and response payloads plus the error envelope. Handlers and tests share
// these so the contract only lives in one place.
package portalapi

import (
	"fmt"
	"net/http"

	"github.com/psicoconecta/portal/pkg/httpx"
)

// APIError is the error envelope returned by every portal endpoint.
// It implements the error interface so services and handlers can pass it
// around like any other error.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Message is a human-readable description of the error
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.WriteJSON(w, e.StatusCode, e)
}

// Predefined errors shared across handlers.
var (
	ErrInvalidRequest = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Invalid input data",
	}

	ErrUnauthorized = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Unauthorized",
	}

	ErrAccessDenied = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    "Access denied",
	}

	ErrUserNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "User not found",
	}

	ErrNotFound = &APIError{
		StatusCode: http.StatusNotFound,
		Message:    "Not found",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
)

// NewError builds a one-off APIError for messages that carry request
// context, e.g. which side of a chat pair was rejected.
func NewError(status int, message string) *APIError {
	return &APIError{StatusCode: status, Message: message}
}
