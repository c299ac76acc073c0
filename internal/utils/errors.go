package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/safespace-labs/SafeSpace_Backend/internal/moderation"
)

// Custom error types for the application
var (
	ErrNotFound           = errors.New("resource not found")
	ErrBadRequest         = errors.New("invalid request")
	ErrInternalServer     = errors.New("internal server error")
	ErrServiceUnavailable = errors.New("service unavailable")
)

// AppError represents an application error with additional context
type AppError struct {
	Err        error  // The underlying error
	StatusCode int    // HTTP status code
	Message    string // User-friendly error message
}

// Error implements the error interface
func (e *AppError) Error() string {
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(message string) *AppError {
	if message == "" {
		message = "resource not found"
	}
	return &AppError{
		Err:        ErrNotFound,
		StatusCode: http.StatusNotFound,
		Message:    message,
	}
}

// NewBadRequestError creates a new bad request error
func NewBadRequestError(message string) *AppError {
	return &AppError{
		Err:        ErrBadRequest,
		StatusCode: http.StatusBadRequest,
		Message:    message,
	}
}

// NewInternalServerError creates a new internal server error. The underlying
// error is kept for logging but never exposed in the message.
func NewInternalServerError(err error) *AppError {
	underlying := ErrInternalServer
	if err != nil {
		underlying = fmt.Errorf("%w: %v", ErrInternalServer, err)
	}
	return &AppError{
		Err:        underlying,
		StatusCode: http.StatusInternalServerError,
		Message:    "An internal server error occurred",
	}
}

// NewServiceUnavailableError creates a new service unavailable error
func NewServiceUnavailableError(message string) *AppError {
	if message == "" {
		message = "service unavailable"
	}
	return &AppError{
		Err:        ErrServiceUnavailable,
		StatusCode: http.StatusServiceUnavailable,
		Message:    message,
	}
}

// ParseError converts an arbitrary error into an AppError so handlers can
// map it to an HTTP response uniformly.
//
// Parameters:
//   - err: the error to classify
//
// Returns:
//   - The error itself if it is already an AppError
//   - A 503 AppError for moderation.ErrUnavailable
//   - A 500 AppError for anything else
func ParseError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	if errors.Is(err, moderation.ErrUnavailable) {
		return NewServiceUnavailableError(err.Error())
	}

	return NewInternalServerError(err)
}
