package service

import (
	"errors"
	"fmt"
)

// Common service errors - sentinel errors used across service implementations.
// Callers check for these with errors.Is(); the API layer maps them to HTTP
// status codes.
var (
	// ErrCollageNotFound indicates no batch is registered under the given ID.
	// API layer should map this to HTTP 404 Not Found.
	ErrCollageNotFound = errors.New("collage not found")

	// ErrTooManySlots indicates the requested slot count exceeds the
	// configured maximum. API layer should map this to HTTP 400 Bad Request.
	ErrTooManySlots = errors.New("requested slot count exceeds maximum")

	// ErrTooManyReferenceImages indicates the request carries more subject or
	// style images than the configured maximum.
	ErrTooManyReferenceImages = errors.New("too many reference images")

	// ErrImageTooLarge indicates a reference image payload exceeds the
	// configured byte limit.
	ErrImageTooLarge = errors.New("reference image too large")
)

// CollageServiceError is a custom error type for unexpected collage service
// failures.
type CollageServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for CollageServiceError.
func (e *CollageServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("collage service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("collage service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *CollageServiceError) Unwrap() error {
	return e.Err
}

// NewCollageServiceError creates a new CollageServiceError.
func NewCollageServiceError(operation, message string, err error) *CollageServiceError {
	return &CollageServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
