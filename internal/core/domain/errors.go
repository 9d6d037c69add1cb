package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPizzaNotFound, ErrCommentNotFound and ErrReplyNotFound all match ErrNotFound.
	ErrPizzaNotFound   = fmt.Errorf("pizza %w", ErrNotFound)
	ErrCommentNotFound = fmt.Errorf("comment %w", ErrNotFound)
	ErrReplyNotFound   = fmt.Errorf("reply %w", ErrNotFound)

	// Offline queue errors.

	// ErrStorageUnavailable indicates the local write store could not be opened.
	// Offline writes are disabled for the session; live writes still work.
	ErrStorageUnavailable = errors.New("local storage unavailable")

	// ErrStorageWrite indicates an append, drain or clear on the local write store failed.
	ErrStorageWrite = errors.New("local storage write failed")

	// ErrNetworkFailure indicates a request never reached the server
	// or failed at the transport layer.
	ErrNetworkFailure = errors.New("network failure")

	// ErrApplication indicates the server answered with a structured error payload.
	ErrApplication = errors.New("application error")
)

// APIError is a structured error returned by the remote API.
// It always matches ErrApplication with errors.Is.
type APIError struct {
	// StatusCode is the HTTP status of the response, if known.
	StatusCode int

	// Message is the server supplied "message" field.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Message)
	}
	return "api error: " + e.Message
}

// Unwrap lets errors.Is match ErrApplication.
func (e *APIError) Unwrap() error {
	return ErrApplication
}
