package apperror

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation error")
	ErrStorage    = errors.New("storage error")
)

// AppError carries a sentinel (for errors.Is classification at the HTTP
// boundary) together with the exact message the client should see.
type AppError struct {
	Err     error  // sentinel category
	Message string // client-facing error message
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NotFound reports a missing article. The message is the literal body text
// clients receive, so it stays fixed regardless of which id was requested.
func NotFound() *AppError {
	return &AppError{
		Err:     ErrNotFound,
		Message: "Not found",
	}
}

// ValidationFailed reports missing required fields. Each endpoint supplies its
// own fixed message listing the fields it requires.
func ValidationFailed(message string) *AppError {
	return &AppError{
		Err:     ErrValidation,
		Message: message,
	}
}

// Storage wraps a failure to reach or mutate the persistent store. The
// underlying cause stays reachable for logs via Unwrap; clients only ever see
// a generic message (handlers map ErrStorage to a 500 without the detail).
func Storage(op string, err error) *AppError {
	return &AppError{
		Err:     fmt.Errorf("%w: %s: %w", ErrStorage, op, err),
		Message: "internal server error",
	}
}
