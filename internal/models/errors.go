package models

import (
	"errors"
	"fmt"
)

// Error codes used by services and mapped to HTTP statuses by handlers
const (
	CodeValidationFailed   = "VALIDATION_FAILED"
	CodeInvalidArgument    = "INVALID_ARGUMENT"
	CodeNotFound           = "NOT_FOUND"
	CodeStorageUnavailable = "STORAGE_UNAVAILABLE"
	CodeInvalidRecordData  = "INVALID_RECORD_DATA"
)

// Common error types
var (
	ErrNotFound           = errors.New("resource not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidRecordData  = errors.New("invalid record data")
)

// AppError represents an application-level error with context
type AppError struct {
	Code    string
	Message string
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrValidationFailed creates a validation error carrying per-field reasons
func ErrValidationFailed(fields map[string]string) error {
	return &AppError{
		Code:    CodeValidationFailed,
		Message: "validation failed",
		Fields:  fields,
	}
}

// ErrDuplicateEmailFor creates a validation error for an already registered email.
// Both the friendly pre-check and the unique-constraint translation use it, so
// callers see the same outcome regardless of which guard fired.
func ErrDuplicateEmailFor(email string) error {
	return &AppError{
		Code:    CodeValidationFailed,
		Message: fmt.Sprintf("email %s is already registered", email),
		Fields:  map[string]string{"email": "already registered"},
		Err:     ErrDuplicateEmail,
	}
}

// ErrInvalidArgument creates an error for malformed request parameters
func ErrInvalidArgument(message string) error {
	return &AppError{
		Code:    CodeInvalidArgument,
		Message: message,
	}
}

// ErrNotFoundWithMsg creates a not found error with custom message
func ErrNotFoundWithMsg(message string) error {
	return &AppError{
		Code:    CodeNotFound,
		Message: message,
		Err:     ErrNotFound,
	}
}

// ErrStorageUnavailableWrap wraps a storage-layer failure. The wrapped error
// stays available for logs; handlers report only a generic message to clients.
func ErrStorageUnavailableWrap(err error) error {
	return &AppError{
		Code:    CodeStorageUnavailable,
		Message: "storage unavailable",
		Err:     fmt.Errorf("%w: %w", ErrStorageUnavailable, err),
	}
}
