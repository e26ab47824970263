package utils

import (
	"fmt"

	"github.com/pkg/errors"
)

// ValidationError reports caller input that was missing or malformed.
// It is never retried and always maps to a 400 response.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with a formatted message.
func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports a referenced record that does not exist.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// NewNotFoundError creates a NotFoundError for resource/id.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// PersistenceError reports a storage failure. Safe for the caller to retry.
type PersistenceError struct {
	cause error
}

func (e *PersistenceError) Error() string {
	return e.cause.Error()
}

func (e *PersistenceError) Unwrap() error {
	return e.cause
}

// Cause lets github.com/pkg/errors.Cause see through the wrapper.
func (e *PersistenceError) Cause() error {
	return e.cause
}

// NewPersistenceError wraps err with message as a PersistenceError.
func NewPersistenceError(err error, message string) *PersistenceError {
	if err == nil {
		err = errors.New(message)
	} else {
		err = errors.Wrap(err, message)
	}
	return &PersistenceError{cause: err}
}

// IsValidationError reports whether err is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

// IsNotFoundError reports whether err is, or wraps, a NotFoundError.
func IsNotFoundError(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsPersistenceError reports whether err is, or wraps, a PersistenceError.
func IsPersistenceError(err error) bool {
	var target *PersistenceError
	return errors.As(err, &target)
}
