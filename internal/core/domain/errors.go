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

	// ErrEditorNotReady indicates an action was triggered before an editor was mounted.
	ErrEditorNotReady = errors.New("editor not ready")

	// ErrAlreadyCaptured indicates the baseline snapshot was already taken.
	ErrAlreadyCaptured = errors.New("snapshot already captured")

	// ErrStorageWriteFailed indicates the record store refused a write.
	// The previously stored value is left untouched.
	ErrStorageWriteFailed = errors.New("storage write failed")

	// ErrCorruptRecord indicates a stored record does not match the yCard schema.
	ErrCorruptRecord = errors.New("stored record is corrupt")

	// ErrUnsupportedCommand indicates the editing surface does not know a command.
	ErrUnsupportedCommand = errors.New("unsupported editor command")
)

// ParseError carries the parser's diagnostic verbatim.
type ParseError struct {
	Message string
}

// Error implements error.
func (e *ParseError) Error() string {
	return e.Message
}

// StorageError wraps a store failure with a human-readable reason.
type StorageError struct {
	Reason string
	Err    error
}

// NewStorageError builds a StorageError from an underlying error.
func NewStorageError(reason string, err error) *StorageError {
	return &StorageError{Reason: reason, Err: err}
}

// Error implements error.
func (e *StorageError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Reason {
		return fmt.Sprintf("%s: %s: %v", ErrStorageWriteFailed, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", ErrStorageWriteFailed, e.Reason)
}

// Unwrap allows errors.Is against ErrStorageWriteFailed and the cause.
func (e *StorageError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrStorageWriteFailed, e.Err}
	}
	return []error{ErrStorageWriteFailed}
}
