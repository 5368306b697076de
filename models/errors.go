package models

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a referenced log entry does not exist
var ErrNotFound = errors.New("log entry not found")

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

func (ve ValidationErrors) Error() string {
	return "validation failed: " + strings.Join(ve.GetMessages(), ", ")
}

// StorageError wraps a failure of the underlying store
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries validation errors
func IsValidation(err error) bool {
	var ve ValidationErrors
	return errors.As(err, &ve)
}

// IsStorage reports whether err originates from the store
func IsStorage(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}
