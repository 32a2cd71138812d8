package errors

import (
	"errors"
	"fmt"
)

// Common errors that can be used across packages
var (
	ErrNotFound        = errors.New("resource not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthorized    = errors.New("unauthorized")
)

// ValidationError represents an error that occurs during input validation
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}

// FileError represents an error that occurs during file operations
type FileError struct {
	Path    string
	Op      string
	Wrapped error
}

func (e *FileError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s operation failed on %s: %v", e.Op, e.Path, e.Wrapped)
	}
	return fmt.Sprintf("%s operation failed on %s", e.Op, e.Path)
}

func (e *FileError) Unwrap() error {
	return e.Wrapped
}

// NewFileError creates a new FileError
func NewFileError(path, op string, wrapped error) error {
	return &FileError{
		Path:    path,
		Op:      op,
		Wrapped: wrapped,
	}
}

// StatusError reports a non-success HTTP status from the registry or an
// archive host.
type StatusError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("received status %d from %s: %s", e.StatusCode, e.URL, e.Body)
	}
	return fmt.Sprintf("received status %d from %s", e.StatusCode, e.URL)
}

// NewStatusError creates a new StatusError
func NewStatusError(url string, code int, body string) error {
	return &StatusError{
		URL:        url,
		StatusCode: code,
		Body:       body,
	}
}
