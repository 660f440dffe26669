// Package errors provides standardized error types and helpers for the
// morphsync pipeline. Only the absence of a required input file is fatal;
// everything else in the pipeline is handled by lenient skipping, so the
// taxonomy here is small.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	// ErrNotFound indicates a required input was not found
	ErrNotFound = errors.New("not found")
	// ErrInvalidInput indicates invalid input or validation failure
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError represents a missing required input with context. This is
// the only error class the pipeline treats as fatal, and it always names
// the offending path.
type NotFoundError struct {
	Resource string // Kind of input (e.g. "tree file", "analysis file")
	Path     string // Path that was checked
	Err      error  // Underlying error, if any
}

func (e *NotFoundError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s not found: %s", e.Resource, e.Path)
	}
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrNotFound
}

// IOError represents an I/O operation error with context
type IOError struct {
	Operation string // Operation being performed (e.g. "read", "write")
	Path      string // File path involved
	Err       error  // Underlying error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to %s %s: %v", e.Operation, e.Path, e.Err)
	}
	return fmt.Sprintf("failed to %s: %v", e.Operation, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// ParseError represents a configuration or output-format error. Malformed
// corpus lines never raise this: they are passed through by design.
type ParseError struct {
	Format  string // Format being parsed (e.g. "config", "CSV")
	Path    string // File path, if applicable
	Message string // Error details
	Err     error  // Underlying error, if any
}

func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("failed to parse %s at %s: %s", e.Format, e.Path, e.Message)
	}
	return fmt.Sprintf("failed to parse %s: %s", e.Format, e.Message)
}

func (e *ParseError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrInvalidInput
}

// Helper functions for creating common errors

// NewNotFound creates a NotFoundError
func NewNotFound(resource, path string) *NotFoundError {
	return &NotFoundError{
		Resource: resource,
		Path:     path,
	}
}

// NewIO creates an IOError
func NewIO(operation, path string, err error) *IOError {
	return &IOError{
		Operation: operation,
		Path:      path,
		Err:       err,
	}
}

// NewParse creates a ParseError
func NewParse(format, path, message string) *ParseError {
	return &ParseError{
		Format:  format,
		Path:    path,
		Message: message,
	}
}

// Wrap adds context to an error. If err is nil, returns nil.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf adds formatted context to an error. If err is nil, returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
