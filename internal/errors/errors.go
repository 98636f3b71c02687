// Package errors provides sentinel errors, detailed error formatting, and
// exit codes for the faststart CLI.
package errors

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates invalid user input or an invalid config file.
	ErrValidation = errors.New("validation error")

	// ErrCancelled indicates the user chose to stop the run.
	// It is a normal termination branch, not a failure.
	ErrCancelled = errors.New("operation cancelled")

	// ErrExternalTool indicates an external command could not be launched
	// or exited with a non-zero status.
	ErrExternalTool = errors.New("external tool failed")

	// ErrFilesystem indicates an unexpected I/O failure while writing or
	// removing project files.
	ErrFilesystem = errors.New("filesystem error")

	// ErrPermission indicates insufficient permissions.
	ErrPermission = errors.New("permission denied")

	// ErrNotFound indicates a file or executable was not found.
	ErrNotFound = errors.New("not found")

	// ErrVersion indicates the JavaScript runtime does not meet the minimum version.
	ErrVersion = errors.New("version mismatch")
)

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully or was cancelled by the user.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error, including external tool failures.
	ExitGeneralError = 1

	// ExitValidationError indicates invalid input or configuration.
	ExitValidationError = 2

	// ExitPermissionDenied indicates a filesystem permission failure.
	ExitPermissionDenied = 4

	// ExitNotFound indicates a required executable or file was not found.
	ExitNotFound = 5

	// ExitVersionMismatch indicates an unsupported runtime version.
	ExitVersionMismatch = 6
)

// DetailError captures structured error information for user-facing output.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file or directory involved (optional).
	Location string

	// Field is the offending field for config errors (optional).
	Field string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString(e.Type)
	b.WriteString(": ")
	b.WriteString(e.Message)

	if e.Location != "" {
		b.WriteString("\n  Location: ")
		b.WriteString(e.Location)
	}
	if e.Field != "" {
		b.WriteString("\n  Field: ")
		b.WriteString(e.Field)
	}
	if e.Hint != "" {
		b.WriteString("\n\nHint: ")
		b.WriteString(e.Hint)
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, field, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Field:    field,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// ExitError carries the process exit code for an error returned by a command.
type ExitError struct {
	// Code is the process exit code.
	Code int

	// Err is the underlying error.
	Err error

	// Printed reports whether the command layer already printed the error.
	Printed bool
}

// Error implements the error interface.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the wrapped error.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCodeFromError determines the exit code for an error.
// Cancellation maps to ExitSuccess.
func ExitCodeFromError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	switch {
	case errors.Is(err, ErrCancelled):
		return ExitSuccess
	case errors.Is(err, ErrValidation):
		return ExitValidationError
	case errors.Is(err, ErrPermission):
		return ExitPermissionDenied
	case errors.Is(err, ErrNotFound):
		return ExitNotFound
	case errors.Is(err, ErrVersion):
		return ExitVersionMismatch
	default:
		return ExitGeneralError
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}

// WrapFS wraps a filesystem error with ErrFilesystem, adding ErrPermission
// when the cause is a permission failure.
func WrapFS(err error, op, path string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, fs.ErrPermission) {
		return fmt.Errorf("%s %s: %w: %w: %w", op, path, ErrFilesystem, ErrPermission, err)
	}
	return fmt.Errorf("%s %s: %w: %w", op, path, ErrFilesystem, err)
}
