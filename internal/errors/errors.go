// Package errors provides custom error types for hubsh
package errors

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// Precondition errors: the command was refused before any API attempt.
	ErrNoSession  = errors.New("no repository selected and no credentials set (run 'repo <owner> <name>' or 'login <login> <token>')")
	ErrNoRepo     = errors.New("no repository selected (run 'repo <owner> <name>' first)")
	ErrAuthNeeded = errors.New("this command requires credentials (run 'login <login> <token>' or 'loadcfg')")

	// API errors: the facade reported a failure.
	ErrAuthRequired = errors.New("authentication required")
	ErrForbidden    = errors.New("forbidden: insufficient permissions")
	ErrRateLimited  = errors.New("GitHub API rate limit exceeded")
	ErrNotFound     = errors.New("resource not found")

	// ErrCancelled is returned when the user aborts an interactive
	// dialog with the QUIT sentinel. Handlers must not call the API
	// after seeing it.
	ErrCancelled = errors.New("cancelled")
)

// UsageError represents malformed command arguments. The message names
// the offending input; Usage, when set, names the expected syntax.
type UsageError struct {
	Command string
	Message string
	Usage   string
}

func (e *UsageError) Error() string {
	if e.Usage != "" {
		return fmt.Sprintf("%s: %s (usage: %s %s)", e.Command, e.Message, e.Command, e.Usage)
	}
	return fmt.Sprintf("%s: %s", e.Command, e.Message)
}

// NewUsageError creates a new usage error
func NewUsageError(command, message, usage string) *UsageError {
	return &UsageError{Command: command, Message: message, Usage: usage}
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new validation error
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// APIError represents a GitHub API error
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("GitHub API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("GitHub API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// NewAPIError creates a new API error
func NewAPIError(statusCode int, message string, err error) *APIError {
	return &APIError{StatusCode: statusCode, Message: message, Err: err}
}

// IsUsage checks if the error is a usage or validation error. Both mean
// the same thing to the user: the arguments were malformed and nothing
// was attempted.
func IsUsage(err error) bool {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		return true
	}
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsPrecondition checks if the error is a session precondition failure
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrNoSession) || errors.Is(err, ErrNoRepo) || errors.Is(err, ErrAuthNeeded)
}

// IsAuthRequired checks if the error is the facade's missing-authentication signal
func IsAuthRequired(err error) bool {
	return errors.Is(err, ErrAuthRequired)
}

// IsCancelled checks if the error is a cancelled interactive dialog
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}

// IsRateLimited checks if the error is a rate limit error
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 403 || apiErr.StatusCode == 429
	}
	return errors.Is(err, ErrRateLimited)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}
	return errors.Is(err, ErrNotFound)
}
