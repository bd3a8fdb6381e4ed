// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates fatal configuration errors from transient per-attempt fetch failures

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents an invalid configuration value. It is
// raised eagerly at construction time and is the only error class the
// scraper surfaces to its callers.
type ConfigurationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration for '%s': %s", e.Field, e.Message)
}

// FetchError represents a transient failure of a single fetch attempt
// (network, timeout, parse). It is absorbed by the retry loop and never
// propagated past the orchestrator.
type FetchError struct {
	Site    string
	Attempt int
	Cause   error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch attempt %d for site %s failed: %v", e.Attempt, e.Site, e.Cause)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a validation error on caller input
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
