package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrMalformedArticle indicates the news source returned an article missing required fields.
	ErrMalformedArticle = errors.New("malformed article")

	// ErrEmptyContent indicates an enrichment was requested for an article without content.
	ErrEmptyContent = errors.New("article content is empty")
)

// ValidationError represents a validation error with detailed field information.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Unwrap lets errors.Is match ErrMalformedArticle.
func (e *ValidationError) Unwrap() error {
	return ErrMalformedArticle
}
