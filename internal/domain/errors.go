// internal/domain/errors.go
package domain

import "errors"

var (
	// General errors
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	// Compile-related errors
	ErrSourceTooLarge = errors.New("source exceeds the maximum allowed size")

	// Snippet-related errors
	ErrSnippetNotFound = errors.New("snippet not found")
)
