// Package apperr defines the sentinel errors shared across Ansuz components.
package apperr

import "errors"

var (
	// ErrNotFound is returned when an identifier resolves to no document,
	// or when a batch operation resolves nothing at all.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate is returned when a create or rename target collides
	// with an existing document.
	ErrDuplicate = errors.New("already exists")

	// ErrValidation is returned for malformed input detected before any
	// I/O: conflicting search scopes, empty queries, bad parameters.
	ErrValidation = errors.New("invalid input")

	// ErrUnsupportedFormat is returned for an export format the pipeline
	// does not implement.
	ErrUnsupportedFormat = errors.New("format not supported")
)
