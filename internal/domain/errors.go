package domain

import "errors"

// Domain errors represent error conditions in the dateselect domain.
// These errors are returned by the public API and can be checked with errors.Is.
var (
	// ErrInvalidSelection is returned when a proposed selection value fails validation.
	ErrInvalidSelection = errors.New("dateselect: invalid selection")

	// ErrInvalidConfig is returned when configuration validation fails.
	ErrInvalidConfig = errors.New("dateselect: invalid configuration")

	// ErrUnknownOperation is returned when a textual operation cannot be parsed.
	ErrUnknownOperation = errors.New("dateselect: unknown operation")
)
