package domain

import "errors"

var (
	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrValidation marks malformed or incomplete input.
	ErrValidation = errors.New("validation failed")
)
