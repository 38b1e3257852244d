package entities

import "errors"

var (
	// ErrIO classifies every scan, filesystem and process failure surfaced to callers.
	ErrIO = errors.New("i/o error")

	// ErrNotFound is returned when a sources file or an entry index cannot be resolved.
	ErrNotFound = errors.New("not found")

	// ErrInvalidLine is returned when a line does not follow the directive grammar.
	ErrInvalidLine = errors.New("invalid source line")
)
