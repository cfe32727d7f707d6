package game

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when an index does not address a game.
	ErrNotFound = errors.New("game not found")

	// ErrMissingQueryParam is returned by FilterByGenre for a blank needle.
	ErrMissingQueryParam = errors.New("genre query parameter is required")

	// ErrInvalidBody is returned when a request body is not a JSON object.
	ErrInvalidBody = errors.New("invalid JSON body")
)

// MissingFieldError reports the first required field that is absent or falsy.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field: %s", e.Field)
}

// InvalidFieldError reports a present field whose value has the wrong type.
type InvalidFieldError struct {
	Field string
	Err   error
}

func (e *InvalidFieldError) Error() string {
	return fmt.Sprintf("invalid field %s: %v", e.Field, e.Err)
}

func (e *InvalidFieldError) Unwrap() error { return e.Err }
