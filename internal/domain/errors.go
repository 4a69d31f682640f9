package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("authentication required")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")

	ErrSeatTaken   = errors.New("this seat has already been taken for the selected flight")
	ErrFlightOver  = errors.New("flight is already over")
	ErrCrewOverlap = errors.New("crew member is already assigned to an overlapping flight")
	ErrEmptyOrder  = errors.New("order must contain at least one ticket")
)

// ValidationError is a field-level rejection of caller input.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// FieldError wraps a sentinel so callers can match it with errors.Is while the
// HTTP layer still reports it against a field.
func FieldError(field string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: err.Error(), Err: err}
}
