package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a requested resource does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized is returned for failed logins and missing or revoked
	// tokens. The message is deliberately generic so callers cannot tell an
	// unknown email from a wrong password.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError aggregates per-field validation messages for a single
// request. Fields keeps insertion order so the summary message is stable.
type ValidationError struct {
	Errors map[string][]string
	fields []string
}

func NewValidationError() *ValidationError {
	return &ValidationError{Errors: make(map[string][]string)}
}

func (e *ValidationError) Add(field, message string) {
	if _, ok := e.Errors[field]; !ok {
		e.fields = append(e.fields, field)
	}
	e.Errors[field] = append(e.Errors[field], message)
}

func (e *ValidationError) HasErrors() bool {
	return len(e.Errors) > 0
}

// Message returns the first recorded message, with a count of the rest.
func (e *ValidationError) Message() string {
	if len(e.fields) == 0 {
		return "validation failed"
	}
	first := e.Errors[e.fields[0]][0]
	extra := -1
	for _, msgs := range e.Errors {
		extra += len(msgs)
	}
	if extra == 1 {
		return fmt.Sprintf("%s (and 1 more error)", first)
	}
	if extra > 1 {
		return fmt.Sprintf("%s (and %d more errors)", first, extra)
	}
	return first
}

func (e *ValidationError) Error() string {
	return e.Message()
}
