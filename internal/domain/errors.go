package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("invalid or expired token")
	ErrForbidden    = errors.New("forbidden")
	ErrNoToken      = errors.New("no token found")
)

// APIError is a structured validation failure from the REST backend
// (400 with a field->messages map). Forms attach Errors per input.
type APIError struct {
	Status  int
	Message string
	Errors  map[string][]string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (%d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}
