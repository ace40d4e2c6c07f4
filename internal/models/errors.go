package models

import (
	"errors"
	"fmt"
)

// Shared error taxonomy. Repositories return these sentinels, services
// add their own on top, and the HTTP layer maps them onto statuses.
var (
	ErrForbidden = errors.New("forbidden")
	ErrNotFound  = errors.New("not found")
)

// ValidationError reports a rejected input with a field-level message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}
