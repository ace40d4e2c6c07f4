package services

import (
	"errors"
	"fmt"

	"rently-backend/internal/models"
)

// The error taxonomy lives in models so the repositories can return the
// same sentinels without importing this package. Re-exported here because
// the services are where callers meet these errors.
var (
	ErrForbidden = models.ErrForbidden
	ErrNotFound  = models.ErrNotFound
)

// ValidationError reports a rejected input with a field-level message.
type ValidationError = models.ValidationError

func invalidf(field, format string, args ...interface{}) error {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
