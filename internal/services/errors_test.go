package services

import (
	"errors"
	"fmt"
	"testing"

	"rently-backend/internal/models"
)

// The repositories return the models sentinels; the services re-export
// them. Both spellings must match the same error.
func TestErrorSentinelsSharedWithModels(t *testing.T) {
	if !errors.Is(ErrNotFound, models.ErrNotFound) {
		t.Error("services.ErrNotFound is not models.ErrNotFound")
	}
	if !errors.Is(ErrForbidden, models.ErrForbidden) {
		t.Error("services.ErrForbidden is not models.ErrForbidden")
	}

	wrapped := fmt.Errorf("load lease: %w", models.ErrNotFound)
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("wrapped models.ErrNotFound does not match services.ErrNotFound")
	}
}

func TestValidationErrorAlias(t *testing.T) {
	err := invalidf("amount", "must be positive, got %d", -5)

	if !IsValidation(err) {
		t.Error("IsValidation() = false for invalidf error")
	}
	var ve *models.ValidationError
	if !errors.As(err, &ve) {
		t.Fatal("invalidf error is not a *models.ValidationError")
	}
	if ve.Field != "amount" {
		t.Errorf("field = %q, want amount", ve.Field)
	}
	if got, want := ve.Error(), "amount: must be positive, got -5"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
