package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestValidationError_SingleField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("title", "required")
	if !errors.Is(err, ErrValidation) {
		t.Error("should unwrap to ErrValidation")
	}
	if got := err.Error(); got != "validation: title: required" {
		t.Errorf("message: got %q", got)
	}
}

func TestValidationError_MultipleFields(t *testing.T) {
	t.Parallel()

	err := NewValidationErrors([]FieldError{
		{Field: "title", Message: "required"},
		{Field: "summary", Message: "required"},
	})
	if !errors.Is(err, ErrValidation) {
		t.Error("should unwrap to ErrValidation")
	}
	if got := err.Error(); got != "validation: 2 errors" {
		t.Errorf("message: got %q", got)
	}
}

func TestValidationError_AsThroughWrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("create article: %w", NewValidationError("title", "required"))

	var vErr *ValidationError
	if !errors.As(wrapped, &vErr) {
		t.Fatal("errors.As should find ValidationError through wrapping")
	}
	if len(vErr.Errors) != 1 || vErr.Errors[0].Field != "title" {
		t.Errorf("unexpected field errors: %+v", vErr.Errors)
	}
}
