package appcore

import (
	"fmt"

	"questboard/internal/domain/errs"
)

// ValidationError represents a validation error with field context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Is makes ValidationError match errs.ErrInvalidInput in errors.Is chains.
func (e *ValidationError) Is(target error) bool {
	return target == errs.ErrInvalidInput
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, message string) error {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
