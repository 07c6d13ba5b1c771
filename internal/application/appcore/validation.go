package appcore

import (
	"fmt"
	"strings"

	"questboard/internal/domain/uuid"
)

// ValidateRequired checks that value is not empty.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return NewValidationError(field, "is required")
	}
	return nil
}

// ValidateUUID checks that id is set.
func ValidateUUID(field string, id uuid.UUID) error {
	if id.IsZero() {
		return NewValidationError(field, "must be a valid UUID")
	}
	return nil
}

// ValidateMinLength checks the minimum length of value.
func ValidateMinLength(field, value string, minLength int) error {
	if len(value) < minLength {
		return NewValidationError(field, fmt.Sprintf("must be at least %d characters", minLength))
	}
	return nil
}

// ValidateEmail checks the basic shape of an email address.
func ValidateEmail(field, value string) error {
	if value == "" {
		return NewValidationError(field, "email is required")
	}
	at := strings.Index(value, "@")
	if at <= 0 || !strings.Contains(value[at:], ".") {
		return NewValidationError(field, "must be a valid email address")
	}
	return nil
}
