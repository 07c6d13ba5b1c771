package appcore_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"questboard/internal/application/appcore"
	"questboard/internal/domain/errs"
	"questboard/internal/domain/uuid"
)

func TestValidateRequired(t *testing.T) {
	assert.NoError(t, appcore.ValidateRequired("name", "Alex"))
	assert.Error(t, appcore.ValidateRequired("name", ""))
	assert.Error(t, appcore.ValidateRequired("name", "   "))
}

func TestValidateUUID(t *testing.T) {
	assert.NoError(t, appcore.ValidateUUID("id", uuid.NewUUID()))
	assert.Error(t, appcore.ValidateUUID("id", uuid.UUID("")))
}

func TestValidateMinLength(t *testing.T) {
	assert.NoError(t, appcore.ValidateMinLength("password", "secret1", 6))
	assert.Error(t, appcore.ValidateMinLength("password", "short", 6))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, appcore.ValidateEmail("email", "alex@example.com"))
	assert.Error(t, appcore.ValidateEmail("email", ""))
	assert.Error(t, appcore.ValidateEmail("email", "alex"))
	assert.Error(t, appcore.ValidateEmail("email", "@example"))
}

func TestValidationError_MatchesInvalidInput(t *testing.T) {
	err := appcore.NewValidationError("name", "is required")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}
