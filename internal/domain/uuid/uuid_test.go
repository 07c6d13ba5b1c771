package uuid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questboard/internal/domain/uuid"
)

func TestNewUUID(t *testing.T) {
	a := uuid.NewUUID()
	b := uuid.NewUUID()

	assert.False(t, a.IsZero())
	assert.False(t, b.IsZero())
	assert.NotEqual(t, a, b)
}

func TestParseUUID(t *testing.T) {
	id := uuid.NewUUID()

	parsed, err := uuid.ParseUUID(id.String())
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestParseUUID_Invalid(t *testing.T) {
	_, err := uuid.ParseUUID("not-a-uuid")
	assert.Error(t, err)
}

func TestUUID_IsZero(t *testing.T) {
	var zero uuid.UUID
	assert.True(t, zero.IsZero())
	assert.False(t, uuid.NewUUID().IsZero())
}
