package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"questboard/internal/domain/uuid"
	"questboard/internal/infrastructure/auth"
)

func newManager(t *testing.T, ttl time.Duration) *auth.TokenManager {
	t.Helper()
	m, err := auth.NewTokenManager("test-secret-at-least-32-bytes-long!", "questboard", ttl)
	require.NoError(t, err)
	return m
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := newManager(t, time.Hour)
	userID := uuid.NewUUID()
	sessionID := uuid.NewUUID().String()

	token, err := m.Issue(userID, sessionID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	gotUser, gotSession, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, userID, gotUser)
	assert.Equal(t, sessionID, gotSession)
}

func TestTokenManager_Verify_Expired(t *testing.T) {
	m := newManager(t, -time.Minute)

	token, err := m.Issue(uuid.NewUUID(), uuid.NewUUID().String())
	require.NoError(t, err)

	_, _, err = m.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Verify_WrongSecret(t *testing.T) {
	m := newManager(t, time.Hour)
	other, err := auth.NewTokenManager("a-completely-different-secret-value", "questboard", time.Hour)
	require.NoError(t, err)

	token, err := m.Issue(uuid.NewUUID(), uuid.NewUUID().String())
	require.NoError(t, err)

	_, _, err = other.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenManager_Verify_Garbage(t *testing.T) {
	m := newManager(t, time.Hour)

	for _, token := range []string{"", "not-a-jwt", "a.b.c"} {
		_, _, err := m.Verify(token)
		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	}
}

func TestNewTokenManager_RequiresSecret(t *testing.T) {
	_, err := auth.NewTokenManager("", "questboard", time.Hour)
	assert.Error(t, err)
}
