// Package auth holds session issuing and verification for signed-in users.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"questboard/internal/domain/uuid"
)

// Session store errors.
var (
	ErrSessionNotFound = errors.New("session not found")
)

const defaultSessionKeyPrefix = "auth:session:"

// SessionStore keeps active signin sessions in Redis. A session exists from
// signin until signout or TTL expiry; a token whose session is gone is
// rejected even if its signature is still valid.
type SessionStore struct {
	client    *redis.Client
	keyPrefix string
}

// SessionStoreConfig contains configuration for SessionStore.
type SessionStoreConfig struct {
	Client    *redis.Client
	KeyPrefix string
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(cfg SessionStoreConfig) *SessionStore {
	keyPrefix := cfg.KeyPrefix
	if keyPrefix == "" {
		keyPrefix = defaultSessionKeyPrefix
	}

	return &SessionStore{
		client:    cfg.Client,
		keyPrefix: keyPrefix,
	}
}

func (s *SessionStore) sessionKey(sessionID string) string {
	return s.keyPrefix + sessionID
}

// StoreSession records an active session for the user with the given TTL.
func (s *SessionStore) StoreSession(
	ctx context.Context,
	sessionID string,
	userID uuid.UUID,
	ttl time.Duration,
) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}
	if userID.IsZero() {
		return errors.New("userID is required")
	}

	err := s.client.Set(ctx, s.sessionKey(sessionID), userID.String(), ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// GetSessionUser returns the user a session belongs to, or ErrSessionNotFound
// when the session was never created, expired or was signed out.
func (s *SessionStore) GetSessionUser(ctx context.Context, sessionID string) (uuid.UUID, error) {
	if sessionID == "" {
		return "", errors.New("sessionID is required")
	}

	value, err := s.client.Get(ctx, s.sessionKey(sessionID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrSessionNotFound
		}
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	userID, err := uuid.ParseUUID(value)
	if err != nil {
		return "", fmt.Errorf("corrupt session value: %w", err)
	}
	return userID, nil
}

// DeleteSession removes the session (signout). Deleting an absent session is
// a no-op.
func (s *SessionStore) DeleteSession(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return errors.New("sessionID is required")
	}

	if err := s.client.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}
