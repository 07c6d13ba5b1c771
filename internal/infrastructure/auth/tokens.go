package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"questboard/internal/domain/uuid"
)

// Token errors.
var (
	ErrInvalidToken = errors.New("invalid token")
)

// Claims is the JWT payload of a signin token. The session ID doubles as the
// JWT ID so signout can revoke the token server-side.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-signed session tokens.
type TokenManager struct {
	secret []byte
	issuer string
	ttl    time.Duration
}

// NewTokenManager creates a TokenManager. The secret must be non-empty.
func NewTokenManager(secret string, issuer string, ttl time.Duration) (*TokenManager, error) {
	if secret == "" {
		return nil, errors.New("token secret is required")
	}
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
	}, nil
}

// TTL returns the configured token lifetime.
func (m *TokenManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a signed token for the user bound to sessionID.
func (m *TokenManager) Issue(userID uuid.UUID, sessionID string) (string, error) {
	if userID.IsZero() {
		return "", errors.New("userID is required")
	}
	if sessionID == "" {
		return "", errors.New("sessionID is required")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   userID.String(),
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify parses the token and returns the user and session it carries.
// Expired, malformed or foreign-signed tokens all map to ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (uuid.UUID, string, error) {
	if tokenString == "" {
		return "", "", ErrInvalidToken
	}

	var claims Claims
	token, err := jwt.ParseWithClaims(
		tokenString,
		&claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", "", ErrInvalidToken
	}

	userID, err := uuid.ParseUUID(claims.Subject)
	if err != nil {
		return "", "", ErrInvalidToken
	}
	if claims.ID == "" {
		return "", "", ErrInvalidToken
	}

	return userID, claims.ID, nil
}
