// Package middleware holds the Echo middleware chain for the board.
package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"questboard/internal/domain/uuid"
)

// Context keys set by the auth middleware.
const (
	UserIDKey    = "user_id"
	SessionIDKey = "session_id"
)

const bearerPrefix = "Bearer "

// TokenVerifier checks a signin token and returns the user and session it
// names. Implemented by auth.TokenManager.
type TokenVerifier interface {
	Verify(token string) (uuid.UUID, string, error)
}

// SessionChecker confirms a session is still active and returns its user.
// Implemented by auth.SessionStore.
type SessionChecker interface {
	GetSessionUser(ctx context.Context, sessionID string) (uuid.UUID, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	Verifier TokenVerifier
	Sessions SessionChecker
	Logger   *slog.Logger
}

// Auth returns the single signin gate every protected route goes through.
// It expects a Bearer token, verifies the signature, and confirms the session
// it names is still active so signout revokes the token immediately.
func Auth(config AuthConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearerToken(c.Request())
			if token == "" {
				return respondNeedSignin(c)
			}

			userID, sessionID, err := config.Verifier.Verify(token)
			if err != nil {
				return respondNeedSignin(c)
			}

			sessionUser, err := config.Sessions.GetSessionUser(c.Request().Context(), sessionID)
			if err != nil || sessionUser != userID {
				return respondNeedSignin(c)
			}

			c.Set(UserIDKey, userID)
			c.Set(SessionIDKey, sessionID)
			return next(c)
		}
	}
}

func extractBearerToken(req *http.Request) string {
	header := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, bearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
}

func respondNeedSignin(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, map[string]any{
		"success": false,
		"flash": map[string]string{
			"status":   "danger",
			"message":  "You need to sign in first.",
			"redirect": "/signin",
		},
		"error": map[string]string{
			"code":    "UNAUTHORIZED",
			"message": "Authentication required",
		},
	})
}

// GetUserID retrieves the authenticated user's ID from the echo context.
// Returns the zero UUID when the request did not pass the auth gate.
func GetUserID(c echo.Context) uuid.UUID {
	if id, ok := c.Get(UserIDKey).(uuid.UUID); ok {
		return id
	}
	return ""
}

// GetSessionID retrieves the session ID from the echo context.
func GetSessionID(c echo.Context) string {
	if id, ok := c.Get(SessionIDKey).(string); ok {
		return id
	}
	return ""
}
