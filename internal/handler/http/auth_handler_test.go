package httphandler_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "questboard/internal/application/user"
	"questboard/internal/domain/user"
	"questboard/internal/domain/uuid"
	"questboard/internal/infrastructure/auth"
	httphandler "questboard/internal/handler/http"
)

// The signin failure paths never reach the session store, so these tests run
// without Redis. The full signin round trip is covered by the integration
// setup alongside the session store tests.
func newAuthHandlerFixture(t *testing.T) (*httphandler.AuthHandler, *memUserRepo, *echo.Echo) {
	t.Helper()
	repo := &memUserRepo{users: make(map[uuid.UUID]*user.User)}
	tokens, err := auth.NewTokenManager("test-secret-at-least-32-bytes-long!", "questboard", time.Hour)
	require.NoError(t, err)

	handler := httphandler.NewAuthHandler(
		userapp.NewAuthenticateUserUseCase(repo),
		tokens,
		auth.NewSessionStore(auth.SessionStoreConfig{}),
	)
	return handler, repo, echo.New()
}

func TestAuthHandler_Signin_WrongPassword(t *testing.T) {
	handler, repo, e := newAuthHandlerFixture(t)

	register := userapp.NewRegisterUserUseCase(repo)
	_, err := register.Execute(context.Background(), userapp.RegisterUserCommand{
		Name:                 "Dana",
		Email:                "dana@example.com",
		Password:             "hunter22",
		PasswordConfirmation: "hunter22",
	})
	require.NoError(t, err)

	c, rec := newJSONRequest(e, http.MethodPost, "/api/v1/auth/signin",
		`{"email":"dana@example.com","password":"not-it"}`)
	require.NoError(t, handler.Signin(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wrong email or password.")
	assert.Contains(t, rec.Body.String(), "/signin")
}

func TestAuthHandler_Signin_UnknownEmail(t *testing.T) {
	handler, _, e := newAuthHandlerFixture(t)

	c, rec := newJSONRequest(e, http.MethodPost, "/api/v1/auth/signin",
		`{"email":"nobody@example.com","password":"hunter22"}`)
	require.NoError(t, handler.Signin(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Wrong email or password.")
}
