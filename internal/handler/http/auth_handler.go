package httphandler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	userapp "questboard/internal/application/user"
	"questboard/internal/domain/uuid"
	"questboard/internal/infrastructure/auth"
	"questboard/internal/infrastructure/httpserver"
	"questboard/internal/middleware"
)

// SigninRequest carries the signin form fields.
type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SigninResponse carries the issued session token.
type SigninResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// AuthHandler handles signin and signout.
type AuthHandler struct {
	authenticate *userapp.AuthenticateUserUseCase
	tokens       *auth.TokenManager
	sessions     *auth.SessionStore
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(
	authenticate *userapp.AuthenticateUserUseCase,
	tokens *auth.TokenManager,
	sessions *auth.SessionStore,
) *AuthHandler {
	return &AuthHandler{
		authenticate: authenticate,
		tokens:       tokens,
		sessions:     sessions,
	}
}

// RegisterRoutes registers auth routes with the router.
func (h *AuthHandler) RegisterRoutes(r *httpserver.Router) {
	r.Public().POST("/auth/signin", h.Signin)
	r.Auth().POST("/auth/signout", h.Signout)
}

// Signin handles POST /api/v1/auth/signin. On success it opens a session and
// returns the token the client sends back on protected routes.
func (h *AuthHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	ctx := c.Request().Context()
	result, err := h.authenticate.Execute(ctx, userapp.AuthenticateCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			return httpserver.RespondErrorFlash(c, err,
				httpserver.DangerFlash("Wrong email or password.", "/signin"))
		}
		return httpserver.RespondError(c, err)
	}

	sessionID := uuid.NewUUID().String()
	token, err := h.tokens.Issue(result.User.ID(), sessionID)
	if err != nil {
		return httpserver.RespondError(c, err)
	}
	if storeErr := h.sessions.StoreSession(ctx, sessionID, result.User.ID(), h.tokens.TTL()); storeErr != nil {
		return httpserver.RespondError(c, storeErr)
	}

	return httpserver.RespondWithFlash(c, http.StatusOK,
		SigninResponse{Token: token, User: toUserResponse(result.User)},
		httpserver.SuccessFlash("Signed in.", "/questions"))
}

// Signout handles POST /api/v1/auth/signout. Dropping the session revokes
// the token immediately; expired sessions make this a no-op.
func (h *AuthHandler) Signout(c echo.Context) error {
	sessionID := middleware.GetSessionID(c)
	if sessionID != "" {
		if err := h.sessions.DeleteSession(c.Request().Context(), sessionID); err != nil {
			return httpserver.RespondError(c, err)
		}
	}

	return httpserver.RespondWithFlash(c, http.StatusOK, nil,
		httpserver.SuccessFlash("Signed out.", "/"))
}
