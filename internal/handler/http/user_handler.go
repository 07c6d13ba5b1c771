package httphandler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	userapp "questboard/internal/application/user"
	"questboard/internal/domain/user"
	"questboard/internal/domain/uuid"
	"questboard/internal/infrastructure/httpserver"
	"questboard/internal/middleware"
)

// RegisterUserRequest carries the signup form fields.
type RegisterUserRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UpdateUserRequest carries the profile edit form fields.
type UpdateUserRequest struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// UserResponse represents a user in API responses. The password hash never
// leaves the server.
type UserResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// UserListResponse represents the user listing.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
}

// UserHandler handles account HTTP requests.
type UserHandler struct {
	registerUser *userapp.RegisterUserUseCase
	getUser      *userapp.GetUserUseCase
	listUsers    *userapp.ListUsersUseCase
	updateUser   *userapp.UpdateUserUseCase
	deleteUser   *userapp.DeleteUserUseCase
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	registerUser *userapp.RegisterUserUseCase,
	getUser *userapp.GetUserUseCase,
	listUsers *userapp.ListUsersUseCase,
	updateUser *userapp.UpdateUserUseCase,
	deleteUser *userapp.DeleteUserUseCase,
) *UserHandler {
	return &UserHandler{
		registerUser: registerUser,
		getUser:      getUser,
		listUsers:    listUsers,
		updateUser:   updateUser,
		deleteUser:   deleteUser,
	}
}

// RegisterRoutes registers user routes with the router. Signup and the
// profile page are public; listing and edits require a session.
func (h *UserHandler) RegisterRoutes(r *httpserver.Router) {
	r.Public().POST("/users", h.Register)
	r.Public().GET("/users/:id", h.Get)

	r.Auth().GET("/users", h.List)
	r.Auth().PUT("/users/:id", h.Update)
	r.Auth().DELETE("/users/:id", h.Delete)
}

// Register handles POST /api/v1/users (signup).
func (h *UserHandler) Register(c echo.Context) error {
	var req RegisterUserRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	result, err := h.registerUser.Execute(c.Request().Context(), userapp.RegisterUserCommand{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrEmailTaken) {
			return httpserver.RespondErrorFlash(c, err,
				httpserver.DangerFlash("That email is already registered.", "/signup"))
		}
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondWithFlash(c, http.StatusCreated,
		toUserResponse(result.User),
		httpserver.SuccessFlash("Welcome aboard! Please sign in.", "/signin"))
}

// List handles GET /api/v1/users.
func (h *UserHandler) List(c echo.Context) error {
	result, err := h.listUsers.Execute(c.Request().Context())
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	resp := UserListResponse{Users: make([]UserResponse, 0, len(result.Users))}
	for _, u := range result.Users {
		resp.Users = append(resp.Users, toUserResponse(u))
	}
	return httpserver.RespondOK(c, resp)
}

// Get handles GET /api/v1/users/:id.
func (h *UserHandler) Get(c echo.Context) error {
	userID, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_USER_ID", "invalid user ID format")
	}

	result, err := h.getUser.Execute(c.Request().Context(), userID)
	if err != nil {
		return httpserver.RespondError(c, err)
	}
	return httpserver.RespondOK(c, toUserResponse(result.User))
}

// Update handles PUT /api/v1/users/:id.
func (h *UserHandler) Update(c echo.Context) error {
	userID, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_USER_ID", "invalid user ID format")
	}

	var req UpdateUserRequest
	if bindErr := c.Bind(&req); bindErr != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_REQUEST", "invalid request body")
	}

	result, err := h.updateUser.Execute(c.Request().Context(), userapp.UpdateUserCommand{
		UserID:               userID,
		RequestedBy:          middleware.GetUserID(c),
		Name:                 req.Name,
		Email:                req.Email,
		CurrentPassword:      req.CurrentPassword,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		if errors.Is(err, userapp.ErrInvalidCredentials) {
			return httpserver.RespondErrorWithCode(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "current password does not match")
		}
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondWithFlash(c, http.StatusOK,
		toUserResponse(result.User),
		httpserver.SuccessFlash("Profile has been updated.", "/users/"+userID.String()))
}

// Delete handles DELETE /api/v1/users/:id.
func (h *UserHandler) Delete(c echo.Context) error {
	userID, err := uuid.ParseUUID(c.Param("id"))
	if err != nil {
		return httpserver.RespondErrorWithCode(c, http.StatusBadRequest, "INVALID_USER_ID", "invalid user ID format")
	}

	err = h.deleteUser.Execute(c.Request().Context(), userapp.DeleteUserCommand{
		UserID:      userID,
		RequestedBy: middleware.GetUserID(c),
	})
	if err != nil {
		return httpserver.RespondError(c, err)
	}

	return httpserver.RespondWithFlash(c, http.StatusOK, nil,
		httpserver.SuccessFlash("Account has been removed.", "/"))
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Name:      u.Name(),
		Email:     u.Email(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339),
	}
}
