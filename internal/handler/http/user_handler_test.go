package httphandler_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "questboard/internal/application/user"
	"questboard/internal/domain/errs"
	"questboard/internal/domain/user"
	"questboard/internal/domain/uuid"
	httphandler "questboard/internal/handler/http"
	"questboard/internal/infrastructure/httpserver"
	"questboard/internal/middleware"
)

type memUserRepo struct {
	users map[uuid.UUID]*user.User
}

func (m *memUserRepo) Save(_ context.Context, u *user.User) error {
	m.users[u.ID()] = u
	return nil
}

func (m *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

func (m *memUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

func (m *memUserRepo) List(_ context.Context) ([]*user.User, error) {
	all := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		all = append(all, u)
	}
	return all, nil
}

type userHandlerFixture struct {
	repo    *memUserRepo
	handler *httphandler.UserHandler
	echo    *echo.Echo
}

func newUserHandlerFixture() *userHandlerFixture {
	repo := &memUserRepo{users: make(map[uuid.UUID]*user.User)}
	handler := httphandler.NewUserHandler(
		userapp.NewRegisterUserUseCase(repo),
		userapp.NewGetUserUseCase(repo),
		userapp.NewListUsersUseCase(repo),
		userapp.NewUpdateUserUseCase(repo),
		userapp.NewDeleteUserUseCase(repo),
	)
	return &userHandlerFixture{repo: repo, handler: handler, echo: echo.New()}
}

func newJSONRequest(
	e *echo.Echo, method, target, body string,
) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func signupBody(email string) string {
	return `{"name":"Dana","email":"` + email + `","password":"hunter22","password_confirmation":"hunter22"}`
}

func TestUserHandler_Register(t *testing.T) {
	f := newUserHandlerFixture()
	e := f.echo

	c, rec := newJSONRequest(e, http.MethodPost, "/api/v1/users", signupBody("dana@example.com"))
	require.NoError(t, f.handler.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Welcome aboard! Please sign in.")
	assert.NotContains(t, rec.Body.String(), "password", "hash must not leak into the response")
	assert.Len(t, f.repo.users, 1)
}

func TestUserHandler_Register_DuplicateEmail(t *testing.T) {
	f := newUserHandlerFixture()
	e := f.echo

	c, _ := newJSONRequest(e, http.MethodPost, "/api/v1/users", signupBody("dana@example.com"))
	require.NoError(t, f.handler.Register(c))

	c, rec := newJSONRequest(e, http.MethodPost, "/api/v1/users", signupBody("dana@example.com"))
	require.NoError(t, f.handler.Register(c))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "That email is already registered.")
	assert.Len(t, f.repo.users, 1)
}

func TestUserHandler_Register_ShortPassword(t *testing.T) {
	f := newUserHandlerFixture()

	c, rec := newJSONRequest(f.echo, http.MethodPost, "/api/v1/users",
		`{"name":"Dana","email":"dana@example.com","password":"abc12","password_confirmation":"abc12"}`)
	require.NoError(t, f.handler.Register(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, f.repo.users)
}

func TestUserHandler_Get_NotFound(t *testing.T) {
	f := newUserHandlerFixture()

	c, rec := newJSONRequest(f.echo, http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(uuid.NewUUID().String())
	require.NoError(t, f.handler.Get(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUserHandler_Update_WrongCurrentPassword(t *testing.T) {
	f := newUserHandlerFixture()
	seeded := seedUser(t, f)

	c, rec := newJSONRequest(f.echo, http.MethodPut, "/",
		`{"name":"Dana","email":"dana@example.com","current_password":"wrong-pass","password":"newpass88","password_confirmation":"newpass88"}`)
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID().String())
	c.Set(middleware.UserIDKey, seeded.ID())
	require.NoError(t, f.handler.Update(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_CREDENTIALS")
}

func TestUserHandler_Delete(t *testing.T) {
	f := newUserHandlerFixture()
	seeded := seedUser(t, f)

	c, rec := newJSONRequest(f.echo, http.MethodDelete, "/", "")
	c.SetParamNames("id")
	c.SetParamValues(seeded.ID().String())
	c.Set(middleware.UserIDKey, seeded.ID())
	require.NoError(t, f.handler.Delete(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Account has been removed.")
	assert.Empty(t, f.repo.users)
}

// The profile page is readable without a session, like signup; the listing
// and all edits sit behind the gate.
func TestUserHandler_RouteVisibility(t *testing.T) {
	f := newUserHandlerFixture()
	seeded := seedUser(t, f)

	e := echo.New()
	denyAll := func(echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			return c.NoContent(http.StatusUnauthorized)
		}
	}
	router := httpserver.NewRouter(e, httpserver.RouterConfig{
		Logger:         slog.New(slog.DiscardHandler),
		AuthMiddleware: denyAll,
	})
	f.handler.RegisterRoutes(router)

	do := func(method, target string) int {
		req := httptest.NewRequest(method, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, do(http.MethodGet, "/api/v1/users/"+seeded.ID().String()))
	assert.Equal(t, http.StatusUnauthorized, do(http.MethodGet, "/api/v1/users"))
	assert.Equal(t, http.StatusUnauthorized, do(http.MethodDelete, "/api/v1/users/"+seeded.ID().String()))
}

func seedUser(t *testing.T, f *userHandlerFixture) *user.User {
	t.Helper()
	register := userapp.NewRegisterUserUseCase(f.repo)
	result, err := register.Execute(context.Background(), userapp.RegisterUserCommand{
		Name:                 "Dana",
		Email:                "dana@example.com",
		Password:             "hunter22",
		PasswordConfirmation: "hunter22",
	})
	require.NoError(t, err)
	return result.User
}
