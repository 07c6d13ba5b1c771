package user_test

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userapp "questboard/internal/application/user"
	"questboard/internal/domain/errs"
	"questboard/internal/domain/user"
	"questboard/internal/domain/uuid"
)

type mockUserRepo struct {
	users   map[uuid.UUID]*user.User
	saveErr error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[uuid.UUID]*user.User)}
}

func (m *mockUserRepo) Save(_ context.Context, u *user.User) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.users[u.ID()] = u
	return nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, errs.ErrNotFound
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range m.users {
		if u.Email() == email {
			return u, nil
		}
	}
	return nil, errs.ErrNotFound
}

func (m *mockUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(m.users, id)
	return nil
}

func (m *mockUserRepo) List(_ context.Context) ([]*user.User, error) {
	users := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].CreatedAt().After(users[j].CreatedAt())
	})
	return users, nil
}

func registerCommand() userapp.RegisterUserCommand {
	return userapp.RegisterUserCommand{
		Name:                 "Dana",
		Email:                "dana@example.com",
		Password:             "hunter22",
		PasswordConfirmation: "hunter22",
	}
}

func registerUser(t *testing.T, repo *mockUserRepo) *user.User {
	t.Helper()
	result, err := userapp.NewRegisterUserUseCase(repo).Execute(context.Background(), registerCommand())
	require.NoError(t, err)
	return result.User
}

func TestRegisterUserUseCase_Execute(t *testing.T) {
	repo := newMockUserRepo()

	u := registerUser(t, repo)
	assert.Equal(t, "Dana", u.Name())
	assert.Equal(t, "dana@example.com", u.Email())
	assert.NotEmpty(t, u.PasswordHash())
	assert.NotEqual(t, "hunter22", u.PasswordHash(), "password must never be stored in the clear")
}

func TestRegisterUserUseCase_Execute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*userapp.RegisterUserCommand)
	}{
		{"missing name", func(c *userapp.RegisterUserCommand) { c.Name = "  " }},
		{"missing email", func(c *userapp.RegisterUserCommand) { c.Email = "" }},
		{"malformed email", func(c *userapp.RegisterUserCommand) { c.Email = "not-an-email" }},
		{"missing password", func(c *userapp.RegisterUserCommand) {
			c.Password = ""
			c.PasswordConfirmation = ""
		}},
		{"short password", func(c *userapp.RegisterUserCommand) {
			c.Password = "abc12"
			c.PasswordConfirmation = "abc12"
		}},
		{"confirmation mismatch", func(c *userapp.RegisterUserCommand) {
			c.PasswordConfirmation = "hunter23"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newMockUserRepo()
			cmd := registerCommand()
			tt.mutate(&cmd)

			_, err := userapp.NewRegisterUserUseCase(repo).Execute(context.Background(), cmd)
			require.ErrorIs(t, err, errs.ErrInvalidInput)
			assert.Empty(t, repo.users)
		})
	}
}

func TestRegisterUserUseCase_Execute_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	registerUser(t, repo)

	cmd := registerCommand()
	cmd.Name = "Other Dana"
	_, err := userapp.NewRegisterUserUseCase(repo).Execute(context.Background(), cmd)
	require.ErrorIs(t, err, userapp.ErrEmailTaken)
	assert.Len(t, repo.users, 1)
}

func TestAuthenticateUserUseCase_Execute(t *testing.T) {
	repo := newMockUserRepo()
	registered := registerUser(t, repo)
	uc := userapp.NewAuthenticateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), userapp.AuthenticateCommand{
		Email:    "dana@example.com",
		Password: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, registered.ID(), result.User.ID())
}

func TestAuthenticateUserUseCase_Execute_BadCredentials(t *testing.T) {
	repo := newMockUserRepo()
	registerUser(t, repo)
	uc := userapp.NewAuthenticateUserUseCase(repo)

	tests := []struct {
		name string
		cmd  userapp.AuthenticateCommand
	}{
		{"unknown email", userapp.AuthenticateCommand{Email: "nobody@example.com", Password: "hunter22"}},
		{"wrong password", userapp.AuthenticateCommand{Email: "dana@example.com", Password: "hunter23"}},
		{"empty password", userapp.AuthenticateCommand{Email: "dana@example.com"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			// One error for every failure mode, so signin leaks nothing.
			assert.ErrorIs(t, err, userapp.ErrInvalidCredentials)
		})
	}
}

func TestGetUserUseCase_Execute(t *testing.T) {
	repo := newMockUserRepo()
	registered := registerUser(t, repo)

	result, err := userapp.NewGetUserUseCase(repo).Execute(context.Background(), registered.ID())
	require.NoError(t, err)
	assert.Equal(t, registered.Email(), result.User.Email())

	_, err = userapp.NewGetUserUseCase(repo).Execute(context.Background(), uuid.NewUUID())
	assert.ErrorIs(t, err, userapp.ErrUserNotFound)
}

func TestListUsersUseCase_Execute(t *testing.T) {
	repo := newMockUserRepo()
	registerUser(t, repo)

	result, err := userapp.NewListUsersUseCase(repo).Execute(context.Background())
	require.NoError(t, err)
	assert.Len(t, result.Users, 1)
}

func TestUpdateUserUseCase_Execute(t *testing.T) {
	repo := newMockUserRepo()
	registered := registerUser(t, repo)
	uc := userapp.NewUpdateUserUseCase(repo)

	result, err := uc.Execute(context.Background(), userapp.UpdateUserCommand{
		UserID:          registered.ID(),
		RequestedBy:     registered.ID(),
		Name:            "Dana Q",
		Email:           "dana.q@example.com",
		CurrentPassword: "hunter22",
	})
	require.NoError(t, err)
	assert.Equal(t, "Dana Q", result.User.Name())
	assert.Equal(t, "dana.q@example.com", result.User.Email())
}

func TestUpdateUserUseCase_Execute_WrongCurrentPassword(t *testing.T) {
	repo := newMockUserRepo()
	registered := registerUser(t, repo)
	uc := userapp.NewUpdateUserUseCase(repo)

	_, err := uc.Execute(context.Background(), userapp.UpdateUserCommand{
		UserID:          registered.ID(),
		RequestedBy:     registered.ID(),
		Name:            "Dana Q",
		Email:           "dana.q@example.com",
		CurrentPassword: "wrong",
	})
	require.ErrorIs(t, err, userapp.ErrInvalidCredentials)

	stored, findErr := repo.FindByID(context.Background(), registered.ID())
	require.NoError(t, findErr)
	assert.Equal(t, "Dana", stored.Name())
}

func TestUpdateUserUseCase_Execute_ChangesPassword(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	registered := registerUser(t, repo)

	_, err := userapp.NewUpdateUserUseCase(repo).Execute(ctx, userapp.UpdateUserCommand{
		UserID:               registered.ID(),
		RequestedBy:          registered.ID(),
		Name:                 "Dana",
		Email:                "dana@example.com",
		CurrentPassword:      "hunter22",
		Password:             "swordfish",
		PasswordConfirmation: "swordfish",
	})
	require.NoError(t, err)

	auth := userapp.NewAuthenticateUserUseCase(repo)
	_, err = auth.Execute(ctx, userapp.AuthenticateCommand{Email: "dana@example.com", Password: "swordfish"})
	assert.NoError(t, err)
	_, err = auth.Execute(ctx, userapp.AuthenticateCommand{Email: "dana@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, userapp.ErrInvalidCredentials)
}

func TestDeleteUserUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	repo := newMockUserRepo()
	registered := registerUser(t, repo)
	uc := userapp.NewDeleteUserUseCase(repo)

	cmd := userapp.DeleteUserCommand{UserID: registered.ID(), RequestedBy: registered.ID()}
	require.NoError(t, uc.Execute(ctx, cmd))
	_, err := repo.FindByID(ctx, registered.ID())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	// Repeat deletes succeed silently.
	require.NoError(t, uc.Execute(ctx, cmd))
}
