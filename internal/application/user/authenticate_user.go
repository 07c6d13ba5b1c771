package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"questboard/internal/domain/errs"
)

// AuthenticateUserUseCase checks signin credentials.
type AuthenticateUserUseCase struct {
	repo Repository
}

// NewAuthenticateUserUseCase creates the use case.
func NewAuthenticateUserUseCase(repo Repository) *AuthenticateUserUseCase {
	return &AuthenticateUserUseCase{repo: repo}
}

// Execute returns the user when the email exists and the password matches its
// bcrypt hash. Unknown email and wrong password produce the same error.
func (uc *AuthenticateUserUseCase) Execute(ctx context.Context, cmd AuthenticateCommand) (Result, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return Result{}, ErrInvalidCredentials
	}

	u, err := uc.repo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrInvalidCredentials
		}
		return Result{}, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(cmd.Password)) != nil {
		return Result{}, ErrInvalidCredentials
	}

	return Result{User: u}, nil
}
