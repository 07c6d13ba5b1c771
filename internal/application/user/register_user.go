// Package user holds the account use cases: registration, signin and profile
// maintenance.
package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"questboard/internal/application/appcore"
	"questboard/internal/domain/errs"
	"questboard/internal/domain/user"
)

// MinPasswordLength is the minimum accepted password length.
const MinPasswordLength = 6

// RegisterUserUseCase handles account creation.
type RegisterUserUseCase struct {
	repo Repository
}

// NewRegisterUserUseCase creates the use case.
func NewRegisterUserUseCase(repo Repository) *RegisterUserUseCase {
	return &RegisterUserUseCase{repo: repo}
}

// Execute validates the registration form, rejects duplicate emails and
// stores the user with a bcrypt password hash.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, cmd RegisterUserCommand) (Result, error) {
	if err := uc.validate(cmd); err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}

	_, err := uc.repo.FindByEmail(ctx, cmd.Email)
	if err == nil {
		return Result{}, ErrEmailTaken
	}
	if !errors.Is(err, errs.ErrNotFound) {
		return Result{}, fmt.Errorf("failed to check email: %w", err)
	}

	u, err := user.NewUser(cmd.Name, cmd.Email)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return Result{}, fmt.Errorf("failed to hash password: %w", err)
	}
	if hashErr := u.SetPasswordHash(string(hash)); hashErr != nil {
		return Result{}, hashErr
	}

	if saveErr := uc.repo.Save(ctx, u); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save user: %w", saveErr)
	}

	return Result{User: u}, nil
}

func (uc *RegisterUserUseCase) validate(cmd RegisterUserCommand) error {
	if err := appcore.ValidateRequired("name", cmd.Name); err != nil {
		return err
	}
	if err := appcore.ValidateEmail("email", cmd.Email); err != nil {
		return err
	}
	if err := appcore.ValidateRequired("password", cmd.Password); err != nil {
		return err
	}
	if cmd.Password != cmd.PasswordConfirmation {
		return appcore.NewValidationError("password_confirmation", "does not match password")
	}
	return appcore.ValidateMinLength("password", cmd.Password, MinPasswordLength)
}
