package user

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"questboard/internal/application/appcore"
	"questboard/internal/domain/errs"
)

// UpdateUserUseCase handles profile edits.
type UpdateUserUseCase struct {
	repo Repository
}

// NewUpdateUserUseCase creates the use case.
func NewUpdateUserUseCase(repo Repository) *UpdateUserUseCase {
	return &UpdateUserUseCase{repo: repo}
}

// Execute updates name/email and optionally the password. The caller must
// present the current password; a new password, when given, must pass the same
// rules as at registration.
func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (Result, error) {
	if cmd.RequestedBy.IsZero() {
		return Result{}, errs.ErrUnauthorized
	}
	if err := uc.validate(cmd); err != nil {
		return Result{}, fmt.Errorf("validation failed: %w", err)
	}

	u, err := uc.repo.FindByID(ctx, cmd.UserID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, fmt.Errorf("failed to load user: %w", err)
	}

	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash()), []byte(cmd.CurrentPassword)) != nil {
		return Result{}, ErrInvalidCredentials
	}

	if profileErr := u.UpdateProfile(cmd.Name, cmd.Email); profileErr != nil {
		return Result{}, profileErr
	}

	if cmd.Password != "" {
		hash, hashErr := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
		if hashErr != nil {
			return Result{}, fmt.Errorf("failed to hash password: %w", hashErr)
		}
		if setErr := u.SetPasswordHash(string(hash)); setErr != nil {
			return Result{}, setErr
		}
	}

	if saveErr := uc.repo.Save(ctx, u); saveErr != nil {
		return Result{}, fmt.Errorf("failed to save user: %w", saveErr)
	}

	return Result{User: u}, nil
}

func (uc *UpdateUserUseCase) validate(cmd UpdateUserCommand) error {
	if err := appcore.ValidateUUID("userID", cmd.UserID); err != nil {
		return err
	}
	if err := appcore.ValidateRequired("name", cmd.Name); err != nil {
		return err
	}
	if err := appcore.ValidateEmail("email", cmd.Email); err != nil {
		return err
	}
	if cmd.Password != "" {
		if cmd.Password != cmd.PasswordConfirmation {
			return appcore.NewValidationError("password_confirmation", "does not match password")
		}
		return appcore.ValidateMinLength("password", cmd.Password, MinPasswordLength)
	}
	return nil
}
