package user

import (
	"context"
	"fmt"

	"questboard/internal/domain/errs"
)

// DeleteUserUseCase removes an account.
type DeleteUserUseCase struct {
	repo Repository
}

// NewDeleteUserUseCase creates the use case.
func NewDeleteUserUseCase(repo Repository) *DeleteUserUseCase {
	return &DeleteUserUseCase{repo: repo}
}

// Execute removes the user. Deleting an absent ID succeeds silently.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.RequestedBy.IsZero() {
		return errs.ErrUnauthorized
	}
	if cmd.UserID.IsZero() {
		return errs.ErrInvalidInput
	}

	if err := uc.repo.Delete(ctx, cmd.UserID); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}
