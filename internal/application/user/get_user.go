package user

import (
	"context"
	"errors"
	"fmt"

	"questboard/internal/domain/errs"
	"questboard/internal/domain/uuid"
)

// GetUserUseCase fetches a single user.
type GetUserUseCase struct {
	repo Repository
}

// NewGetUserUseCase creates the use case.
func NewGetUserUseCase(repo Repository) *GetUserUseCase {
	return &GetUserUseCase{repo: repo}
}

// Execute returns the user by ID.
func (uc *GetUserUseCase) Execute(ctx context.Context, id uuid.UUID) (Result, error) {
	if id.IsZero() {
		return Result{}, errs.ErrInvalidInput
	}

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return Result{}, ErrUserNotFound
		}
		return Result{}, fmt.Errorf("failed to load user: %w", err)
	}

	return Result{User: u}, nil
}
