package user

import (
	"context"
	"fmt"
)

// ListUsersUseCase returns every registered user.
type ListUsersUseCase struct {
	repo Repository
}

// NewListUsersUseCase creates the use case.
func NewListUsersUseCase(repo Repository) *ListUsersUseCase {
	return &ListUsersUseCase{repo: repo}
}

// Execute lists all users.
func (uc *ListUsersUseCase) Execute(ctx context.Context) (ListResult, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list users: %w", err)
	}
	return ListResult{Users: users}, nil
}
