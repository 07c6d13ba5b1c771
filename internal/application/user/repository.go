package user

import (
	"context"

	"questboard/internal/domain/user"
	"questboard/internal/domain/uuid"
)

// Repository is the user store contract, declared on the consumer side.
type Repository interface {
	// Save persists the user, inserting or replacing by ID.
	Save(ctx context.Context, u *user.User) error

	// FindByID returns the user or errs.ErrNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)

	// FindByEmail returns the user or errs.ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*user.User, error)

	// Delete removes the user by ID. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, id uuid.UUID) error

	// List returns all users, newest first.
	List(ctx context.Context) ([]*user.User, error)
}
