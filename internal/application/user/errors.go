package user

import (
	"fmt"

	"questboard/internal/domain/errs"
)

// User use case errors. They wrap the domain sentinels so transport-level
// error mapping keeps working through errors.Is.
var (
	// ErrUserNotFound is returned when the referenced user does not exist.
	ErrUserNotFound = fmt.Errorf("user: %w", errs.ErrNotFound)

	// ErrEmailTaken is returned when registering with an email already in use.
	ErrEmailTaken = fmt.Errorf("email address: %w", errs.ErrAlreadyExists)

	// ErrInvalidCredentials is returned on a failed signin or a wrong
	// current-password check. Deliberately does not say which part failed.
	ErrInvalidCredentials = fmt.Errorf("invalid email or password: %w", errs.ErrUnauthorized)
)
