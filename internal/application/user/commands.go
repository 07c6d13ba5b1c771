package user

import (
	"questboard/internal/domain/uuid"
)

// RegisterUserCommand creates a new account.
type RegisterUserCommand struct {
	Name                 string
	Email                string
	Password             string
	PasswordConfirmation string
}

// AuthenticateCommand checks email/password credentials for signin.
type AuthenticateCommand struct {
	Email    string
	Password string
}

// UpdateUserCommand edits a profile. CurrentPassword must match before any
// change is applied; Password is optional and replaces the hash when set.
type UpdateUserCommand struct {
	UserID               uuid.UUID
	RequestedBy          uuid.UUID
	Name                 string
	Email                string
	CurrentPassword      string
	Password             string
	PasswordConfirmation string
}

// DeleteUserCommand removes an account.
type DeleteUserCommand struct {
	UserID      uuid.UUID
	RequestedBy uuid.UUID
}
