// Package user holds the account entity owning questions and participations.
package user

import (
	"strings"
	"time"

	"questboard/internal/domain/errs"
	"questboard/internal/domain/uuid"
)

// User is a registered account. The password itself never enters the domain;
// only the hash produced by the application layer is stored.
type User struct {
	id           uuid.UUID
	name         string
	email        string
	passwordHash string
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates a user with the given name and email.
func NewUser(name, email string) (*User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, errs.ErrInvalidInput
	}

	now := time.Now().UTC()
	return &User{
		id:        uuid.NewUUID(),
		name:      name,
		email:     email,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// Reconstruct rebuilds a user from storage without validation.
func Reconstruct(
	id uuid.UUID,
	name, email, passwordHash string,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// SetPasswordHash stores a new password hash.
func (u *User) SetPasswordHash(hash string) error {
	if hash == "" {
		return errs.ErrInvalidInput
	}
	u.passwordHash = hash
	u.updatedAt = time.Now().UTC()
	return nil
}

// UpdateProfile replaces the name and email.
func (u *User) UpdateProfile(name, email string) error {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return errs.ErrInvalidInput
	}
	u.name = name
	u.email = email
	u.updatedAt = time.Now().UTC()
	return nil
}

// ID returns the user ID.
func (u *User) ID() uuid.UUID { return u.id }

// Name returns the display name.
func (u *User) Name() string { return u.name }

// Email returns the email address.
func (u *User) Email() string { return u.email }

// PasswordHash returns the stored password hash.
func (u *User) PasswordHash() string { return u.passwordHash }

// CreatedAt returns the creation time.
func (u *User) CreatedAt() time.Time { return u.createdAt }

// UpdatedAt returns the last modification time.
func (u *User) UpdatedAt() time.Time { return u.updatedAt }
