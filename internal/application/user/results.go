package user

import (
	"questboard/internal/domain/user"
)

// Result carries a single user out of a use case.
type Result struct {
	User *user.User
}

// ListResult carries all users.
type ListResult struct {
	Users []*user.User
}
