package repository

import (
	"context"

	"central-gpt/internal/user"
)

// Repository is the composed interface for the user data store.
type Repository interface {
	UserRepository
}

// UserRepository defines all data access methods for the User entity.
type UserRepository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (user.User, error)
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (user.User, error)
	ListUsers(ctx context.Context, opt ListUsersOptions) ([]user.User, int, error)
	DeleteUser(ctx context.Context, id string) error
}
