package user

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateUserInput) (CreateUserOutput, error)
	List(ctx context.Context, input ListUsersInput) (ListUsersOutput, error)
	Delete(ctx context.Context, id string) error
	// VerifyKey returns the user owning key or ErrInvalidKey.
	VerifyKey(ctx context.Context, key string) (User, error)
}
