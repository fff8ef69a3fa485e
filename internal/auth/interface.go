package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Login exchanges an access key for a session token. The configured admin
	// key yields an admin session, any user key a user session.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
