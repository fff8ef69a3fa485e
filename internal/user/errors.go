package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUsernameRequired  = errors.New("username is required")
	ErrInvalidKey        = errors.New("invalid access key")
)
