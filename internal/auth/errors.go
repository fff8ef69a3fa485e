package auth

import "errors"

var (
	ErrInvalidKey = errors.New("invalid access key")
)
