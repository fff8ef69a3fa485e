package auth

import (
	"time"

	"central-gpt/pkg/scope"
)

const AdminUserID = "admin"

type LoginInput struct {
	Key string
}

type LoginOutput struct {
	Token     string
	ExpiresAt time.Time
	Scope     scope.Scope
}
