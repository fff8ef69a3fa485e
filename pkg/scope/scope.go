package scope

import (
	"context"
	"errors"
	"time"
)

// Role values carried in a Scope.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
	ErrMissingClaim = errors.New("missing required claim")
)

// Scope identifies the caller of a request.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	AIName   string `json:"ai_name,omitempty"`
	DevName  string `json:"dev_name,omitempty"`
}

// IsAdmin reports whether the caller holds the admin role.
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// Manager issues and verifies session tokens.
type Manager interface {
	Generate(s Scope) (string, time.Time, error)
	Verify(token string) (Scope, error)
}

type scopeCtxKey struct{}

// SetScopeToContext returns a copy of ctx carrying s.
func SetScopeToContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeCtxKey{}, s)
}

// GetScopeFromContext returns the Scope stored by SetScopeToContext.
func GetScopeFromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeCtxKey{}).(Scope)
	return s, ok
}
