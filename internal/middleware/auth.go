package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"central-gpt/pkg/response"
	"central-gpt/pkg/scope"
)

const (
	authHeader   = "Authorization"
	bearerPrefix = "Bearer "
	scopeKey     = "scope"
)

// Auth verifies the bearer token and stores the caller's Scope on the
// request context.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		header := c.GetHeader(authHeader)
		if !strings.HasPrefix(header, bearerPrefix) {
			response.Unauthorized(c)
			return
		}

		sc, err := m.jwtManager.Verify(strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
		if err != nil {
			m.l.Warnf(ctx, "middleware.Auth: %v", err)
			response.Unauthorized(c)
			return
		}

		SetScope(c, sc)
		c.Next()
	}
}

// AdminOnly rejects callers without the admin role. It must run after Auth.
func (m Middleware) AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		sc, ok := GetScope(c)
		if !ok {
			response.Unauthorized(c)
			return
		}
		if !sc.IsAdmin() {
			response.Forbidden(c)
			return
		}
		c.Next()
	}
}

// SetScope stores sc on both the gin context and the request context.
func SetScope(c *gin.Context, sc scope.Scope) {
	c.Set(scopeKey, sc)
	c.Request = c.Request.WithContext(scope.SetScopeToContext(c.Request.Context(), sc))
}

// GetScope returns the Scope stored by Auth.
func GetScope(c *gin.Context) (scope.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return scope.Scope{}, false
	}
	sc, ok := v.(scope.Scope)
	return sc, ok
}
