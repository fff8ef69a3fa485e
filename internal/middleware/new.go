package middleware

import (
	"central-gpt/pkg/log"
	"central-gpt/pkg/scope"
)

// RateLimitConfig bounds chat requests per caller.
type RateLimitConfig struct {
	RequestsPerMin int
	Burst          int
	MaxCallers     int
}

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, rl RateLimitConfig) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		limiter:    newRateLimiter(rl),
	}
}
