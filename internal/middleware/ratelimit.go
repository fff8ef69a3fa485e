package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"central-gpt/pkg/response"
)

// rateLimiter keeps one token bucket per caller. Every request re-adds the
// bucket so the TTL counts from the caller's last request; a bucket is only
// dropped after limiterIdleTTL without traffic.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

const limiterIdleTTL = 5 * time.Minute

func newRateLimiter(cfg RateLimitConfig) *rateLimiter {
	if cfg.RequestsPerMin <= 0 {
		return nil
	}
	if cfg.MaxCallers <= 0 {
		cfg.MaxCallers = 1000
	}
	burst := cfg.Burst
	if burst <= 0 {
		burst = cfg.RequestsPerMin / 10
	}
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](cfg.MaxCallers, nil, limiterIdleTTL),
		rate:     rate.Limit(float64(cfg.RequestsPerMin) / 60.0),
		burst:    burst,
	}
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
	}
	rl.limiters.Add(key, limiter)
	rl.mu.Unlock()

	return limiter.Allow()
}

// RateLimit throttles callers by user id, falling back to client IP for
// unauthenticated routes. A zero RequestsPerMin disables it.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		key := "ip:" + c.ClientIP()
		if sc, ok := GetScope(c); ok {
			key = "user:" + sc.UserID
		}

		if !m.limiter.allow(key) {
			m.l.Warnf(c.Request.Context(), "middleware.RateLimit: limit exceeded for %s", key)
			response.TooManyRequests(c)
			return
		}
		c.Next()
	}
}
