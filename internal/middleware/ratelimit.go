package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"content-assistant/pkg/response"
)

// RateLimit enforces a per-user request budget. Must run after Auth so the
// user identity is available; unauthenticated requests pass through untouched
// and are rejected by Auth instead.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter == nil {
			c.Next()
			return
		}

		sc, ok := ScopeFromContext(c)
		if !ok {
			c.Next()
			return
		}

		if !m.limiter.Allow(sc.UserID) {
			m.l.Warnf(c.Request.Context(), "middleware: rate limit exceeded for user %s", sc.UserID)
			response.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}

// userRateLimiter keeps one token bucket per user with auto-cleanup of idle
// entries.
type userRateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newUserRateLimiter(requestsPerMin int) *userRateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &userRateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,
			nil,
			time.Minute*5,
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0),
		burst: burst,
	}
}

func (rl *userRateLimiter) Allow(key string) bool {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	return limiter.Allow()
}
