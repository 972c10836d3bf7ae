package middleware

import (
	pkgLog "content-assistant/pkg/log"
)

type Middleware struct {
	l       pkgLog.Logger
	limiter *userRateLimiter
}

// New creates the middleware set. requestsPerMin <= 0 disables rate limiting.
func New(l pkgLog.Logger, requestsPerMin int) Middleware {
	var limiter *userRateLimiter
	if requestsPerMin > 0 {
		limiter = newUserRateLimiter(requestsPerMin)
	}
	return Middleware{l: l, limiter: limiter}
}
