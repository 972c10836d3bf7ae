package middleware

import (
	"github.com/gin-gonic/gin"

	"content-assistant/internal/model"
	"content-assistant/pkg/response"
)

const scopeKey = "scope"

// Auth resolves the caller identity from the X-User-ID header (set by the
// platform gateway in front of this service) and stores a model.Scope in the
// gin context. Requests without an identity are rejected.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader("X-User-ID")
		if userID == "" {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set(scopeKey, model.Scope{
			UserID:   userID,
			Username: c.GetHeader("X-Username"),
		})
		c.Next()
	}
}

// ScopeFromContext returns the scope stored by Auth.
func ScopeFromContext(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(scopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
