package http

import (
	"github.com/gin-gonic/gin"

	"content-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. The health
// probe stays unauthenticated; everything else requires a caller identity.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.GET("/health", h.Health)
		chatGroup.POST("", mw.Auth(), mw.RateLimit(), h.Chat)
		chatGroup.DELETE("/clear", mw.Auth(), h.Clear)
		chatGroup.GET("/stats", mw.Auth(), h.Stats)
	}
}
