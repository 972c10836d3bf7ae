package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with arbitrary data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Success: true, Data: data})
}

// Single sends 200 for a single-agent result.
func Single(c *gin.Context, agent string, content any) {
	c.JSON(http.StatusOK, Resp{Success: true, Agent: agent, Content: content})
}

// Multi sends 200 for an aggregated multi-intent result.
func Multi(c *gin.Context, results any) {
	c.JSON(http.StatusOK, Resp{Success: true, Results: results})
}

// ValidationError sends 400 with VALIDATION_ERROR.
func ValidationError(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Error: msg, Code: CodeValidationError})
}

// Unauthorized sends 401 when no user identity could be resolved.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{Success: false, Error: "no session", Code: CodeSessionNotFound})
}

// ProcessingError sends 500 with PROCESSING_ERROR. The raw error is never
// exposed to the client.
func ProcessingError(c *gin.Context, msg string) {
	if msg == "" {
		msg = DefaultErrorMessage
	}
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Error: msg, Code: CodeProcessingError})
}

// UnhandledAgent sends 500 with UNHANDLED_AGENT_TYPE.
func UnhandledAgent(c *gin.Context, agent string) {
	c.JSON(http.StatusInternalServerError, Resp{
		Success: false,
		Error:   "no handler registered for agent: " + agent,
		Code:    CodeUnhandledAgentType,
	})
}

// TooManyRequests sends 429 for rate-limited clients.
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Resp{Success: false, Error: "rate limit exceeded", Code: CodeProcessingError})
}
