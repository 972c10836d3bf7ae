package http

import (
	"github.com/gin-gonic/gin"

	"content-assistant/internal/agents"
	"content-assistant/internal/chat"
	pkgLog "content-assistant/pkg/log"
)

// Handler is the public interface for the chat HTTP delivery layer.
type Handler interface {
	Chat(c *gin.Context)
	Clear(c *gin.Context)
	Stats(c *gin.Context)
	Health(c *gin.Context)
}

type handler struct {
	l        pkgLog.Logger
	uc       chat.UseCase
	registry *agents.Registry
}

var _ Handler = (*handler)(nil)

// New creates a new HTTP handler for the chat domain.
func New(l pkgLog.Logger, uc chat.UseCase, registry *agents.Registry) *handler {
	return &handler{l: l, uc: uc, registry: registry}
}
