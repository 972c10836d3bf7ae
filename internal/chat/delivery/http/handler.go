package http

import (
	"errors"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"

	"content-assistant/internal/chat"
	"content-assistant/internal/middleware"
	"content-assistant/pkg/response"
)

// Chat godoc
// @Summary     Route a chat message
// @Description Classifies the message into intents and dispatches to the matching content agents. May answer with a clarifying question instead of content.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string  true "Caller identity"
// @Param       body      body   chatReq true "Chat turn"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Validation error"
// @Failure     401 {object} response.Resp "No session"
// @Failure     500 {object} response.Resp "Processing error"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationError(c, "invalid request body")
		return
	}
	if err := req.validate(); err != nil {
		response.ValidationError(c, err.Error())
		return
	}

	res, err := h.uc.HandleMessage(ctx, sc, req.toInput())
	if err != nil {
		h.mapError(c, err)
		return
	}

	switch r := res.(type) {
	case *chat.SingleResult:
		if r.Image != nil {
			response.OK(c, gin.H{"agent": r.Agent, "content": r.Content, "image": r.Image})
			return
		}
		response.Single(c, r.Agent, r.Content)
	case *chat.MultiResult:
		response.Multi(c, r.Results)
	default:
		h.l.Errorf(ctx, "chat: unexpected result type %T", res)
		response.ProcessingError(c, "")
	}
}

// Clear godoc
// @Summary     Clear conversation state
// @Description Removes the caller's conversation memory, pending clarification and document state.
// @Tags        Chat
// @Produce     json
// @Param       X-User-ID header string true "Caller identity"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp "No session"
// @Failure     500 {object} response.Resp "Processing error"
// @Router      /api/v1/chat/clear [DELETE]
func (h *handler) Clear(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	removed, err := h.uc.Clear(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.Clear: %v", err)
		response.ProcessingError(c, "")
		return
	}

	response.OK(c, clearResp{Removed: removed})
}

// Stats godoc
// @Summary     Agent usage statistics
// @Description Returns the registered agents and their dispatch counters since startup.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	names := h.registry.Names()
	sort.Strings(names)

	response.OK(c, statsResp{
		Agents: names,
		Usage:  h.uc.Usage(),
	})
}

// Health godoc
// @Summary     Chat health probe
// @Description Liveness probe for the chat route; requires no session.
// @Tags        Chat
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/health [GET]
func (h *handler) Health(c *gin.Context) {
	response.OK(c, gin.H{"status": "ok"})
}

// mapError translates use-case errors into HTTP responses.
func (h *handler) mapError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.ValidationError(c, err.Error())
	case errors.Is(err, chat.ErrNoIntents):
		h.l.Warnf(ctx, "chat: %v", err)
		response.ProcessingError(c, "could not determine intent")
	case errors.Is(err, chat.ErrUnhandledAgent):
		h.l.Errorf(ctx, "chat: %v", err)
		response.UnhandledAgent(c, agentFromErr(err))
	default:
		h.l.Errorf(ctx, "uc.HandleMessage: %v", err)
		response.ProcessingError(c, "")
	}
}

// agentFromErr pulls the agent name suffix out of a wrapped
// ErrUnhandledAgent ("...: <agent>").
func agentFromErr(err error) string {
	msg := err.Error()
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
