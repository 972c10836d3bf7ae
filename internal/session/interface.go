package session

import (
	"context"

	"content-assistant/internal/model"
)

// Store is the per-user conversation memory contract consumed by the router.
//
// Memory is a convenience, not a correctness-critical path: Append and
// GetConversation degrade silently (logged) when the cache is unavailable so
// the turn can still complete.
type Store interface {
	// Append adds one message to the user's history. Cache failures are
	// logged and swallowed; the conversation continues without memory.
	Append(ctx context.Context, userID string, role model.Role, content, agent string)

	// GetConversation returns the user's history. Absence and cache errors
	// both yield an empty conversation, never an error.
	GetConversation(ctx context.Context, userID string) model.Conversation

	// Clear removes the user's history and attached-document state.
	// Idempotent; reports whether anything was actually removed.
	Clear(ctx context.Context, userID string) (bool, error)
}
