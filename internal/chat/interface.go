package chat

import (
	"context"

	"content-assistant/internal/model"
)

// UseCase is the conversational routing engine: one call per inbound turn.
type UseCase interface {
	// HandleMessage routes one message: pending-clarification completion or
	// fresh classification, then dispatch to one or many agents.
	HandleMessage(ctx context.Context, sc model.Scope, input Input) (Result, error)

	// Clear removes the user's conversation, pending request and document
	// state. Idempotent; reports whether anything was removed.
	Clear(ctx context.Context, sc model.Scope) (bool, error)

	// Usage returns a snapshot of per-agent dispatch counters.
	Usage() map[string]int64
}
