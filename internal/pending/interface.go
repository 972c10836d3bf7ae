package pending

import (
	"context"

	"content-assistant/internal/model"
)

// Coordinator serializes pending-request reads and writes per user across
// concurrent requests.
//
// The lock protects only the read-then-decide step of a turn; it is never
// held across downstream calls. Lock acquisition failure is non-fatal: the
// caller skips the pending check for that turn and routes normally.
type Coordinator interface {
	// AcquireLock attempts a set-if-absent lock for the user. Never blocks.
	// Returns false when another holder has it or the store is unavailable.
	AcquireLock(ctx context.Context, userID string) bool

	// ReleaseLock releases the user's lock. Safe to call when not held.
	ReleaseLock(ctx context.Context, userID string)

	// GetPending returns the user's live pending request, or nil. Records
	// past their nominal TTL are treated as absent and cleaned up. Storage
	// errors degrade to nil.
	GetPending(ctx context.Context, userID string) *model.PendingRequest

	// SetPending stores a pending request, superseding any previous one.
	SetPending(ctx context.Context, userID string, pr model.PendingRequest) error

	// ClearPending removes the user's pending request. Idempotent.
	ClearPending(ctx context.Context, userID string)
}
