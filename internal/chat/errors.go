package chat

import "errors"

// Domain-specific errors for the chat package.
var (
	ErrEmptyMessage   = errors.New("message is empty")
	ErrNoIntents      = errors.New("classification returned no intents")
	ErrUnhandledAgent = errors.New("no handler registered for agent")
)
