package model

import "time"

// Role identifies the author of a conversation message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single conversation turn.
type Message struct {
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Agent     string    `json:"agent,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Conversation is the per-user message history plus routing metadata.
// Messages are in insertion order; trimming drops the oldest first.
type Conversation struct {
	UserID    string
	Messages  []Message
	LastAgent string
}
