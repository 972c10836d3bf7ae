package chat

import "content-assistant/internal/agents"

// Attachment is an opaque upload reference produced by the attachment
// pre-processor. The router only derives context flags from it.
type Attachment struct {
	Type string `json:"type"` // document | image
	Name string `json:"name"`
	ID   string `json:"id,omitempty"`
}

// Input is one inbound chat turn.
type Input struct {
	Message        string         `json:"message"`
	Context        map[string]any `json:"context,omitempty"`
	Attachments    []Attachment   `json:"attachments,omitempty"`
	UsePrivacyMode bool           `json:"use_privacy_mode,omitempty"`
	Provider       string         `json:"provider,omitempty"`
}

// Result is the tagged union of turn outcomes. The delivery layer switches
// exhaustively over SingleResult and MultiResult.
type Result interface {
	isResult()
}

// SingleResult is the outcome of a single-intent turn.
type SingleResult struct {
	Agent   string
	Content string
	Image   *agents.ImagePayload
}

func (SingleResult) isResult() {}

// AgentOutcome is one entry of a fanned-out multi-intent turn. Entries keep
// the original intent order; failed handlers carry their own error marker
// instead of failing the turn.
type AgentOutcome struct {
	Agent   string               `json:"agent"`
	Content string               `json:"content,omitempty"`
	Image   *agents.ImagePayload `json:"image,omitempty"`
	Success bool                 `json:"success"`
	Error   string               `json:"error,omitempty"`
}

// MultiResult is the aggregated outcome of a multi-intent turn.
type MultiResult struct {
	Results []AgentOutcome
}

func (MultiResult) isResult() {}
