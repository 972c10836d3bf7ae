package agents

import (
	"context"

	"content-assistant/internal/model"
)

// Request is the normalized context handed to an agent handler.
type Request struct {
	UserID      string
	Message     string
	Params      map[string]string
	History     []model.Message
	Provider    string
	PrivacyMode bool
}

// ImagePayload is the side-channel output of image-producing agents. It is
// returned in the HTTP response but never stored in text conversation memory.
type ImagePayload struct {
	URL      string `json:"url,omitempty"`
	AltText  string `json:"alt_text,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}

// Result is a single handler's output for one dispatch.
type Result struct {
	Content string
	Image   *ImagePayload

	// Clarification, when set, asks the user for more input before the
	// agent can run; the dispatcher stores it as the pending request and
	// returns Content (the clarifying question) as the turn's response.
	Clarification *model.PendingRequest
}

// Handler is a specialized content-generation agent identified by a string
// key. Handlers must be safe for concurrent use; multi-intent turns invoke
// several of them in parallel.
type Handler interface {
	Name() string
	Handle(ctx context.Context, req Request) (Result, error)
}
