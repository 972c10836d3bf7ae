package http

import (
	"strings"

	"content-assistant/internal/chat"
)

// chatReq is the inbound chat turn payload.
type chatReq struct {
	Message        string            `json:"message"`
	Context        map[string]any    `json:"context,omitempty"`
	Attachments    []chat.Attachment `json:"attachments,omitempty"`
	UsePrivacyMode bool              `json:"use_privacy_mode,omitempty"`
	Provider       string            `json:"provider,omitempty"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return chat.ErrEmptyMessage
	}
	return nil
}

func (r chatReq) toInput() chat.Input {
	return chat.Input{
		Message:        r.Message,
		Context:        r.Context,
		Attachments:    r.Attachments,
		UsePrivacyMode: r.UsePrivacyMode,
		Provider:       r.Provider,
	}
}

type clearResp struct {
	Removed bool `json:"removed"`
}

type statsResp struct {
	Agents []string         `json:"agents"`
	Usage  map[string]int64 `json:"usage"`
}
