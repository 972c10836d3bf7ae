package model

import "time"

// PendingType discriminates the two clarification flows.
type PendingType string

const (
	PendingWebsearchConfirmation PendingType = "websearch_confirmation"
	PendingMissingInformation    PendingType = "missing_information"
)

// PendingRequest is the short-lived clarification state for one user.
// At most one live instance exists per user; storing a new one supersedes
// the old one.
type PendingRequest struct {
	Type PendingType `json:"type"`

	// websearch_confirmation
	OriginalQuery string `json:"original_query,omitempty"`

	// missing_information
	Agent         string            `json:"agent,omitempty"`
	RequiredField string            `json:"required_field,omitempty"`
	PartialParams map[string]string `json:"partial_params,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the record is past its nominal TTL. A record
// observed past ExpiresAt must be treated as absent even if the cache has
// not evicted it yet.
func (p *PendingRequest) Expired(now time.Time) bool {
	return !p.ExpiresAt.IsZero() && now.After(p.ExpiresAt)
}
