// Package extractor pulls clarification answers out of free-text messages.
// All functions are pure: text plus a pending-request descriptor in, a
// structured result or nil out.
package extractor

import (
	"regexp"
	"strings"

	"content-assistant/internal/model"
)

// ExtractedInfo is the structured result of a successful extraction.
type ExtractedInfo struct {
	// Confirmed is set for websearch_confirmation answers.
	Confirmed bool

	// Field and Value are set for missing_information answers.
	Field string
	Value string
}

// maxInlineValueLen bounds how long a bare message may be to still count as
// a field value (anything longer is almost certainly a new request).
const maxInlineValueLen = 120

var (
	fieldColonRe = regexp.MustCompile(`(?i)^\s*([\p{L}_]+)\s*[:=]\s*(.+)$`)
	quotedRe     = regexp.MustCompile(`"([^"]+)"|„([^“]+)“`)

	zitatNameRe  = regexp.MustCompile(`\b[Vv]on\s+((?:\p{Lu}[\p{L}\-.]*\s*)+)`)
	zitatThemaRe = regexp.MustCompile(`(?i)\b(?:zum thema|zu|über)\s+(.+?)\s*$`)
)

// ContainsNewCommand reports whether the message starts a fresh command.
// Matches on word boundaries against the fixed imperative vocabulary.
func ContainsNewCommand(message string) bool {
	for _, word := range splitWords(message) {
		for _, verb := range newCommandVerbs {
			if word == verb {
				return true
			}
		}
	}
	return false
}

// Extract attempts to interpret the message as an answer to the pending
// request. Returns nil when the message contains new-command vocabulary or
// when nothing recognizable could be pulled out; in both cases the caller
// must clear the pending request and fall through to fresh classification.
func Extract(message string, pr model.PendingRequest) *ExtractedInfo {
	if ContainsNewCommand(message) {
		return nil
	}

	switch pr.Type {
	case model.PendingWebsearchConfirmation:
		return extractConfirmation(message)
	case model.PendingMissingInformation:
		return extractField(message, pr.RequiredField)
	default:
		return nil
	}
}

func extractConfirmation(message string) *ExtractedInfo {
	words := splitWords(message)
	for _, w := range words {
		for _, neg := range negativeWords {
			if w == neg {
				return &ExtractedInfo{Confirmed: false}
			}
		}
	}
	for _, w := range words {
		for _, aff := range affirmativeWords {
			if w == aff {
				return &ExtractedInfo{Confirmed: true}
			}
		}
	}
	return nil
}

func extractField(message, field string) *ExtractedInfo {
	trimmed := strings.TrimSpace(message)
	if trimmed == "" {
		return nil
	}

	// "feld: wert" style answers.
	if m := fieldColonRe.FindStringSubmatch(trimmed); m != nil {
		if field == "" || strings.EqualFold(m[1], field) {
			return &ExtractedInfo{Field: field, Value: strings.TrimSpace(m[2])}
		}
	}

	// Quoted values.
	if m := quotedRe.FindStringSubmatch(trimmed); m != nil {
		value := m[1]
		if value == "" {
			value = m[2]
		}
		return &ExtractedInfo{Field: field, Value: value}
	}

	// Short bare answers count as the value itself.
	if len(trimmed) <= maxInlineValueLen && !strings.ContainsAny(trimmed, "?") {
		return &ExtractedInfo{Field: field, Value: trimmed}
	}

	return nil
}

// ExtractParams pulls agent-specific parameters out of a fresh message.
// Heuristic only; the classifier remains authoritative for intent.
func ExtractParams(message, agent string) map[string]string {
	params := map[string]string{}

	switch agent {
	case model.AgentZitat:
		if m := zitatNameRe.FindStringSubmatch(message); m != nil {
			params["name"] = strings.TrimSpace(m[1])
		}
		if m := zitatThemaRe.FindStringSubmatch(message); m != nil {
			params["thema"] = strings.TrimSpace(m[1])
		}
	case model.AgentAntrag:
		if m := zitatThemaRe.FindStringSubmatch(message); m != nil {
			params["thema"] = strings.TrimSpace(m[1])
		}
	}

	return params
}

func splitWords(s string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case '.', ',', '!', '?', ';':
			return ' '
		}
		return r
	}, strings.ToLower(s))
	return strings.Fields(cleaned)
}
