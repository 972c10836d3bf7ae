package session

import "content-assistant/internal/model"

// tokensPerChar approximates 4 characters per token; the constant overhead
// accounts for role/framing tokens per message.
const (
	charsPerToken    = 4
	perMessageTokens = 4
)

// EstimateTokens returns a deterministic token estimate for a message
// sequence. Monotonic: removing a message never increases the estimate.
func EstimateTokens(messages []model.Message) int {
	total := 0
	for _, m := range messages {
		total += len(m.Content)/charsPerToken + perMessageTokens
	}
	return total
}

// TrimToTokenLimit drops the oldest messages first until the estimated token
// count of the remaining suffix is <= limit. Chronological order of the
// retained suffix is preserved. Pure: the input slice is never mutated.
func TrimToTokenLimit(messages []model.Message, limit int) []model.Message {
	if limit < 0 {
		limit = 0
	}

	start := 0
	for start < len(messages) && EstimateTokens(messages[start:]) > limit {
		start++
	}

	out := make([]model.Message, len(messages)-start)
	copy(out, messages[start:])
	return out
}
