package session_test

import (
	"strings"
	"testing"

	"content-assistant/internal/model"
	"content-assistant/internal/session"
)

func msg(content string) model.Message {
	return model.Message{Role: model.RoleUser, Content: content}
}

func TestTrimToTokenLimit(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		out := session.TrimToTokenLimit(nil, 100)
		if len(out) != 0 {
			t.Errorf("expected empty output, got %d messages", len(out))
		}
	})

	t.Run("Under Limit Unchanged", func(t *testing.T) {
		in := []model.Message{msg("hallo"), msg("welt")}
		out := session.TrimToTokenLimit(in, 1000)
		if len(out) != 2 {
			t.Fatalf("expected 2 messages, got %d", len(out))
		}
		if out[0].Content != "hallo" || out[1].Content != "welt" {
			t.Errorf("order not preserved: %v", out)
		}
	})

	t.Run("Drops Oldest First", func(t *testing.T) {
		in := []model.Message{
			msg(strings.Repeat("a", 400)),
			msg(strings.Repeat("b", 400)),
			msg("neueste"),
		}
		limit := session.EstimateTokens(in[1:])
		out := session.TrimToTokenLimit(in, limit)
		if len(out) != 2 {
			t.Fatalf("expected 2 retained messages, got %d", len(out))
		}
		if out[0].Content[0] != 'b' || out[1].Content != "neueste" {
			t.Errorf("expected oldest message dropped, got %v", out)
		}
	})

	t.Run("Zero Limit Drops Everything", func(t *testing.T) {
		in := []model.Message{msg("a"), msg("b")}
		out := session.TrimToTokenLimit(in, 0)
		if len(out) != 0 {
			t.Errorf("expected everything dropped, got %d", len(out))
		}
	})

	t.Run("Idempotent", func(t *testing.T) {
		in := []model.Message{
			msg(strings.Repeat("x", 300)),
			msg(strings.Repeat("y", 300)),
			msg(strings.Repeat("z", 300)),
		}
		for _, limit := range []int{0, 50, 100, 200, 10000} {
			once := session.TrimToTokenLimit(in, limit)
			twice := session.TrimToTokenLimit(once, limit)
			if len(once) != len(twice) {
				t.Errorf("limit %d: second trim changed length %d -> %d", limit, len(once), len(twice))
			}
			for i := range once {
				if once[i].Content != twice[i].Content {
					t.Errorf("limit %d: second trim changed message %d", limit, i)
				}
			}
		}
	})

	t.Run("Output Estimate Never Exceeds Input", func(t *testing.T) {
		in := []model.Message{
			msg(strings.Repeat("a", 123)),
			msg(strings.Repeat("b", 456)),
			msg(strings.Repeat("c", 789)),
			msg("d"),
		}
		before := session.EstimateTokens(in)
		for _, limit := range []int{0, 1, 10, 100, before, before * 2} {
			out := session.TrimToTokenLimit(in, limit)
			after := session.EstimateTokens(out)
			if after > before {
				t.Errorf("limit %d: estimate grew %d -> %d", limit, before, after)
			}
			if limit >= before && len(out) != len(in) {
				t.Errorf("limit %d: nothing should have been dropped", limit)
			}
		}
	})

	t.Run("Input Not Mutated", func(t *testing.T) {
		in := []model.Message{msg("erste"), msg("zweite")}
		_ = session.TrimToTokenLimit(in, 0)
		if in[0].Content != "erste" || in[1].Content != "zweite" {
			t.Errorf("input slice was mutated: %v", in)
		}
	})
}
