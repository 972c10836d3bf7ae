package classifier_test

import (
	"context"
	"errors"
	"testing"

	"content-assistant/internal/classifier"
	"content-assistant/internal/model"
	"content-assistant/pkg/gemini"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockGemini struct {
	text string
	err  error
}

func (m *mockGemini) GenerateContent(ctx context.Context, req gemini.GenerateRequest) (*gemini.GenerateResponse, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &gemini.GenerateResponse{
		Candidates: []gemini.Candidate{
			{Content: gemini.Content{Parts: []gemini.Part{{Text: m.text}}}},
		},
	}, nil
}

func (m *mockGemini) Model() string { return "gemini-test" }

func TestClassify(t *testing.T) {
	ctx := context.Background()

	t.Run("Single Intent", func(t *testing.T) {
		llm := &mockGemini{text: `{"intents":[{"agent":"zitat","request_type":"text","confidence":95}],"is_multi_intent":false,"request_type":"text"}`}
		c := classifier.New(llm, &mockLogger{})

		out, err := c.Classify(ctx, "Zitat von Moritz Wächter zu Klimaschutz", classifier.Context{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Intents) != 1 || out.Intents[0].Agent != model.AgentZitat {
			t.Errorf("unexpected classification: %+v", out)
		}
		if out.IsMultiIntent {
			t.Error("single intent flagged as multi")
		}
	})

	t.Run("Multi Intent With Code Fences", func(t *testing.T) {
		llm := &mockGemini{text: "```json\n" +
			`{"intents":[{"agent":"zitat"},{"agent":"sharepic"}],"is_multi_intent":true,"request_type":"mixed"}` +
			"\n```"}
		c := classifier.New(llm, &mockLogger{})

		out, err := c.Classify(ctx, "Zitat und Sharepic zu Radwegen", classifier.Context{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Intents) != 2 || !out.IsMultiIntent {
			t.Errorf("unexpected classification: %+v", out)
		}
	})

	t.Run("Parse Failure Falls Back", func(t *testing.T) {
		llm := &mockGemini{text: "das ist kein JSON"}
		c := classifier.New(llm, &mockLogger{})

		out, err := c.Classify(ctx, "irgendwas", classifier.Context{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Intents) != 1 || out.Intents[0].Agent != classifier.FallbackAgent {
			t.Errorf("expected fallback intent, got %+v", out)
		}
	})

	t.Run("LLM Error Propagates", func(t *testing.T) {
		llm := &mockGemini{err: errors.New("boom")}
		c := classifier.New(llm, &mockLogger{})

		if _, err := c.Classify(ctx, "irgendwas", classifier.Context{}); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("Multi Flag Follows Intent Count", func(t *testing.T) {
		// A model claiming multi with a single intent is corrected.
		llm := &mockGemini{text: `{"intents":[{"agent":"antrag"}],"is_multi_intent":true}`}
		c := classifier.New(llm, &mockLogger{})

		out, err := c.Classify(ctx, "Antrag zu Radwegen", classifier.Context{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.IsMultiIntent {
			t.Error("multi flag should track the intent list")
		}
	})
}
