package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"content-assistant/internal/model"
	"content-assistant/pkg/gemini"
)

// Classify determines which agents should handle the message.
func (c *LLMClassifier) Classify(ctx context.Context, message string, rctx Context) (Classification, error) {
	prompt := c.buildPrompt(message, rctx)

	resp, err := c.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: prompt}}},
		},
		GenerationConfig: &gemini.GenerationConfig{
			Temperature: ClassifyTemperature,
		},
	})
	if err != nil {
		return Classification{}, fmt.Errorf("%s: %s: %w", LogPrefixClassify, ErrMsgLLMCallFailed, err)
	}

	text := resp.Text()
	if text == "" {
		c.l.Warnf(ctx, "%s: %s", LogPrefixClassify, ErrMsgEmptyResponse)
		return fallbackClassification(), nil
	}

	var out Classification
	if err := json.Unmarshal([]byte(stripCodeFences(text)), &out); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, ErrMsgJSONParseFailed, err)
		return fallbackClassification(), nil
	}

	// Keep the multi-intent flag consistent with the intent list.
	out.IsMultiIntent = len(out.Intents) > 1

	c.l.Infof(ctx, "%s: %d intent(s), multi=%v, request_type=%s",
		LogPrefixClassify, len(out.Intents), out.IsMultiIntent, out.RequestType)
	return out, nil
}

func (c *LLMClassifier) buildPrompt(message string, rctx Context) string {
	var b strings.Builder

	if len(rctx.History) > 0 {
		b.WriteString(PromptHistoryPrefix)
		for i, msg := range rctx.History {
			b.WriteString(fmt.Sprintf("%d. [%s] %s\n", i+1, msg.Role, msg.Content))
		}
		b.WriteString("\n")
	}
	if rctx.LastAgent != "" {
		b.WriteString(PromptLastAgentPrefix + rctx.LastAgent + "\n\n")
	}
	if rctx.HasDocuments {
		b.WriteString("Der Nutzer hat Dokumente angehängt.\n")
	}
	if rctx.HasImages {
		b.WriteString("Der Nutzer hat Bilder angehängt.\n")
	}

	b.WriteString(fmt.Sprintf(PromptClassifySystem, message))
	return b.String()
}

// stripCodeFences removes markdown code blocks around JSON output
// (```json ... ``` or ``` ... ```).
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSuffix(s, "```")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(s, "```")
	}
	return strings.TrimSpace(s)
}

func fallbackClassification() Classification {
	return Classification{
		Intents: []model.Intent{{
			Agent:      FallbackAgent,
			Confidence: FallbackConfidence,
		}},
		RequestType: "text",
	}
}
