package agents

import (
	"context"
	"fmt"
	"strings"

	"content-assistant/internal/extractor"
	"content-assistant/internal/model"
	"content-assistant/pkg/gemini"
	pkgLog "content-assistant/pkg/log"
)

const textTemperature = 0.4

// TextAgent is a Gemini-backed content generator. Agents that need specific
// parameters (the person a quote is attributed to, the topic of a motion)
// declare them as required fields; a dispatch with a field still missing
// returns a clarifying question instead of generated text.
type TextAgent struct {
	name           string
	systemPrompt   string
	requiredFields []string
	questions      map[string]string
	llm            gemini.IGemini
	l              pkgLog.Logger
}

var _ Handler = (*TextAgent)(nil)

// NewZitatAgent generates quotes attributed to a named person.
func NewZitatAgent(llm gemini.IGemini, l pkgLog.Logger) *TextAgent {
	return &TextAgent{
		name: model.AgentZitat,
		systemPrompt: "Du formulierst prägnante, authentische Zitate für Pressemitteilungen. " +
			"Schreibe ein Zitat von {name} zum Thema {thema}. Nur das Zitat, keine Einleitung.",
		requiredFields: []string{"name", "thema"},
		questions: map[string]string{
			"name":  "Von wem soll das Zitat stammen?",
			"thema": "Zu welchem Thema soll das Zitat sein?",
		},
		llm: llm,
		l:   l,
	}
}

// NewAntragAgent drafts motions for municipal councils.
func NewAntragAgent(llm gemini.IGemini, l pkgLog.Logger) *TextAgent {
	return &TextAgent{
		name: model.AgentAntrag,
		systemPrompt: "Du schreibst formale Anträge für kommunale Gremien mit Beschlusstext und Begründung. " +
			"Thema: {thema}.",
		requiredFields: []string{"thema"},
		questions: map[string]string{
			"thema": "Zu welchem Thema soll der Antrag sein?",
		},
		llm: llm,
		l:   l,
	}
}

// NewUniversalAgent handles everything no specialized agent claims.
func NewUniversalAgent(llm gemini.IGemini, l pkgLog.Logger) *TextAgent {
	return &TextAgent{
		name:         model.AgentUniversal,
		systemPrompt: "Du bist ein hilfreicher Assistent für politische Kommunikation. Antworte knapp und konkret.",
		llm:          llm,
		l:            l,
	}
}

func (a *TextAgent) Name() string { return a.name }

func (a *TextAgent) Handle(ctx context.Context, req Request) (Result, error) {
	params := map[string]string{}
	for k, v := range req.Params {
		params[k] = v
	}
	// Supplement missing params from the message itself before asking.
	for k, v := range extractor.ExtractParams(req.Message, a.name) {
		if params[k] == "" {
			params[k] = v
		}
	}

	for _, field := range a.requiredFields {
		if params[field] == "" {
			question := a.questions[field]
			if question == "" {
				question = fmt.Sprintf("Mir fehlt noch eine Angabe: %s?", field)
			}
			return Result{
				Content: question,
				Clarification: &model.PendingRequest{
					Type:          model.PendingMissingInformation,
					Agent:         a.name,
					RequiredField: field,
					PartialParams: params,
				},
			}, nil
		}
	}

	prompt := a.systemPrompt
	for k, v := range params {
		prompt = strings.ReplaceAll(prompt, "{"+k+"}", v)
	}

	contents := make([]gemini.Content, 0, len(req.History)+1)
	for _, msg := range req.History {
		role := "user"
		if msg.Role == model.RoleAssistant {
			role = "model"
		}
		contents = append(contents, gemini.Content{Role: role, Parts: []gemini.Part{{Text: msg.Content}}})
	}
	contents = append(contents, gemini.Content{Role: "user", Parts: []gemini.Part{{Text: req.Message}}})

	resp, err := a.llm.GenerateContent(ctx, gemini.GenerateRequest{
		SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: prompt}}},
		Contents:          contents,
		GenerationConfig:  &gemini.GenerationConfig{Temperature: textTemperature},
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: generation failed: %w", a.name, err)
	}

	text := resp.Text()
	if text == "" {
		return Result{}, fmt.Errorf("%s: empty model response", a.name)
	}

	a.l.Debugf(ctx, "%s: generated %d chars", a.name, len(text))
	return Result{Content: text}, nil
}
