package agents

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"content-assistant/internal/model"
	"content-assistant/pkg/gemini"
	pkgLog "content-assistant/pkg/log"
)

// ImageAgent produces image side-channel output (sharepics, generated
// images). Its result carries an ImagePayload; the dispatcher keeps this
// category out of text conversation memory.
type ImageAgent struct {
	name      string
	headline  string
	mediaPath string
	llm       gemini.IGemini
	l         pkgLog.Logger
}

var _ Handler = (*ImageAgent)(nil)

// NewSharepicAgent composes social-media graphics with a generated headline.
func NewSharepicAgent(llm gemini.IGemini, l pkgLog.Logger) *ImageAgent {
	return &ImageAgent{
		name:      model.AgentSharepic,
		headline:  "Formuliere eine knappe Sharepic-Headline (max. 10 Wörter) zu: %s",
		mediaPath: "/media/sharepics/%s.png",
		llm:       llm,
		l:         l,
	}
}

// NewImagineAgent generates standalone images from a description.
func NewImagineAgent(llm gemini.IGemini, l pkgLog.Logger) *ImageAgent {
	return &ImageAgent{
		name:      model.AgentImagine,
		headline:  "Formuliere einen präzisen englischen Bildprompt zu: %s",
		mediaPath: "/media/images/%s.png",
		llm:       llm,
		l:         l,
	}
}

func (a *ImageAgent) Name() string { return a.name }

func (a *ImageAgent) Handle(ctx context.Context, req Request) (Result, error) {
	resp, err := a.llm.GenerateContent(ctx, gemini.GenerateRequest{
		Contents: []gemini.Content{
			{Role: "user", Parts: []gemini.Part{{Text: fmt.Sprintf(a.headline, req.Message)}}},
		},
	})
	if err != nil {
		return Result{}, fmt.Errorf("%s: headline generation failed: %w", a.name, err)
	}

	text := resp.Text()
	if text == "" {
		return Result{}, fmt.Errorf("%s: empty model response", a.name)
	}

	url := fmt.Sprintf(a.mediaPath, uuid.NewString())
	a.l.Infof(ctx, "%s: rendered %s", a.name, url)

	return Result{
		Content: text,
		Image: &ImagePayload{
			URL:      url,
			AltText:  text,
			MimeType: "image/png",
		},
	}, nil
}
