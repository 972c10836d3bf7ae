package classifier

import (
	"context"

	"content-assistant/internal/model"
	"content-assistant/pkg/gemini"
	pkgLog "content-assistant/pkg/log"
)

// Classifier maps a message plus conversation context onto one or more
// intents. The scoring internals are a collaborator concern; the router only
// depends on this boundary.
type Classifier interface {
	Classify(ctx context.Context, message string, rctx Context) (Classification, error)
}

// Context is the enriched input handed to the classifier alongside the
// message.
type Context struct {
	History      []model.Message
	LastAgent    string
	HasDocuments bool
	HasImages    bool
}

// Classification is the classifier's verdict for one turn.
type Classification struct {
	Intents       []model.Intent `json:"intents"`
	IsMultiIntent bool           `json:"is_multi_intent"`
	RequestType   string         `json:"request_type"`
	SubIntent     string         `json:"sub_intent,omitempty"`
}

// LLMClassifier classifies intent with a Gemini call.
type LLMClassifier struct {
	llm gemini.IGemini
	l   pkgLog.Logger
}

var _ Classifier = (*LLMClassifier)(nil)

// New creates a new LLMClassifier.
func New(llm gemini.IGemini, l pkgLog.Logger) *LLMClassifier {
	return &LLMClassifier{llm: llm, l: l}
}
