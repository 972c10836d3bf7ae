package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier prompts
const (
	PromptClassifySystem = `Du bist ein Intent-Router für einen Content-Assistenten. Analysiere die Nachricht und bestimme, welche Agenten sie bearbeiten sollen.

Nachricht: "%s"

Verfügbare Agenten:
1. zitat: Zitate und Statements zu einem Thema für eine Person
2. antrag: Anträge und Beschlussvorlagen für kommunale Gremien
3. websearch: Recherche nach aktuellen Informationen im Web
4. sharepic: Social-Media-Grafiken mit Text
5. imagine: Bildgenerierung
6. universal: Allgemeine Texte und alles Übrige

Antworte als JSON:
{
  "intents": [{"agent": "...", "request_type": "...", "sub_intent": "", "confidence": 0-100}],
  "is_multi_intent": false,
  "request_type": "...",
  "sub_intent": ""
}

Mehrere Agenten nur, wenn die Nachricht erkennbar mehrere eigenständige Aufgaben enthält.`

	PromptHistoryPrefix   = "Bisheriger Gesprächsverlauf:\n"
	PromptLastAgentPrefix = "Zuletzt genutzter Agent: "
)

// Classifier configuration
const (
	ClassifyTemperature      = 0.1
	FallbackAgent            = "universal"
	FallbackConfidence       = 50
)

// Error messages
const (
	ErrMsgLLMCallFailed   = "LLM call failed"
	ErrMsgJSONParseFailed = "failed to parse JSON, falling back to universal"
	ErrMsgEmptyResponse   = "empty LLM response, falling back to universal"
)
