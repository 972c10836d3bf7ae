package model

// Agent identifiers known to the router. The registry is the source of
// truth at runtime; these constants exist for branching and tests.
const (
	AgentZitat     = "zitat"
	AgentAntrag    = "antrag"
	AgentWebsearch = "websearch"
	AgentSharepic  = "sharepic"
	AgentImagine   = "imagine"
	AgentUniversal = "universal"
)

// Intent is the classifier's mapping of a message onto one agent.
// Ephemeral; never persisted.
type Intent struct {
	Agent       string `json:"agent"`
	RequestType string `json:"request_type"`
	SubIntent   string `json:"sub_intent,omitempty"`
	Confidence  int    `json:"confidence,omitempty"` // 0-100
}
