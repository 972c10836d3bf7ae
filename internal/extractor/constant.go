package extractor

// newCommandVerbs is the fixed imperative vocabulary that marks a message as
// a fresh command rather than a clarification answer. Explicit new intent
// always wins over stale pending state.
var newCommandVerbs = []string{
	"erstelle", "erstell",
	"generiere", "generier",
	"schreibe", "schreib",
	"suche", "such",
	"mache", "mach",
	"entwirf", "entwerfe",
	"formuliere",
	"zeige", "zeig",
	"create",
	"generate",
	"write",
	"search",
	"make",
	"draft",
}

// Confirmation vocabulary for websearch_confirmation answers.
var (
	affirmativeWords = []string{"ja", "jep", "jo", "klar", "gerne", "bitte", "ok", "okay", "yes", "yep", "sure"}
	negativeWords    = []string{"nein", "ne", "nee", "nicht", "no", "nope", "stop", "abbrechen"}
)
