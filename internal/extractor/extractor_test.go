package extractor_test

import (
	"testing"

	"content-assistant/internal/extractor"
	"content-assistant/internal/model"
)

func TestContainsNewCommand(t *testing.T) {
	cases := []struct {
		message string
		want    bool
	}{
		{"erstelle einen Antrag zu Radwegen", true},
		{"Schreibe mir bitte etwas", true},
		{"suche nach aktuellen Zahlen", true},
		{"generiere ein Sharepic", true},
		{"Moritz Wächter", false},
		{"ja bitte", false},
		{"Klimaschutz", false},
		{"", false},
	}
	for _, c := range cases {
		if got := extractor.ContainsNewCommand(c.message); got != c.want {
			t.Errorf("ContainsNewCommand(%q) = %v, want %v", c.message, got, c.want)
		}
	}
}

func TestExtractWebsearchConfirmation(t *testing.T) {
	pr := model.PendingRequest{
		Type:          model.PendingWebsearchConfirmation,
		OriginalQuery: "Grüne Klimapolitik 2024",
	}

	t.Run("Affirmative", func(t *testing.T) {
		for _, msg := range []string{"ja", "ja bitte", "ok", "Ja, gerne!"} {
			info := extractor.Extract(msg, pr)
			if info == nil || !info.Confirmed {
				t.Errorf("expected confirmation for %q, got %+v", msg, info)
			}
		}
	})

	t.Run("Negative", func(t *testing.T) {
		for _, msg := range []string{"nein", "nein danke", "nope", "lieber nicht"} {
			info := extractor.Extract(msg, pr)
			if info == nil || info.Confirmed {
				t.Errorf("expected decline for %q, got %+v", msg, info)
			}
		}
	})

	t.Run("Ambiguous Yields Nil", func(t *testing.T) {
		if info := extractor.Extract("vielleicht morgen", pr); info != nil {
			t.Errorf("expected nil for ambiguous answer, got %+v", info)
		}
	})

	t.Run("New Command Wins", func(t *testing.T) {
		if info := extractor.Extract("erstelle lieber einen Antrag", pr); info != nil {
			t.Errorf("expected nil when new command present, got %+v", info)
		}
	})
}

func TestExtractMissingInformation(t *testing.T) {
	pr := model.PendingRequest{
		Type:          model.PendingMissingInformation,
		Agent:         model.AgentZitat,
		RequiredField: "name",
		PartialParams: map[string]string{"thema": "Klimaschutz"},
	}

	t.Run("Bare Answer Is The Value", func(t *testing.T) {
		info := extractor.Extract("Moritz Wächter", pr)
		if info == nil || info.Value != "Moritz Wächter" || info.Field != "name" {
			t.Errorf("unexpected extraction: %+v", info)
		}
	})

	t.Run("Field Colon Syntax", func(t *testing.T) {
		info := extractor.Extract("name: Moritz Wächter", pr)
		if info == nil || info.Value != "Moritz Wächter" {
			t.Errorf("unexpected extraction: %+v", info)
		}
	})

	t.Run("Quoted Value", func(t *testing.T) {
		info := extractor.Extract(`der Name ist "Moritz Wächter"`, pr)
		if info == nil || info.Value != "Moritz Wächter" {
			t.Errorf("unexpected extraction: %+v", info)
		}
	})

	// New-command precedence: even a message similar to the expected field
	// is abandoned when it carries command vocabulary.
	t.Run("New Command Precedence", func(t *testing.T) {
		if info := extractor.Extract("erstelle ein Zitat von Moritz Wächter", pr); info != nil {
			t.Errorf("expected nil, got %+v", info)
		}
	})

	t.Run("Question Yields Nil", func(t *testing.T) {
		if info := extractor.Extract("wieso brauchst du das?", pr); info != nil {
			t.Errorf("expected nil for question, got %+v", info)
		}
	})
}

func TestExtractParams(t *testing.T) {
	t.Run("Zitat Name And Thema", func(t *testing.T) {
		params := extractor.ExtractParams("Zitat von Moritz Wächter zu Klimaschutz", model.AgentZitat)
		if params["name"] != "Moritz Wächter" {
			t.Errorf("name = %q, want %q", params["name"], "Moritz Wächter")
		}
		if params["thema"] != "Klimaschutz" {
			t.Errorf("thema = %q, want %q", params["thema"], "Klimaschutz")
		}
	})

	t.Run("Antrag Thema", func(t *testing.T) {
		params := extractor.ExtractParams("Antrag zum Thema Radwege in der Innenstadt", model.AgentAntrag)
		if params["thema"] != "Radwege in der Innenstadt" {
			t.Errorf("thema = %q", params["thema"])
		}
	})

	t.Run("Unknown Agent Empty", func(t *testing.T) {
		params := extractor.ExtractParams("irgendwas", "unbekannt")
		if len(params) != 0 {
			t.Errorf("expected no params, got %v", params)
		}
	})
}
