package agents

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/customsearch/v1"

	"content-assistant/internal/model"
	pkgLog "content-assistant/pkg/log"
)

const websearchResultLimit = 5

// WebsearchAgent answers research questions with Google Custom Search.
//
// A fresh dispatch first asks the user to confirm the search (stored as a
// websearch_confirmation pending request); the confirmed re-dispatch carries
// params["confirmed"]="true" and runs the query.
type WebsearchAgent struct {
	svc      *customsearch.Service
	engineID string
	l        pkgLog.Logger
}

var _ Handler = (*WebsearchAgent)(nil)

// NewWebsearchAgent creates the websearch handler.
func NewWebsearchAgent(svc *customsearch.Service, engineID string, l pkgLog.Logger) *WebsearchAgent {
	return &WebsearchAgent{svc: svc, engineID: engineID, l: l}
}

func (a *WebsearchAgent) Name() string { return model.AgentWebsearch }

func (a *WebsearchAgent) Handle(ctx context.Context, req Request) (Result, error) {
	query := req.Params["query"]
	if query == "" {
		query = strings.TrimSpace(req.Message)
	}
	if query == "" {
		return Result{}, fmt.Errorf("websearch: empty query")
	}

	if req.Params["confirmed"] != "true" {
		return Result{
			Content: fmt.Sprintf("Soll ich im Web nach „%s“ suchen?", query),
			Clarification: &model.PendingRequest{
				Type:          model.PendingWebsearchConfirmation,
				OriginalQuery: query,
			},
		}, nil
	}

	resp, err := a.svc.Cse.List().Q(query).Cx(a.engineID).Num(websearchResultLimit).Context(ctx).Do()
	if err != nil {
		return Result{}, fmt.Errorf("websearch: search failed: %w", err)
	}

	a.l.Infof(ctx, "websearch: %d results for %q", len(resp.Items), query)
	return Result{Content: FormatSearchResults(query, resp.Items)}, nil
}

// FormatSearchResults renders search hits as a readable text block.
func FormatSearchResults(query string, items []*customsearch.Result) string {
	if len(items) == 0 {
		return fmt.Sprintf("Zu „%s“ habe ich keine Ergebnisse gefunden.", query)
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Ergebnisse zu „%s“:\n\n", query))
	for i, item := range items {
		b.WriteString(fmt.Sprintf("%d. %s\n%s\n%s\n\n", i+1, item.Title, item.Snippet, item.Link))
	}
	return strings.TrimSpace(b.String())
}
