package usecase

import (
	"context"

	"content-assistant/internal/chat"
	"content-assistant/internal/extractor"
	"content-assistant/internal/model"
	"content-assistant/internal/session"
)

// declineText is the canned response for a denied websearch confirmation.
const declineText = "Alles klar, ich suche nicht im Web. Womit kann ich sonst helfen?"

// completePending implements the PendingCheck and PendingCompletion states.
//
// Returns handled=false when the turn must fall through to fresh
// classification: no lock, no pending record, expired record, or an answer
// the extractor could not interpret (the pending request is cleared in that
// case so the user is never stuck).
func (uc *implUseCase) completePending(ctx context.Context, sc model.Scope, input chat.Input, message string) (chat.Result, bool, error) {
	// Failed acquisition means another request for the same user is mid
	// decision; skip the pending check rather than block or error.
	if !uc.pending.AcquireLock(ctx, sc.UserID) {
		uc.l.Warnf(ctx, "chat: pending lock busy for user %s, skipping pending check", sc.UserID)
		return nil, false, nil
	}

	pr := func() *model.PendingRequest {
		defer uc.pending.ReleaseLock(ctx, sc.UserID)
		return uc.pending.GetPending(ctx, sc.UserID)
	}()
	if pr == nil {
		return nil, false, nil
	}

	info := extractor.Extract(message, *pr)

	switch pr.Type {
	case model.PendingWebsearchConfirmation:
		// Yes/no turns are terminal either way.
		uc.pending.ClearPending(ctx, sc.UserID)
		if info == nil {
			return nil, false, nil
		}
		if !info.Confirmed {
			uc.store.Append(ctx, sc.UserID, model.RoleAssistant, declineText, model.AgentWebsearch)
			return &chat.SingleResult{Agent: model.AgentWebsearch, Content: declineText}, true, nil
		}

		conv := uc.store.GetConversation(ctx, sc.UserID)
		history := session.TrimToTokenLimit(conv.Messages, uc.historyTokenLimit)
		res, err := uc.dispatchSingle(ctx, sc, input, pr.OriginalQuery, history, model.AgentWebsearch, map[string]string{
			"query":     pr.OriginalQuery,
			"confirmed": "true",
		})
		return res, true, err

	case model.PendingMissingInformation:
		if info == nil {
			// New command or nothing extractable: never leave the user
			// dangling on stale state.
			uc.pending.ClearPending(ctx, sc.UserID)
			return nil, false, nil
		}
		uc.pending.ClearPending(ctx, sc.UserID)

		// Merge the answer into the stored partial params; already-known
		// fields are preserved, never re-asked.
		params := map[string]string{}
		for k, v := range pr.PartialParams {
			params[k] = v
		}
		field := info.Field
		if field == "" {
			field = pr.RequiredField
		}
		params[field] = info.Value

		conv := uc.store.GetConversation(ctx, sc.UserID)
		history := session.TrimToTokenLimit(conv.Messages, uc.historyTokenLimit)
		res, err := uc.dispatchSingle(ctx, sc, input, message, history, pr.Agent, params)
		return res, true, err

	default:
		uc.l.Warnf(ctx, "chat: unknown pending type %q for user %s, clearing", pr.Type, sc.UserID)
		uc.pending.ClearPending(ctx, sc.UserID)
		return nil, false, nil
	}
}
