package usecase

import (
	"context"
	"fmt"
	"strings"

	"content-assistant/internal/chat"
	"content-assistant/internal/classifier"
	"content-assistant/internal/model"
	"content-assistant/internal/session"
)

// HandleMessage routes one inbound turn.
//
// State machine: PendingCheck -> {PendingCompletion | FreshClassification}
// -> Dispatch -> Done. The pending lock covers only the read-then-decide
// step; it is never held across classifier or agent calls.
func (uc *implUseCase) HandleMessage(ctx context.Context, sc model.Scope, input chat.Input) (chat.Result, error) {
	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, chat.ErrEmptyMessage
	}

	uc.store.Append(ctx, sc.UserID, model.RoleUser, message, "")

	if res, handled, err := uc.completePending(ctx, sc, input, message); handled {
		return res, err
	}

	return uc.classifyAndDispatch(ctx, sc, input, message)
}

func (uc *implUseCase) classifyAndDispatch(ctx context.Context, sc model.Scope, input chat.Input, message string) (chat.Result, error) {
	conv := uc.store.GetConversation(ctx, sc.UserID)
	history := session.TrimToTokenLimit(conv.Messages, uc.historyTokenLimit)

	hasDocs, hasImages := attachmentFlags(input.Attachments)
	cls, err := uc.classifier.Classify(ctx, message, classifier.Context{
		History:      history,
		LastAgent:    conv.LastAgent,
		HasDocuments: hasDocs,
		HasImages:    hasImages,
	})
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}
	if len(cls.Intents) == 0 {
		return nil, chat.ErrNoIntents
	}

	if cls.IsMultiIntent {
		return uc.dispatchMulti(ctx, sc, input, message, history, cls.Intents)
	}
	return uc.dispatchSingle(ctx, sc, input, message, history, cls.Intents[0].Agent, nil)
}

// Clear removes conversation memory, pending state and document state for
// the user. Safe to call repeatedly.
func (uc *implUseCase) Clear(ctx context.Context, sc model.Scope) (bool, error) {
	uc.pending.ClearPending(ctx, sc.UserID)

	removed, err := uc.store.Clear(ctx, sc.UserID)
	if err != nil {
		uc.l.Warnf(ctx, "chat: clear degraded for user %s: %v", sc.UserID, err)
		return false, err
	}
	return removed, nil
}

func attachmentFlags(attachments []chat.Attachment) (hasDocs, hasImages bool) {
	for _, a := range attachments {
		switch a.Type {
		case "document":
			hasDocs = true
		case "image":
			hasImages = true
		}
	}
	return hasDocs, hasImages
}
