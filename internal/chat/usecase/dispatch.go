package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"content-assistant/internal/agents"
	"content-assistant/internal/chat"
	"content-assistant/internal/model"
)

// dispatchSingle routes one intent synchronously and aggregates its result.
func (uc *implUseCase) dispatchSingle(ctx context.Context, sc model.Scope, input chat.Input, message string, history []model.Message, agent string, params map[string]string) (chat.Result, error) {
	handler, ok := uc.registry.Get(agent)
	if !ok {
		return nil, fmt.Errorf("%w: %s", chat.ErrUnhandledAgent, agent)
	}

	uc.usage.Record(agent)
	res, err := handler.Handle(ctx, agents.Request{
		UserID:      sc.UserID,
		Message:     message,
		Params:      params,
		History:     history,
		Provider:    input.Provider,
		PrivacyMode: input.UsePrivacyMode,
	})
	if err != nil {
		return nil, fmt.Errorf("agent %s failed: %w", agent, err)
	}

	if res.Clarification != nil {
		// The handler needs more input; store the question as the new
		// pending request (superseding any previous one) and return it.
		if err := uc.pending.SetPending(ctx, sc.UserID, *res.Clarification); err != nil {
			uc.l.Warnf(ctx, "chat: failed to store pending request for user %s: %v", sc.UserID, err)
		}
	}

	uc.storeAssistantTurn(ctx, sc.UserID, agent, res.Content)

	return &chat.SingleResult{Agent: agent, Content: res.Content, Image: res.Image}, nil
}

// dispatchMulti fans out to all intents concurrently. Handler invocations
// are independent; one failure never aborts the others (partial results are
// aggregated in the original intent order).
func (uc *implUseCase) dispatchMulti(ctx context.Context, sc model.Scope, input chat.Input, message string, history []model.Message, intents []model.Intent) (chat.Result, error) {
	outcomes := make([]chat.AgentOutcome, len(intents))

	var wg sync.WaitGroup
	for i, intent := range intents {
		wg.Add(1)
		go func(i int, intent model.Intent) {
			defer wg.Done()

			handler, ok := uc.registry.Get(intent.Agent)
			if !ok {
				outcomes[i] = chat.AgentOutcome{Agent: intent.Agent, Error: "no handler registered"}
				return
			}

			uc.usage.Record(intent.Agent)
			res, err := handler.Handle(ctx, agents.Request{
				UserID:      sc.UserID,
				Message:     message,
				History:     history,
				Provider:    input.Provider,
				PrivacyMode: input.UsePrivacyMode,
			})
			if err != nil {
				uc.l.Warnf(ctx, "chat: agent %s failed in fan-out: %v", intent.Agent, err)
				outcomes[i] = chat.AgentOutcome{Agent: intent.Agent, Error: err.Error()}
				return
			}

			// Clarifications are not stored from fan-out: at most one
			// pending request may exist per user and concurrent handlers
			// would race for it. The question still reaches the client.
			outcomes[i] = chat.AgentOutcome{
				Agent:   intent.Agent,
				Content: res.Content,
				Image:   res.Image,
				Success: true,
			}
		}(i, intent)
	}
	wg.Wait()

	// Memory keeps only the set of agents that ran, not per-agent content,
	// to bound growth.
	uc.store.Append(ctx, sc.UserID, model.RoleAssistant, multiSummary(outcomes), "multi")

	return &chat.MultiResult{Results: outcomes}, nil
}

func (uc *implUseCase) storeAssistantTurn(ctx context.Context, userID, agent, content string) {
	if memoryExcludedAgents[agent] {
		return
	}
	if content == "" {
		return
	}
	uc.store.Append(ctx, userID, model.RoleAssistant, content, agent)
}

func multiSummary(outcomes []chat.AgentOutcome) string {
	seen := map[string]bool{}
	names := []string{}
	for _, o := range outcomes {
		if !seen[o.Agent] {
			seen[o.Agent] = true
			names = append(names, o.Agent)
		}
	}
	sort.Strings(names)
	return "Bearbeitet durch Agenten: " + strings.Join(names, ", ")
}
