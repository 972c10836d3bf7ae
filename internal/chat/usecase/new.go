package usecase

import (
	"content-assistant/internal/agents"
	"content-assistant/internal/chat"
	"content-assistant/internal/classifier"
	"content-assistant/internal/pending"
	"content-assistant/internal/session"
	pkgLog "content-assistant/pkg/log"
)

// Agents whose output is an image side channel; their results are returned
// over HTTP but never captured into text conversation memory.
var memoryExcludedAgents = map[string]bool{
	"sharepic": true,
	"imagine":  true,
}

type implUseCase struct {
	l                 pkgLog.Logger
	store             session.Store
	pending           pending.Coordinator
	classifier        classifier.Classifier
	registry          *agents.Registry
	usage             *agents.UsageRecorder
	historyTokenLimit int
}

var _ chat.UseCase = (*implUseCase)(nil)

// New creates the chat UseCase.
func New(
	l pkgLog.Logger,
	store session.Store,
	coordinator pending.Coordinator,
	cls classifier.Classifier,
	registry *agents.Registry,
	usage *agents.UsageRecorder,
	historyTokenLimit int,
) *implUseCase {
	return &implUseCase{
		l:                 l,
		store:             store,
		pending:           coordinator,
		classifier:        cls,
		registry:          registry,
		usage:             usage,
		historyTokenLimit: historyTokenLimit,
	}
}

// Usage returns a snapshot of per-agent dispatch counters.
func (uc *implUseCase) Usage() map[string]int64 {
	return uc.usage.Snapshot()
}
