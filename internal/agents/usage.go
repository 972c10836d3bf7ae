package agents

import "sync"

// UsageRecorder counts dispatches per agent. It replaces hidden module-level
// counters with an explicitly constructed component: injected at startup,
// snapshotted for the stats endpoint, resettable for tests and rollovers.
type UsageRecorder struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewUsageRecorder creates a recorder with zeroed counters.
func NewUsageRecorder() *UsageRecorder {
	return &UsageRecorder{counts: make(map[string]int64)}
}

// Record increments the counter for the agent.
func (u *UsageRecorder) Record(agent string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.counts[agent]++
}

// Snapshot returns a copy of the current counters.
func (u *UsageRecorder) Snapshot() map[string]int64 {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := make(map[string]int64, len(u.counts))
	for k, v := range u.counts {
		out[k] = v
	}
	return out
}

// Reset zeroes all counters.
func (u *UsageRecorder) Reset() {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.counts = make(map[string]int64)
}
