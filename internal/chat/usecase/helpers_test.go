package usecase_test

import (
	"context"
	"sync"
	"time"

	"content-assistant/internal/agents"
	"content-assistant/internal/classifier"
	"content-assistant/internal/model"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})   {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

// memStore is an in-memory session.Store.
type memStore struct {
	mu            sync.Mutex
	conversations map[string][]model.Message
	lastAgent     map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		conversations: map[string][]model.Message{},
		lastAgent:     map[string]string{},
	}
}

func (s *memStore) Append(ctx context.Context, userID string, role model.Role, content, agent string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[userID] = append(s.conversations[userID], model.Message{
		Role:      role,
		Content:   content,
		Agent:     agent,
		Timestamp: time.Now(),
	})
	if role == model.RoleAssistant && agent != "" {
		s.lastAgent[userID] = agent
	}
}

func (s *memStore) GetConversation(ctx context.Context, userID string) model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]model.Message, len(s.conversations[userID]))
	copy(msgs, s.conversations[userID])
	return model.Conversation{UserID: userID, Messages: msgs, LastAgent: s.lastAgent[userID]}
}

func (s *memStore) Clear(ctx context.Context, userID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, had := s.conversations[userID]
	delete(s.conversations, userID)
	delete(s.lastAgent, userID)
	return had, nil
}

func (s *memStore) messages(userID string) []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := make([]model.Message, len(s.conversations[userID]))
	copy(msgs, s.conversations[userID])
	return msgs
}

// memCoordinator is an in-memory pending.Coordinator with set-if-absent lock
// semantics matching the Redis implementation.
type memCoordinator struct {
	mu      sync.Mutex
	locks   map[string]bool
	pending map[string]model.PendingRequest
	ttl     time.Duration
}

func newMemCoordinator() *memCoordinator {
	return &memCoordinator{
		locks:   map[string]bool{},
		pending: map[string]model.PendingRequest{},
		ttl:     5 * time.Minute,
	}
}

func (c *memCoordinator) AcquireLock(ctx context.Context, userID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.locks[userID] {
		return false
	}
	c.locks[userID] = true
	return true
}

func (c *memCoordinator) ReleaseLock(ctx context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.locks, userID)
}

func (c *memCoordinator) GetPending(ctx context.Context, userID string) *model.PendingRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	pr, ok := c.pending[userID]
	if !ok {
		return nil
	}
	if pr.Expired(time.Now()) {
		delete(c.pending, userID)
		return nil
	}
	out := pr
	return &out
}

func (c *memCoordinator) SetPending(ctx context.Context, userID string, pr model.PendingRequest) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if pr.CreatedAt.IsZero() {
		pr.CreatedAt = time.Now()
	}
	if pr.ExpiresAt.IsZero() {
		pr.ExpiresAt = pr.CreatedAt.Add(c.ttl)
	}
	c.pending[userID] = pr
	return nil
}

func (c *memCoordinator) ClearPending(ctx context.Context, userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.pending, userID)
}

// stubClassifier returns a fixed classification and counts invocations.
type stubClassifier struct {
	mu     sync.Mutex
	calls  int
	result classifier.Classification
	err    error
}

func (s *stubClassifier) Classify(ctx context.Context, message string, rctx classifier.Context) (classifier.Classification, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.err != nil {
		return classifier.Classification{}, s.err
	}
	return s.result, nil
}

func (s *stubClassifier) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func singleIntent(agent string) classifier.Classification {
	return classifier.Classification{
		Intents: []model.Intent{{Agent: agent, Confidence: 90}},
	}
}

// stubHandler delegates to a func field.
type stubHandler struct {
	name     string
	handleFn func(ctx context.Context, req agents.Request) (agents.Result, error)
}

func (h *stubHandler) Name() string { return h.name }

func (h *stubHandler) Handle(ctx context.Context, req agents.Request) (agents.Result, error) {
	return h.handleFn(ctx, req)
}

func staticHandler(name, content string) *stubHandler {
	return &stubHandler{
		name: name,
		handleFn: func(ctx context.Context, req agents.Request) (agents.Result, error) {
			return agents.Result{Content: content}, nil
		},
	}
}
