package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"content-assistant/internal/model"
	pkgLog "content-assistant/pkg/log"
)

// RedisStore keeps each conversation in a Redis list, with the last routed
// agent in a sibling string key. TTLs are refreshed on every append.
type RedisStore struct {
	rdb redis.Cmdable
	ttl time.Duration
	l   pkgLog.Logger
}

var _ Store = (*RedisStore)(nil)

// NewRedisStore creates a session store. ttl bounds how long an idle
// conversation survives.
func NewRedisStore(rdb redis.Cmdable, ttl time.Duration, l pkgLog.Logger) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl, l: l}
}

func conversationKey(userID string) string {
	return fmt.Sprintf("chat:conversation:%s", userID)
}

func lastAgentKey(userID string) string {
	return fmt.Sprintf("chat:lastagent:%s", userID)
}

func documentsKey(userID string) string {
	return fmt.Sprintf("chat:documents:%s", userID)
}

func (s *RedisStore) Append(ctx context.Context, userID string, role model.Role, content, agent string) {
	msg := model.Message{Role: role, Content: content, Agent: agent, Timestamp: time.Now().UTC()}

	b, err := json.Marshal(msg)
	if err != nil {
		s.l.Errorf(ctx, "session: failed to marshal message for user %s: %v", userID, err)
		return
	}

	key := conversationKey(userID)
	if err := s.rdb.RPush(ctx, key, b).Err(); err != nil {
		s.l.Warnf(ctx, "session: append failed for user %s, continuing without memory: %v", userID, err)
		return
	}
	if s.ttl > 0 {
		if err := s.rdb.Expire(ctx, key, s.ttl).Err(); err != nil {
			s.l.Warnf(ctx, "session: failed to refresh TTL on %s: %v", key, err)
		}
	}

	if role == model.RoleAssistant && agent != "" {
		if err := s.rdb.Set(ctx, lastAgentKey(userID), agent, s.ttl).Err(); err != nil {
			s.l.Warnf(ctx, "session: failed to store last agent for user %s: %v", userID, err)
		}
	}
}

func (s *RedisStore) GetConversation(ctx context.Context, userID string) model.Conversation {
	conv := model.Conversation{UserID: userID, Messages: []model.Message{}}

	rows, err := s.rdb.LRange(ctx, conversationKey(userID), 0, -1).Result()
	if err != nil && err != redis.Nil {
		s.l.Warnf(ctx, "session: failed to load history for user %s, treating as empty: %v", userID, err)
		return conv
	}

	for i, row := range rows {
		var m model.Message
		if err := json.Unmarshal([]byte(row), &m); err != nil {
			s.l.Warnf(ctx, "session: skipping unreadable message %d for user %s: %v", i, userID, err)
			continue
		}
		conv.Messages = append(conv.Messages, m)
	}

	if agent, err := s.rdb.Get(ctx, lastAgentKey(userID)).Result(); err == nil {
		conv.LastAgent = agent
	}

	return conv
}

func (s *RedisStore) Clear(ctx context.Context, userID string) (bool, error) {
	n, err := s.rdb.Del(ctx,
		conversationKey(userID),
		lastAgentKey(userID),
		documentsKey(userID),
	).Result()
	if err != nil {
		return false, fmt.Errorf("session: clear failed for user %s: %w", userID, err)
	}
	return n > 0, nil
}
