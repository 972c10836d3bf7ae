package pending

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"content-assistant/internal/model"
	pkgLog "content-assistant/pkg/log"
)

// RedisCoordinator stores at most one pending request per user and guards
// access with a short-TTL SET NX lock. Both TTLs are explicit constructor
// parameters.
type RedisCoordinator struct {
	rdb        redis.Cmdable
	pendingTTL time.Duration
	lockTTL    time.Duration
	l          pkgLog.Logger
}

var _ Coordinator = (*RedisCoordinator)(nil)

// NewRedisCoordinator creates a coordinator. lockTTL should be a few seconds;
// it only needs to outlive the read-then-decide step.
func NewRedisCoordinator(rdb redis.Cmdable, pendingTTL, lockTTL time.Duration, l pkgLog.Logger) *RedisCoordinator {
	return &RedisCoordinator{rdb: rdb, pendingTTL: pendingTTL, lockTTL: lockTTL, l: l}
}

func pendingKey(userID string) string {
	return fmt.Sprintf("chat:pending:%s", userID)
}

func lockKey(userID string) string {
	return fmt.Sprintf("chat:pending:lock:%s", userID)
}

func (c *RedisCoordinator) AcquireLock(ctx context.Context, userID string) bool {
	ok, err := c.rdb.SetNX(ctx, lockKey(userID), "1", c.lockTTL).Result()
	if err != nil {
		c.l.Warnf(ctx, "pending: lock acquisition failed for user %s, skipping pending check: %v", userID, err)
		return false
	}
	return ok
}

func (c *RedisCoordinator) ReleaseLock(ctx context.Context, userID string) {
	if err := c.rdb.Del(ctx, lockKey(userID)).Err(); err != nil {
		// The TTL will release it shortly anyway.
		c.l.Warnf(ctx, "pending: lock release failed for user %s: %v", userID, err)
	}
}

func (c *RedisCoordinator) GetPending(ctx context.Context, userID string) *model.PendingRequest {
	raw, err := c.rdb.Get(ctx, pendingKey(userID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.l.Warnf(ctx, "pending: read failed for user %s, treating as absent: %v", userID, err)
		}
		return nil
	}

	var pr model.PendingRequest
	if err := json.Unmarshal([]byte(raw), &pr); err != nil {
		c.l.Warnf(ctx, "pending: unreadable record for user %s, clearing: %v", userID, err)
		c.ClearPending(ctx, userID)
		return nil
	}

	// Clock-skew safety: expired records are absent even before eviction.
	if pr.Expired(time.Now()) {
		c.ClearPending(ctx, userID)
		return nil
	}

	return &pr
}

func (c *RedisCoordinator) SetPending(ctx context.Context, userID string, pr model.PendingRequest) error {
	now := time.Now().UTC()
	if pr.CreatedAt.IsZero() {
		pr.CreatedAt = now
	}
	if pr.ExpiresAt.IsZero() {
		pr.ExpiresAt = now.Add(c.pendingTTL)
	}

	b, err := json.Marshal(pr)
	if err != nil {
		return fmt.Errorf("pending: marshal record: %w", err)
	}

	if err := c.rdb.Set(ctx, pendingKey(userID), b, c.pendingTTL).Err(); err != nil {
		return fmt.Errorf("pending: store record for user %s: %w", userID, err)
	}
	return nil
}

func (c *RedisCoordinator) ClearPending(ctx context.Context, userID string) {
	if err := c.rdb.Del(ctx, pendingKey(userID)).Err(); err != nil {
		c.l.Warnf(ctx, "pending: clear failed for user %s: %v", userID, err)
	}
}
