package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/logger"
	"github.com/nikolayk812/storefront-cart/internal/port"
	"github.com/redis/go-redis/v9"
)

// RedisQueue keeps pending notifications in a Redis list per session so any
// instance can render them. Failures are logged and swallowed.
type RedisQueue struct {
	client *redis.Client
	ttl    time.Duration
	log    *logger.Logger
	now    func() time.Time
}

var _ port.NotificationQueue = (*RedisQueue)(nil)

func NewRedisQueue(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisQueue {
	return &RedisQueue{
		client: client,
		ttl:    ttl,
		log:    log,
		now:    time.Now,
	}
}

func (q *RedisQueue) Success(ctx context.Context, sessionID, message string) {
	if err := q.push(ctx, sessionID, domain.Notification{
		Kind:      domain.NotificationSuccess,
		Message:   message,
		CreatedAt: q.now(),
	}); err != nil {
		q.log.Warn("notification dropped", "session_id", sessionID, "error", err)
	}
}

func (q *RedisQueue) Drain(ctx context.Context, sessionID string) []domain.Notification {
	out, err := q.drain(ctx, sessionID)
	if err != nil {
		q.log.Warn("notifications not drained", "session_id", sessionID, "error", err)
		return nil
	}
	return out
}

func (q *RedisQueue) push(ctx context.Context, sessionID string, n domain.Notification) error {
	data, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("marshal notification failed: %w", err)
	}

	key := queueKey(sessionID)
	_, err = q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, data)
		pipe.Expire(ctx, key, q.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis push failed: %w", err)
	}
	return nil
}

func (q *RedisQueue) drain(ctx context.Context, sessionID string) ([]domain.Notification, error) {
	key := queueKey(sessionID)

	var rng *redis.StringSliceCmd
	_, err := q.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		rng = pipe.LRange(ctx, key, 0, -1)
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("redis drain failed: %w", err)
	}

	raw := rng.Val()
	out := make([]domain.Notification, 0, len(raw))
	for _, r := range raw {
		var n domain.Notification
		if err := json.Unmarshal([]byte(r), &n); err != nil {
			return nil, fmt.Errorf("unmarshal notification failed: %w", err)
		}
		out = append(out, n)
	}
	return out, nil
}

func queueKey(sessionID string) string {
	return fmt.Sprintf("toasts:%s", sessionID)
}
