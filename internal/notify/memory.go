package notify

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/nikolayk812/storefront-cart/internal/domain"
	"github.com/nikolayk812/storefront-cart/internal/port"
)

// MemoryQueue keeps pending notifications per session in process memory.
// Notifications older than ttl are dropped when the session is next touched.
type MemoryQueue struct {
	mu      sync.Mutex
	pending map[string][]domain.Notification
	ttl     time.Duration
	now     func() time.Time
}

var _ port.NotificationQueue = (*MemoryQueue)(nil)

func NewMemoryQueue(ttl time.Duration) *MemoryQueue {
	return &MemoryQueue{
		pending: make(map[string][]domain.Notification),
		ttl:     ttl,
		now:     time.Now,
	}
}

func (q *MemoryQueue) Success(_ context.Context, sessionID, message string) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending[sessionID] = append(q.prune(sessionID), domain.Notification{
		Kind:      domain.NotificationSuccess,
		Message:   message,
		CreatedAt: q.now(),
	})
}

func (q *MemoryQueue) Drain(_ context.Context, sessionID string) []domain.Notification {
	q.mu.Lock()
	defer q.mu.Unlock()

	out := q.prune(sessionID)
	delete(q.pending, sessionID)
	return out
}

func (q *MemoryQueue) prune(sessionID string) []domain.Notification {
	cutoff := q.now().Add(-q.ttl)
	return slices.DeleteFunc(q.pending[sessionID], func(n domain.Notification) bool {
		return n.CreatedAt.Before(cutoff)
	})
}

// Sweep forgets sessions whose notifications have all expired.
func (q *MemoryQueue) Sweep() {
	q.mu.Lock()
	defer q.mu.Unlock()

	for id := range q.pending {
		if left := q.prune(id); len(left) > 0 {
			q.pending[id] = left
		} else {
			delete(q.pending, id)
		}
	}
}

// Run sweeps every interval until ctx is done.
func (q *MemoryQueue) Run(ctx context.Context, every time.Duration) error {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			q.Sweep()
		}
	}
}
