package port

import (
	"context"

	"github.com/nikolayk812/storefront-cart/internal/domain"
)

// Notifier emits transient messages. Emission is fire-and-forget.
type Notifier interface {
	Success(ctx context.Context, sessionID, message string)
}

// NotificationQueue is a Notifier whose pending messages can be drained for display.
type NotificationQueue interface {
	Notifier
	Drain(ctx context.Context, sessionID string) []domain.Notification
}
