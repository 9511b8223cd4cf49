package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
)

// NotificationRepository defines the contract for the notification log within a unit of work.
type NotificationRepository interface {
	// Prepend puts the entry at the front of the log.
	Prepend(ctx context.Context, n *notification.Notification) error

	// MarkRead flags one entry as read, or returns an errs.ObjectNotFoundError.
	MarkRead(ctx context.Context, id kernel.UUID) error

	// MarkAllRead flags every entry as read and returns how many changed.
	MarkAllRead(ctx context.Context) (int, error)
}
