package memory

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
)

// NotificationRepository writes to the log of the unit of work's working copy.
type NotificationRepository struct {
	uow *UnitOfWork
}

func (r *NotificationRepository) Prepend(_ context.Context, n *notification.Notification) error {
	a, err := r.uow.aggregate()
	if err != nil {
		return err
	}
	if err = a.Notifications().Prepend(n.Clone()); err != nil {
		return err
	}
	r.uow.markChanged()
	return nil
}

func (r *NotificationRepository) MarkRead(_ context.Context, id kernel.UUID) error {
	a, err := r.uow.aggregate()
	if err != nil {
		return err
	}
	if err = a.Notifications().MarkRead(id); err != nil {
		return err
	}
	r.uow.markChanged()
	return nil
}

func (r *NotificationRepository) MarkAllRead(_ context.Context) (int, error) {
	a, err := r.uow.aggregate()
	if err != nil {
		return 0, err
	}
	changed := a.Notifications().MarkAllRead()
	if changed > 0 {
		r.uow.markChanged()
	}
	return changed, nil
}
