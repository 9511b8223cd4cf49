package commands

import (
	"context"

	"atelier/internal/core/domain/model/access"
)

type MarkNotificationReadCommandHandler struct {
	uowFactory NotificationUoWFactory
}

func NewMarkNotificationReadCommandHandler(uowFactory NotificationUoWFactory) MarkNotificationReadCommandHandler {
	return MarkNotificationReadCommandHandler{uowFactory: uowFactory}
}

// Handle returns the number of entries marked read.
func (h MarkNotificationReadCommandHandler) Handle(ctx context.Context, cmd MarkNotificationReadCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}
	if err := cmd.Actor().Authorize(access.ActionReadNotifications); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.NotificationRepository()

	changed := 1
	if id, ok := cmd.NotificationID(); ok {
		if err := repo.MarkRead(ctx, id); err != nil {
			return 0, err
		}
	} else {
		var err error
		if changed, err = repo.MarkAllRead(ctx); err != nil {
			return 0, err
		}
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}
	return changed, nil
}
