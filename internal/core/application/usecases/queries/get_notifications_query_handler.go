package queries

import (
	"context"

	"atelier/internal/core/domain/model/access"
)

type GetNotificationsQueryHandler struct {
	reader SnapshotReader
}

func NewGetNotificationsQueryHandler(reader SnapshotReader) GetNotificationsQueryHandler {
	return GetNotificationsQueryHandler{reader: reader}
}

func (h GetNotificationsQueryHandler) Handle(ctx context.Context, query GetNotificationsQuery) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().Authorize(access.ActionReadNotifications); err != nil {
		return nil, err
	}

	a, err := h.reader.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	entries := a.Notifications().All()
	if query.UnreadOnly() {
		entries = a.Notifications().Unread()
	}

	views := make([]NotificationView, 0, len(entries))
	for _, n := range entries {
		v := NotificationView{
			ID:      n.ID().String(),
			Message: n.Message(),
			Date:    n.Date(),
			Read:    n.IsRead(),
		}
		if orderID, ok := n.OrderID(); ok {
			v.OrderID = orderID.String()
		}
		views = append(views, v)
	}
	return views, nil
}
