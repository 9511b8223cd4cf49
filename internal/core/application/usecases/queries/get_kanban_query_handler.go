package queries

import (
	"context"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/order"
)

type GetKanbanQueryHandler struct {
	reader SnapshotReader
}

func NewGetKanbanQueryHandler(reader SnapshotReader) GetKanbanQueryHandler {
	return GetKanbanQueryHandler{reader: reader}
}

// Handle returns the columns in pipeline order. Empty columns are kept.
func (h GetKanbanQueryHandler) Handle(ctx context.Context, query GetKanbanQuery) ([]KanbanColumn, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := query.Actor().Authorize(access.ActionViewBoard); err != nil {
		return nil, err
	}

	a, err := h.reader.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	columns := make([]KanbanColumn, 0, len(order.Statuses()))
	for _, status := range order.Statuses() {
		if status.IsTerminal() {
			continue
		}
		columns = append(columns, KanbanColumn{
			Status: status.Code(),
			Label:  status.Label(),
			Orders: ordersWhere(a, func(o *order.Order) bool { return o.Status() == status }),
		})
	}
	return columns, nil
}
