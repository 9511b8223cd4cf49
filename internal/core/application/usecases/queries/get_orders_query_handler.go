package queries

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/clock"
	"atelier/internal/pkg/errs"
)

var ErrSubscriptionIsInactive = errors.New("subscription is not active")

type GetOrdersQueryHandler struct {
	reader SnapshotReader
	clock  clock.Clock
}

func NewGetOrdersQueryHandler(reader SnapshotReader, c clock.Clock) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{reader: reader, clock: c}
}

func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	action := access.ActionViewBoard
	if query.scope == scopeArchives {
		action = access.ActionViewArchives
	}
	if err := query.Actor().Authorize(action); err != nil {
		return nil, err
	}

	a, err := h.reader.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	active := a.Profile().Subscription().IsActive(h.clock.Now())
	if query.scope == scopeArchives && !access.IsAllowed(query.Actor().Mode(), active, access.ScreenArchives) {
		return nil, errs.NewUnauthorizedErrorWithCause(
			string(access.ActionViewArchives),
			query.Actor().Mode().String(),
			ErrSubscriptionIsInactive,
		)
	}

	var keep func(*order.Order) bool
	switch query.scope {
	case scopeWorkstation:
		keep = func(o *order.Order) bool { return o.Routing().IsHeldBy(query.workstationID) }
	case scopeArchives:
		keep = func(o *order.Order) bool { return o.Status().IsTerminal() }
	default:
		keep = func(o *order.Order) bool { return o.Routing().IsWaitingRoom() }
	}
	return ordersWhere(a, keep), nil
}
