// Package queries contains the read side of the atelier. Queries work on a
// committed snapshot of the aggregate and never open a unit of work.
package queries

import (
	"context"
	"time"

	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
)

// SnapshotReader returns a copy of the committed aggregate.
type SnapshotReader interface {
	Snapshot(ctx context.Context) (*atelier.Atelier, error)
}

// OrderView is the read model of one order.
type OrderView struct {
	ID              string
	TicketID        string
	ClientID        string
	ClientName      string
	ModelID         string
	Date            time.Time
	Status          string
	StatusLabel     string
	WorkstationID   string
	WorkstationName string
	Price           *int64
	Notes           string
}

func newOrderView(a *atelier.Atelier, o *order.Order) OrderView {
	v := OrderView{
		ID:            o.ID().String(),
		TicketID:      o.TicketID().String(),
		ClientID:      o.ClientID(),
		ClientName:    a.ClientName(o.ClientID()),
		ModelID:       o.ModelID(),
		Date:          o.Date(),
		Status:        o.Status().Code(),
		StatusLabel:   o.Status().Label(),
		WorkstationID: o.Routing().String(),
		Notes:         o.Notes(),
	}
	if p, ok := o.Price(); ok {
		v.Price = &p
	}
	switch o.Routing().Kind() {
	case order.WaitingRoom:
		v.WorkstationName = services.WaitingRoomLabel
	case order.AtWorkstation:
		id, _ := o.Routing().Workstation()
		if ws, err := a.Workstation(id); err == nil {
			v.WorkstationName = ws.Name()
		}
	}
	return v
}

func ordersWhere(a *atelier.Atelier, keep func(*order.Order) bool) []OrderView {
	views := make([]OrderView, 0)
	for _, o := range a.Orders() {
		if keep(o) {
			views = append(views, newOrderView(a, o))
		}
	}
	return views
}
