package queries

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/pkg/guard"
)

var ErrGetKanbanQueryIsNotConstructed = errors.New(
	"GetKanbanQuery must be created via NewGetKanbanQuery constructor",
)

// GetKanbanQuery returns the production board: one column per active
// status, delivered orders excluded.
//
// Example:
//
//	query := NewGetKanbanQuery(session.Actor())
//	columns, err := handler.Handle(ctx, query)
//	for _, c := range columns {
//	    fmt.Printf("%s: %d\n", c.Label, len(c.Orders))
//	}
type GetKanbanQuery struct {
	actor access.Actor

	guard guard.ConstructorGuard
}

func NewGetKanbanQuery(actor access.Actor) GetKanbanQuery {
	return GetKanbanQuery{actor: actor, guard: guard.NewConstructorGuard()}
}

func (q GetKanbanQuery) Validate() error {
	return q.guard.Validate(ErrGetKanbanQueryIsNotConstructed)
}

func (q GetKanbanQuery) Actor() access.Actor {
	return q.actor
}

// KanbanColumn groups the orders of one status, in creation order.
type KanbanColumn struct {
	Status string
	Label  string
	Orders []OrderView
}
