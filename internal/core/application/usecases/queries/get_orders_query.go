package queries

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via one of the NewGet...Query constructors",
)

type orderScope int

const (
	scopePool orderScope = iota
	scopeWorkstation
	scopeArchives
)

// GetOrdersQuery lists orders of one scope: the waiting room, one
// workstation, or the delivered archive.
type GetOrdersQuery struct {
	actor         access.Actor
	scope         orderScope
	workstationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPoolQuery lists the orders sitting in the waiting room.
func NewGetPoolQuery(actor access.Actor) GetOrdersQuery {
	return GetOrdersQuery{actor: actor, scope: scopePool, guard: guard.NewConstructorGuard()}
}

// NewGetWorkstationOrdersQuery lists the orders routed to a workstation.
// A workstation-mode actor may only list its own orders.
func NewGetWorkstationOrdersQuery(actor access.Actor, workstationID kernel.UUID) (GetOrdersQuery, error) {
	if err := workstationID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}
	if bound, ok := actor.WorkstationID(); ok && !bound.IsEqual(workstationID) {
		return GetOrdersQuery{}, errs.NewUnauthorizedErrorWithCause(
			string(access.ActionViewBoard),
			actor.Mode().String(),
			errs.NewValueIsInvalidError("workstationId"),
		)
	}
	return GetOrdersQuery{
		actor:         actor,
		scope:         scopeWorkstation,
		workstationID: workstationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// NewGetArchivesQuery lists delivered orders. Manager only.
func NewGetArchivesQuery(actor access.Actor) GetOrdersQuery {
	return GetOrdersQuery{actor: actor, scope: scopeArchives, guard: guard.NewConstructorGuard()}
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

func (q GetOrdersQuery) Actor() access.Actor {
	return q.actor
}
