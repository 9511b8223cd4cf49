package commands

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand sets the routing target of an order.
//
// target is the persisted workstationId form: "" clears the routing,
// order.WaitingRoomID sends the order to the pool, anything else must be a
// workstation id. From a manager this is an assignment; from a workstation
// it is a transfer of an order the workstation holds.
//
// Example:
//
//	cmd, err := NewAssignOrderCommand(access.Manager(), orderID, order.WaitingRoomID)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type AssignOrderCommand struct {
	actor   access.Actor
	orderID kernel.UUID
	target  order.Routing

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(actor access.Actor, orderID kernel.UUID, target string) (AssignOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return AssignOrderCommand{}, err
	}
	routing, err := order.ParseRouting(target)
	if err != nil {
		return AssignOrderCommand{}, err
	}
	return AssignOrderCommand{
		actor:   actor,
		orderID: orderID,
		target:  routing,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) Actor() access.Actor {
	return c.actor
}

func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignOrderCommand) Target() order.Routing {
	return c.target
}
