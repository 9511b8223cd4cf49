package commands

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/guard"
)

var ErrSetStatusCommandIsNotConstructed = errors.New(
	"SetStatusCommand must be created via NewSetStatusCommand constructor",
)

// SetStatusCommand moves an order to a pipeline status.
type SetStatusCommand struct {
	actor   access.Actor
	orderID kernel.UUID
	status  order.Status

	guard guard.ConstructorGuard
}

func NewSetStatusCommand(actor access.Actor, orderID kernel.UUID, status order.Status) (SetStatusCommand, error) {
	if err := errors.Join(orderID.Validate(), status.Validate()); err != nil {
		return SetStatusCommand{}, err
	}
	return SetStatusCommand{
		actor:   actor,
		orderID: orderID,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetStatusCommandIsNotConstructed)
}

func (c SetStatusCommand) Actor() access.Actor {
	return c.actor
}

func (c SetStatusCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetStatusCommand) Status() order.Status {
	return c.status
}
