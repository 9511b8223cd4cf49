package commands

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrClaimOrderCommandIsNotConstructed = errors.New(
	"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
)

// ClaimOrderCommand asks for the pooled order to be handed to the actor's workstation.
type ClaimOrderCommand struct {
	actor   access.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewClaimOrderCommand(actor access.Actor, orderID kernel.UUID) (ClaimOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ClaimOrderCommand{}, err
	}
	return ClaimOrderCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

func (c ClaimOrderCommand) Actor() access.Actor {
	return c.actor
}

func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
