package commands

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrSetPriceCommandIsNotConstructed = errors.New(
	"SetPriceCommand must be created via NewSetPriceCommand constructor",
)

// SetPriceCommand records or clears the agreed price of an order. A priced
// order becomes claimable once it sits in the waiting room.
type SetPriceCommand struct {
	actor   access.Actor
	orderID kernel.UUID
	price   *int64

	guard guard.ConstructorGuard
}

// NewSetPriceCommand builds the command. A nil price clears it.
func NewSetPriceCommand(actor access.Actor, orderID kernel.UUID, price *int64) (SetPriceCommand, error) {
	if err := orderID.Validate(); err != nil {
		return SetPriceCommand{}, err
	}
	cmd := SetPriceCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}
	if price != nil {
		if *price < 0 {
			return SetPriceCommand{}, ErrPriceIsNegative
		}
		p := *price
		cmd.price = &p
	}
	return cmd, nil
}

func (c SetPriceCommand) Validate() error {
	return c.guard.Validate(ErrSetPriceCommandIsNotConstructed)
}

func (c SetPriceCommand) Actor() access.Actor {
	return c.actor
}

func (c SetPriceCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Price returns the new price, or false when the price is cleared.
func (c SetPriceCommand) Price() (int64, bool) {
	if c.price == nil {
		return 0, false
	}
	return *c.price, true
}
