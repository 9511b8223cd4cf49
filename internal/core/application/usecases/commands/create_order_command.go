package commands

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientIDIsRequired = errs.NewValueIsRequiredError("clientId")
	ErrDateIsRequired     = errs.NewValueIsRequiredError("date")
	ErrPriceIsNegative    = errs.NewValueIsInvalidError("price must not be negative")
)

// CreateOrderCommand registers a new order in PendingValidation. The ticket
// id is generated by the handler, never supplied by the caller.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(access.Manager(), kernel.NewUUID(), "client-1", "model-3", deliveryDate)
//	if err != nil {
//	    return err
//	}
//	cmd = cmd.WithPrice(45000).WithNotes("doublure soie")
//	ticket, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	actor    access.Actor
	orderID  kernel.UUID
	clientID string
	modelID  string
	date     time.Time
	price    *int64
	notes    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the order identity, client and date.
func NewCreateOrderCommand(
	actor access.Actor,
	orderID kernel.UUID,
	clientID string,
	modelID string,
	date time.Time,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		actor:   actor,
		modelID: strings.TrimSpace(modelID),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setClientID(clientID),
		cmd.setDate(date),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// WithPrice returns a copy of the command carrying an agreed price.
func (c CreateOrderCommand) WithPrice(price int64) CreateOrderCommand {
	c.price = &price
	return c
}

// WithNotes returns a copy of the command carrying free-form notes.
func (c CreateOrderCommand) WithNotes(notes string) CreateOrderCommand {
	c.notes = notes
	return c
}

func (c CreateOrderCommand) Validate() error {
	if err := c.guard.Validate(ErrCreateOrderCommandIsNotConstructed); err != nil {
		return err
	}
	if c.price != nil && *c.price < 0 {
		return ErrPriceIsNegative
	}
	return nil
}

func (c CreateOrderCommand) Actor() access.Actor {
	return c.actor
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientID() string {
	return c.clientID
}

func (c CreateOrderCommand) ModelID() string {
	return c.modelID
}

func (c CreateOrderCommand) Date() time.Time {
	return c.date
}

// Price returns the initial price, if any.
func (c CreateOrderCommand) Price() (int64, bool) {
	if c.price == nil {
		return 0, false
	}
	return *c.price, true
}

func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setClientID(clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return ErrClientIDIsRequired
	}
	c.clientID = clientID
	return nil
}

func (c *CreateOrderCommand) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	c.date = date
	return nil
}
