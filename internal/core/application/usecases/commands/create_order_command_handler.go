package commands

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// maxCodeAttempts bounds the retries when a generated ticket or access code collides.
const maxCodeAttempts = 5

// ErrCodeGenerationExhausted is returned when every generated code collided with an existing one.
var ErrCodeGenerationExhausted = errors.New("could not generate a unique code")

// TicketGenerator produces candidate ticket ids.
type TicketGenerator func() (kernel.TicketID, error)

// CreateOrderCommandHandler creates orders with a fresh, unique ticket id.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	ticket, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	fmt.Println("created", ticket)
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	tickets    TicketGenerator
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return NewCreateOrderCommandHandlerWithTickets(uowFactory, kernel.NewTicketID)
}

// NewCreateOrderCommandHandlerWithTickets uses a custom ticket source.
func NewCreateOrderCommandHandlerWithTickets(uowFactory UoWFactory, tickets TicketGenerator) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		tickets:    tickets,
	}
}

// Handle creates the order in PendingValidation, unassigned. A ticket that
// collides with an existing order is regenerated up to maxCodeAttempts times.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (kernel.TicketID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.TicketID{}, err
	}
	if err := cmd.Actor().Authorize(access.ActionCreateOrder); err != nil {
		return kernel.TicketID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.TicketID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	for range maxCodeAttempts {
		ticket, err := h.tickets()
		if err != nil {
			return kernel.TicketID{}, err
		}

		o, err := h.newOrder(cmd, ticket)
		if err != nil {
			return kernel.TicketID{}, err
		}

		err = orderRepo.Add(ctx, o)
		if errors.Is(err, atelier.ErrTicketIDIsTaken) {
			continue
		}
		if err != nil {
			return kernel.TicketID{}, err
		}

		if err = uow.Commit(ctx); err != nil {
			return kernel.TicketID{}, err
		}
		return ticket, nil
	}

	return kernel.TicketID{}, ErrCodeGenerationExhausted
}

func (h CreateOrderCommandHandler) newOrder(cmd CreateOrderCommand, ticket kernel.TicketID) (*order.Order, error) {
	o, err := order.NewOrder(cmd.OrderID(), ticket, cmd.ClientID(), cmd.ModelID(), cmd.Date())
	if err != nil {
		return nil, err
	}
	if price, ok := cmd.Price(); ok {
		if err = o.SetPrice(price); err != nil {
			return nil, err
		}
	}
	o.SetNotes(cmd.Notes())
	return o, nil
}
