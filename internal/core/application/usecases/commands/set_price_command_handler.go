package commands

import (
	"context"

	"atelier/internal/core/domain/model/access"
)

type SetPriceCommandHandler struct {
	uowFactory UoWFactory
}

func NewSetPriceCommandHandler(uowFactory UoWFactory) SetPriceCommandHandler {
	return SetPriceCommandHandler{uowFactory: uowFactory}
}

func (h SetPriceCommandHandler) Handle(ctx context.Context, cmd SetPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Authorize(access.ActionSetPrice); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if price, ok := cmd.Price(); ok {
		if err = o.SetPrice(price); err != nil {
			return err
		}
	} else {
		o.ClearPrice()
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
