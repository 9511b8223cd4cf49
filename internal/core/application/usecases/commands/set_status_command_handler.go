package commands

import (
	"context"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/services"
)

// SetStatusCommandHandler applies a status transition through the pipeline.
// Entering ReadyForDelivery or Delivered prepends a client-facing
// notification, every time, including when the status was already set.
type SetStatusCommandHandler struct {
	uowFactory UoWFactory
	pipeline   services.Pipeline
	emitter    services.NotificationEmitter
}

func NewSetStatusCommandHandler(
	uowFactory UoWFactory,
	pipeline services.Pipeline,
	emitter services.NotificationEmitter,
) SetStatusCommandHandler {
	return SetStatusCommandHandler{
		uowFactory: uowFactory,
		pipeline:   pipeline,
		emitter:    emitter,
	}
}

func (h SetStatusCommandHandler) Handle(ctx context.Context, cmd SetStatusCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	if err := cmd.Actor().Authorize(access.ActionSetStatus); err != nil {
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

	if err = cmd.Actor().AuthorizeOnOrder(access.ActionSetStatus, o.Routing()); err != nil {
		return err
	}

	if err = h.pipeline.SetStatus(o, cmd.Status()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	if o.Status().NotifiesClient() {
		clientName, nameErr := uow.WorkshopRepository().ClientName(ctx, o.ClientID())
		if nameErr != nil {
			return nameErr
		}
		n, _, emitErr := h.emitter.StatusEntered(o, clientName)
		if emitErr != nil {
			return emitErr
		}
		if err = uow.NotificationRepository().Prepend(ctx, n); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
