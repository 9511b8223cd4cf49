package commands

import (
	"context"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/services"
)

// ClaimOrderCommandHandler lets a workstation take an order from the waiting room.
//
// The check and the write run in one unit of work. Units of work on the
// ledger are exclusive, so of two workstations claiming the same order only
// the first succeeds; the second sees the order outside the pool and is
// declined.
//
// Example:
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return err
//	}
//	if !result.Claimed {
//	    fmt.Println("declined:", result.Reason)
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
	emitter    services.NotificationEmitter
}

func NewClaimOrderCommandHandler(uowFactory UoWFactory, emitter services.NotificationEmitter) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
		emitter:    emitter,
	}
}

// Handle claims the order. A declined claim returns a result with Claimed
// false, writes nothing and emits no notification.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, cmd ClaimOrderCommand) (services.ClaimResult, error) {
	if err := cmd.Validate(); err != nil {
		return services.ClaimResult{}, err
	}
	if err := cmd.Actor().Authorize(access.ActionClaim); err != nil {
		return services.ClaimResult{}, err
	}
	workstationID, _ := cmd.Actor().WorkstationID()

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.ClaimResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return services.ClaimResult{}, err
	}

	ws, err := uow.WorkstationRepository().Get(ctx, workstationID)
	if err != nil {
		return services.ClaimResult{}, err
	}

	result, err := h.dispatcher.Claim(o, ws)
	if err != nil || !result.Claimed {
		return result, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return services.ClaimResult{}, err
	}

	n, err := h.emitter.Claimed(o, ws)
	if err != nil {
		return services.ClaimResult{}, err
	}
	if err = uow.NotificationRepository().Prepend(ctx, n); err != nil {
		return services.ClaimResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.ClaimResult{}, err
	}

	return result, nil
}
