package commands

import (
	"context"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/services"
	"atelier/internal/pkg/errs"
)

// ErrTransferTargetIsInvalid is returned when a workstation tries to unassign an order.
var ErrTransferTargetIsInvalid = errs.NewValueIsInvalidError("a transfer must target a workstation or the waiting room")

// AssignOrderCommandHandler routes an order and logs where it went.
//
// Example:
//
//	handler := NewAssignOrderCommandHandler(uowFactory, services.NewNotificationEmitter(clock.NewSystem()))
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrUnauthorized):
//	    // wrong mode, or transfer of an order the workstation does not hold
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // unknown order or workstation; nothing was written
//	}
type AssignOrderCommandHandler struct {
	uowFactory UoWFactory
	dispatcher services.Dispatcher
	emitter    services.NotificationEmitter
}

func NewAssignOrderCommandHandler(uowFactory UoWFactory, emitter services.NotificationEmitter) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		dispatcher: services.NewDispatcher(),
		emitter:    emitter,
	}
}

// Handle checks the mode, resolves the destination, routes the order and
// prepends one notification naming the destination.
func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	action := assignAction(cmd.Actor())
	if err := cmd.Actor().Authorize(action); err != nil {
		return err
	}
	if action == access.ActionTransfer && cmd.Target().IsUnassigned() {
		return ErrTransferTargetIsInvalid
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

	if err = cmd.Actor().AuthorizeOnOrder(action, o.Routing()); err != nil {
		return err
	}

	target, err := h.resolveTarget(ctx, uow, cmd.Target())
	if err != nil {
		return err
	}

	if err = h.dispatcher.Assign(o, target); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	n, err := h.emitter.Assigned(o, target.Workstation())
	if err != nil {
		return err
	}
	if err = uow.NotificationRepository().Prepend(ctx, n); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func (h AssignOrderCommandHandler) resolveTarget(ctx context.Context, uow UoW, routing order.Routing) (services.Target, error) {
	switch routing.Kind() {
	case order.WaitingRoom:
		return services.Pool(), nil
	case order.AtWorkstation:
		id, _ := routing.Workstation()
		ws, err := uow.WorkstationRepository().Get(ctx, id)
		if err != nil {
			return services.Target{}, err
		}
		return services.ToWorkstation(ws)
	default:
		return services.Unassign(), nil
	}
}

func assignAction(actor access.Actor) access.Action {
	if actor.Mode() == access.ModeWorkstation {
		return access.ActionTransfer
	}
	return access.ActionAssign
}
