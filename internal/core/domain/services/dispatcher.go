package services

import (
	"errors"

	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
)

var (
	// ErrWorkstationIsRequired is returned when a workstation target or claimant is missing.
	ErrWorkstationIsRequired = errors.New("workstation is required")
)

// DeclineReason explains why a claim had no effect.
type DeclineReason string

const (
	DeclineNotInPool DeclineReason = "not_in_pool"
	DeclineUnpriced  DeclineReason = "unpriced"
)

// ClaimResult is the outcome of a claim. A declined claim is not an error.
type ClaimResult struct {
	Claimed bool
	Reason  DeclineReason
}

// Target is a dispatch destination resolved by the caller.
type Target struct {
	routing     order.Routing
	workstation *workstation.Workstation
}

// Unassign clears the routing of an order.
func Unassign() Target {
	return Target{routing: order.Unrouted()}
}

// Pool routes an order into the waiting room.
func Pool() Target {
	return Target{routing: order.InWaitingRoom()}
}

// ToWorkstation routes an order to an existing workstation.
func ToWorkstation(ws *workstation.Workstation) (Target, error) {
	if ws == nil {
		return Target{}, ErrWorkstationIsRequired
	}
	if err := ws.Validate(); err != nil {
		return Target{}, err
	}
	routing, err := order.ToWorkstation(ws.ID())
	if err != nil {
		return Target{}, err
	}
	return Target{routing: routing, workstation: ws}, nil
}

func (t Target) Routing() order.Routing {
	return t.routing
}

// Workstation returns the destination workstation, nil unless routed to one.
func (t Target) Workstation() *workstation.Workstation {
	return t.workstation
}

// Dispatcher routes orders and arbitrates claims.
//
// Business rules:
//   - assignment does not look at the current routing or status
//   - a claim only succeeds on a priced order sitting in the waiting room
//   - a successful claim forces the order into Sewing
//
// Claim is not safe for concurrent use on the same order by itself; the
// caller runs it inside an exclusive unit of work so that the check and the
// write happen atomically.
type Dispatcher struct{}

func NewDispatcher() Dispatcher {
	return Dispatcher{}
}

// Assign sets the routing of the order to the target.
func (d Dispatcher) Assign(o *order.Order, target Target) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if target.routing.Kind() == order.AtWorkstation && target.workstation == nil {
		return ErrWorkstationIsRequired
	}
	o.Route(target.routing)
	return nil
}

// Claim hands a pooled, priced order to the workstation. Any other order
// yields a declined result and is left untouched.
func (d Dispatcher) Claim(o *order.Order, ws *workstation.Workstation) (ClaimResult, error) {
	if err := o.Validate(); err != nil {
		return ClaimResult{}, err
	}
	if ws == nil {
		return ClaimResult{}, ErrWorkstationIsRequired
	}
	if err := ws.Validate(); err != nil {
		return ClaimResult{}, err
	}

	err := o.Claim(ws.ID())
	switch {
	case errors.Is(err, order.ErrOrderIsNotInWaitingRoom):
		return ClaimResult{Reason: DeclineNotInPool}, nil
	case errors.Is(err, order.ErrOrderIsNotPriced):
		return ClaimResult{Reason: DeclineUnpriced}, nil
	case err != nil:
		return ClaimResult{}, err
	}

	return ClaimResult{Claimed: true}, nil
}
