package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrOrderIsNotInWaitingRoom declines a claim on an order outside the shared pool.
	ErrOrderIsNotInWaitingRoom = errors.New("order is not in the waiting room")
	// ErrOrderIsNotPriced declines a claim on an order without a price.
	ErrOrderIsNotPriced = errors.New("order has no price")
)

// Order is a production job of the atelier.
//
// Invariants:
//   - id and ticketID are set at construction and never change
//   - status is always one of the five pipeline states
//   - routing only references a workstation that exists; the owning
//     aggregate checks that before calling Route
type Order struct {
	id       kernel.UUID
	ticketID kernel.TicketID
	clientID string
	modelID  string
	date     time.Time
	status   Status
	routing  Routing
	price    *int64
	notes    string

	guard guard.ConstructorGuard
}

// NewOrder creates an unassigned order in PendingValidation.
//
// Example:
//
//	ticket, _ := kernel.NewTicketID()
//	o, err := order.NewOrder(kernel.NewUUID(), ticket, clientID, modelID, deliveryDate)
func NewOrder(
	id kernel.UUID,
	ticketID kernel.TicketID,
	clientID string,
	modelID string,
	date time.Time,
) (*Order, error) {
	o := &Order{
		status:  PendingValidation,
		routing: Unrouted(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTicketID(ticketID),
		o.setClientID(clientID),
		o.setModelID(modelID),
		o.setDate(date),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from a persisted snapshot.
func RestoreOrder(
	id kernel.UUID,
	ticketID kernel.TicketID,
	clientID string,
	modelID string,
	date time.Time,
	status Status,
	routing Routing,
	price *int64,
	notes string,
) (*Order, error) {
	o := &Order{
		routing: routing,
		notes:   notes,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setTicketID(ticketID),
		o.setClientID(clientID),
		o.setModelID(modelID),
		o.setDate(date),
		o.setStatus(status),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate rejects orders that bypassed the constructors.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) TicketID() kernel.TicketID {
	return o.ticketID
}

func (o *Order) ClientID() string {
	return o.clientID
}

func (o *Order) ModelID() string {
	return o.modelID
}

// Date is the promised delivery date.
func (o *Order) Date() time.Time {
	return o.date
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) Routing() Routing {
	return o.routing
}

// Price returns the agreed price and whether one was set.
func (o *Order) Price() (int64, bool) {
	if o.price == nil {
		return 0, false
	}
	return *o.price, true
}

func (o *Order) Notes() string {
	return o.notes
}

// IsPriced reports whether a price was agreed.
func (o *Order) IsPriced() bool {
	return o.price != nil
}

// ChangeStatus moves the order to the target status if the policy accepts it.
// The status is left unchanged on error.
func (o *Order) ChangeStatus(to Status, policy TransitionPolicy) error {
	if policy == nil {
		policy = PermissiveTransitions{}
	}
	if err := policy.ValidateTransition(o.status, to); err != nil {
		return err
	}
	o.status = to
	return nil
}

// Route sets the dispatch target. Any status may be routed.
func (o *Order) Route(routing Routing) {
	o.routing = routing
}

// ValidateClaim checks whether a workstation may take the order from the pool.
// It returns ErrOrderIsNotInWaitingRoom or ErrOrderIsNotPriced on decline.
func (o *Order) ValidateClaim() error {
	if !o.routing.IsWaitingRoom() {
		return ErrOrderIsNotInWaitingRoom
	}
	if !o.IsPriced() {
		return ErrOrderIsNotPriced
	}
	return nil
}

// Claim hands the order to the workstation and forces it into Sewing,
// bypassing the transition policy.
func (o *Order) Claim(workstationID kernel.UUID) error {
	if err := o.ValidateClaim(); err != nil {
		return err
	}
	routing, err := ToWorkstation(workstationID)
	if err != nil {
		return err
	}
	o.routing = routing
	o.status = Sewing
	return nil
}

// SetPrice records the agreed price. Negative amounts are rejected.
func (o *Order) SetPrice(price int64) error {
	return o.setPrice(&price)
}

// ClearPrice removes the price.
func (o *Order) ClearPrice() {
	o.price = nil
}

// SetNotes replaces the free-form notes.
func (o *Order) SetNotes(notes string) {
	o.notes = strings.TrimSpace(notes)
}

// Clone returns an independent copy.
func (o *Order) Clone() *Order {
	c := *o
	if o.price != nil {
		p := *o.price
		c.price = &p
	}
	return &c
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTicketID(ticketID kernel.TicketID) error {
	if err := ticketID.Validate(); err != nil {
		return err
	}
	o.ticketID = ticketID
	return nil
}

func (o *Order) setClientID(clientID string) error {
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return errs.NewValueIsRequiredError("clientId")
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setModelID(modelID string) error {
	o.modelID = strings.TrimSpace(modelID)
	return nil
}

func (o *Order) setDate(date time.Time) error {
	if date.IsZero() {
		return errs.NewValueIsRequiredError("date")
	}
	o.date = date.UTC()
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setPrice(price *int64) error {
	if price == nil {
		o.price = nil
		return nil
	}
	if *price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", *price))
	}
	p := *price
	o.price = &p
	return nil
}
