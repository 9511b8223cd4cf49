package atelier

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

// UnknownClientName is used in messages when an order references a client that is not loaded.
const UnknownClientName = "Client inconnu"

var (
	ErrAtelierIDIsRequired     = errs.NewValueIsRequiredError("atelierId")
	ErrAtelierIsNotConstructed = errors.New("Atelier must be created via NewAtelier constructor")
	// ErrTicketIDIsTaken is returned when an order is added with a ticket already used by another order.
	ErrTicketIDIsTaken = errors.New("ticket id is already used")
	// ErrAccessCodeIsTaken is returned when a workstation is added with an access code already in use.
	ErrAccessCodeIsTaken = errors.New("access code is already used")
	// ErrOrderAlreadyExists is returned when an order id is added twice.
	ErrOrderAlreadyExists = errors.New("order already exists")
	// ErrWorkstationAlreadyExists is returned when a workstation id is added twice.
	ErrWorkstationAlreadyExists = errors.New("workstation already exists")
	// ErrTicketIDIsImmutable is returned when an update tries to change the ticket of an order.
	ErrTicketIDIsImmutable = errors.New("ticket id cannot change")
)

// Atelier is the aggregate root of one workshop.
//
// Orders and workstations keep their insertion order, which is the order
// they are shown in and written back in.
type Atelier struct {
	id            string
	profile       Profile
	orders        []*order.Order
	workstations  []*workstation.Workstation
	clients       []Reference
	models        []Reference
	notifications *notification.Log
	// sections holds top-level parts of the persisted document the core does not own
	sections map[string][]byte

	guard guard.ConstructorGuard
}

// NewAtelier creates an empty aggregate.
func NewAtelier(id string, profile Profile) (*Atelier, error) {
	return RestoreAtelier(id, profile, nil, nil, nil, nil, nil, nil)
}

// RestoreAtelier rebuilds the aggregate from a persisted snapshot and checks
// the cross-entity rules. log may be nil for an empty log.
func RestoreAtelier(
	id string,
	profile Profile,
	orders []*order.Order,
	workstations []*workstation.Workstation,
	clients []Reference,
	models []Reference,
	log *notification.Log,
	sections map[string][]byte,
) (*Atelier, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrAtelierIDIsRequired
	}
	if log == nil {
		log = &notification.Log{}
	}

	a := &Atelier{
		id:            id,
		profile:       profile,
		orders:        make([]*order.Order, 0, len(orders)),
		workstations:  make([]*workstation.Workstation, 0, len(workstations)),
		clients:       append([]Reference(nil), clients...),
		models:        append([]Reference(nil), models...),
		notifications: log,
		sections:      make(map[string][]byte, len(sections)),
		guard:         guard.NewConstructorGuard(),
	}
	for k, v := range sections {
		a.sections[k] = append([]byte(nil), v...)
	}

	var restoreErrs []error
	for _, ws := range workstations {
		restoreErrs = append(restoreErrs, a.AddWorkstation(ws))
	}
	for _, o := range orders {
		restoreErrs = append(restoreErrs, a.AddOrder(o))
	}
	if err := errors.Join(restoreErrs...); err != nil {
		return nil, err
	}

	return a, nil
}

func (a *Atelier) Validate() error {
	if a == nil {
		return ErrAtelierIsNotConstructed
	}
	return a.guard.Validate(ErrAtelierIsNotConstructed)
}

func (a *Atelier) ID() string {
	return a.id
}

func (a *Atelier) Profile() Profile {
	return a.profile
}

// SetProfile replaces the profile.
func (a *Atelier) SetProfile(profile Profile) {
	a.profile = profile
}

// Orders returns every order in insertion order.
func (a *Atelier) Orders() []*order.Order {
	out := make([]*order.Order, len(a.orders))
	copy(out, a.orders)
	return out
}

// Order returns the order with the given id, or an ObjectNotFoundError.
func (a *Atelier) Order(id kernel.UUID) (*order.Order, error) {
	for _, o := range a.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderId", id)
}

// HasTicket reports whether any order already uses the ticket.
func (a *Atelier) HasTicket(ticketID kernel.TicketID) bool {
	for _, o := range a.orders {
		if o.TicketID().IsEqual(ticketID) {
			return true
		}
	}
	return false
}

// AddOrder appends a new order. Duplicate ids or tickets and routings to
// unknown workstations are rejected.
func (a *Atelier) AddOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if _, err := a.Order(o.ID()); err == nil {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyExists, o.ID())
	}
	if a.HasTicket(o.TicketID()) {
		return fmt.Errorf("%w: %s", ErrTicketIDIsTaken, o.TicketID())
	}
	if err := a.checkRouting(o.Routing()); err != nil {
		return err
	}
	a.orders = append(a.orders, o)
	return nil
}

// UpdateOrder replaces a stored order with a modified copy of it.
func (a *Atelier) UpdateOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	for i, stored := range a.orders {
		if !stored.ID().IsEqual(o.ID()) {
			continue
		}
		if !stored.TicketID().IsEqual(o.TicketID()) {
			return ErrTicketIDIsImmutable
		}
		if err := a.checkRouting(o.Routing()); err != nil {
			return err
		}
		a.orders[i] = o
		return nil
	}
	return errs.NewObjectNotFoundError("orderId", o.ID())
}

// Workstations returns every workstation in insertion order.
func (a *Atelier) Workstations() []*workstation.Workstation {
	out := make([]*workstation.Workstation, len(a.workstations))
	copy(out, a.workstations)
	return out
}

// Workstation returns the workstation with the given id, or an ObjectNotFoundError.
func (a *Atelier) Workstation(id kernel.UUID) (*workstation.Workstation, error) {
	for _, ws := range a.workstations {
		if ws.ID().IsEqual(id) {
			return ws, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("workstationId", id)
}

// WorkstationByAccessCode finds the workstation opened by the typed code.
func (a *Atelier) WorkstationByAccessCode(input string) (*workstation.Workstation, bool) {
	for _, ws := range a.workstations {
		if ws.Authenticate(input) {
			return ws, true
		}
	}
	return nil, false
}

// HasAccessCode reports whether any workstation already uses the code.
func (a *Atelier) HasAccessCode(code kernel.AccessCode) bool {
	for _, ws := range a.workstations {
		if ws.AccessCode().IsEqual(code) {
			return true
		}
	}
	return false
}

// AddWorkstation appends a workstation. Duplicate ids and access codes are rejected.
func (a *Atelier) AddWorkstation(ws *workstation.Workstation) error {
	if err := ws.Validate(); err != nil {
		return err
	}
	if _, err := a.Workstation(ws.ID()); err == nil {
		return fmt.Errorf("%w: %s", ErrWorkstationAlreadyExists, ws.ID())
	}
	if a.HasAccessCode(ws.AccessCode()) {
		return fmt.Errorf("%w: %s", ErrAccessCodeIsTaken, ws.AccessCode())
	}
	a.workstations = append(a.workstations, ws)
	return nil
}

// UpdateWorkstation replaces a stored workstation. The access code cannot change.
func (a *Atelier) UpdateWorkstation(ws *workstation.Workstation) error {
	if err := ws.Validate(); err != nil {
		return err
	}
	for i, stored := range a.workstations {
		if stored.ID().IsEqual(ws.ID()) {
			if !stored.AccessCode().IsEqual(ws.AccessCode()) {
				return errs.NewValueIsInvalidError("accessCode cannot change")
			}
			a.workstations[i] = ws
			return nil
		}
	}
	return errs.NewObjectNotFoundError("workstationId", ws.ID())
}

func (a *Atelier) Clients() []Reference {
	return append([]Reference(nil), a.clients...)
}

func (a *Atelier) Models() []Reference {
	return append([]Reference(nil), a.models...)
}

// ClientName resolves a client id for messages, falling back to UnknownClientName.
func (a *Atelier) ClientName(clientID string) string {
	for _, c := range a.clients {
		if c.ID() == clientID && c.Name() != "" {
			return c.Name()
		}
	}
	return UnknownClientName
}

// Notifications returns the live log; mutations on it change the aggregate.
func (a *Atelier) Notifications() *notification.Log {
	return a.notifications
}

// Sections returns a copy of the opaque document sections.
func (a *Atelier) Sections() map[string][]byte {
	out := make(map[string][]byte, len(a.sections))
	for k, v := range a.sections {
		out[k] = append([]byte(nil), v...)
	}
	return out
}

// Clone deep-copies the aggregate so that a unit of work can mutate it in isolation.
func (a *Atelier) Clone() *Atelier {
	c := &Atelier{
		id:            a.id,
		profile:       a.profile,
		orders:        make([]*order.Order, len(a.orders)),
		workstations:  make([]*workstation.Workstation, len(a.workstations)),
		clients:       append([]Reference(nil), a.clients...),
		models:        append([]Reference(nil), a.models...),
		notifications: a.notifications.Clone(),
		sections:      maps.Clone(a.sections),
		guard:         a.guard,
	}
	for i, o := range a.orders {
		c.orders[i] = o.Clone()
	}
	for i, ws := range a.workstations {
		c.workstations[i] = ws.Clone()
	}
	return c
}

func (a *Atelier) checkRouting(r order.Routing) error {
	id, ok := r.Workstation()
	if !ok {
		return nil
	}
	_, err := a.Workstation(id)
	return err
}
