package services

import (
	"fmt"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/notification"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/domain/model/workstation"
	"atelier/internal/pkg/clock"
)

// WaitingRoomLabel is how the shared pool is named in messages.
const WaitingRoomLabel = "Salle des Commandes"

// NotificationEmitter builds notifications for pipeline and dispatch events.
// It does not deduplicate: the same event twice yields two entries.
//
// Example:
//
//	emitter := NewNotificationEmitter(clock.NewSystem())
//	n, ok, err := emitter.StatusEntered(o, "Aminata Diallo")
//	if ok {
//	    _ = notifications.Prepend(ctx, n)
//	}
type NotificationEmitter struct {
	clock clock.Clock
}

func NewNotificationEmitter(c clock.Clock) NotificationEmitter {
	return NotificationEmitter{clock: c}
}

// StatusEntered returns the client-facing entry for the order's current
// status. ok is false for statuses that do not notify the client.
func (e NotificationEmitter) StatusEntered(o *order.Order, clientName string) (*notification.Notification, bool, error) {
	if !o.Status().NotifiesClient() {
		return nil, false, nil
	}
	msg := fmt.Sprintf("La commande %s de %s est maintenant %s", o.TicketID(), clientName, o.Status().Label())
	n, err := e.build(o, msg)
	if err != nil {
		return nil, false, err
	}
	return n, true, nil
}

// Assigned returns the entry for a routing change. ws is the destination
// workstation and must be set when the order is routed to one.
func (e NotificationEmitter) Assigned(o *order.Order, ws *workstation.Workstation) (*notification.Notification, error) {
	var msg string
	switch o.Routing().Kind() {
	case order.WaitingRoom:
		msg = fmt.Sprintf("Commande %s placée dans la %s", o.TicketID(), WaitingRoomLabel)
	case order.AtWorkstation:
		if ws == nil {
			return nil, ErrWorkstationIsRequired
		}
		msg = fmt.Sprintf("Commande %s assignée au poste %s", o.TicketID(), ws.Name())
	default:
		msg = fmt.Sprintf("Commande %s retirée de la répartition", o.TicketID())
	}
	return e.build(o, msg)
}

// Claimed returns the entry for a workstation taking an order from the pool.
func (e NotificationEmitter) Claimed(o *order.Order, ws *workstation.Workstation) (*notification.Notification, error) {
	if ws == nil {
		return nil, ErrWorkstationIsRequired
	}
	msg := fmt.Sprintf("Commande %s prise en charge par %s", o.TicketID(), ws.Name())
	return e.build(o, msg)
}

func (e NotificationEmitter) build(o *order.Order, message string) (*notification.Notification, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	orderID := o.ID()
	return notification.NewNotification(kernel.NewUUID(), message, e.clock.Now(), &orderID)
}
