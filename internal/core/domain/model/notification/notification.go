// Package notification holds the in-app log of human-readable events
// produced by the order pipeline. Entries are prepended, so the log is
// always ordered newest first, and only the read flag ever changes.
package notification

import (
	"errors"
	"strings"
	"time"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/errs"
	"atelier/internal/pkg/guard"
)

var (
	ErrMessageIsRequired            = errs.NewValueIsRequiredError("message")
	ErrDateIsRequired               = errs.NewValueIsRequiredError("date")
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")
)

// Notification is one entry of the log.
type Notification struct {
	id      kernel.UUID
	message string
	date    time.Time
	read    bool
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewNotification creates an unread entry. orderID may be nil for entries
// that are not about a specific order.
func NewNotification(id kernel.UUID, message string, date time.Time, orderID *kernel.UUID) (*Notification, error) {
	return RestoreNotification(id, message, date, false, orderID)
}

// RestoreNotification rebuilds an entry from a persisted snapshot.
func RestoreNotification(
	id kernel.UUID,
	message string,
	date time.Time,
	read bool,
	orderID *kernel.UUID,
) (*Notification, error) {
	n := &Notification{
		read:  read,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		n.setID(id),
		n.setMessage(message),
		n.setDate(date),
		n.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil {
		return ErrNotificationIsNotConstructed
	}
	return n.guard.Validate(ErrNotificationIsNotConstructed)
}

func (n *Notification) ID() kernel.UUID {
	return n.id
}

func (n *Notification) Message() string {
	return n.message
}

func (n *Notification) Date() time.Time {
	return n.date
}

func (n *Notification) IsRead() bool {
	return n.read
}

// OrderID returns the order the entry is about, if any.
func (n *Notification) OrderID() (kernel.UUID, bool) {
	if n.orderID == nil {
		return kernel.UUID{}, false
	}
	return *n.orderID, true
}

// IsAbout reports whether the entry references the given order.
func (n *Notification) IsAbout(orderID kernel.UUID) bool {
	return n.orderID != nil && n.orderID.IsEqual(orderID)
}

// MarkRead sets the read flag. Marking twice is a no-op.
func (n *Notification) MarkRead() {
	n.read = true
}

func (n *Notification) Clone() *Notification {
	c := *n
	if n.orderID != nil {
		id := *n.orderID
		c.orderID = &id
	}
	return &c
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setMessage(message string) error {
	if strings.TrimSpace(message) == "" {
		return ErrMessageIsRequired
	}
	n.message = message
	return nil
}

func (n *Notification) setDate(date time.Time) error {
	if date.IsZero() {
		return ErrDateIsRequired
	}
	n.date = date.UTC()
	return nil
}

func (n *Notification) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		n.orderID = nil
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	n.orderID = &id
	return nil
}
