package commands

import (
	"errors"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand flags one notification, or every notification
// when built with NewMarkAllNotificationsReadCommand.
type MarkNotificationReadCommand struct {
	actor          access.Actor
	notificationID kernel.UUID
	all            bool

	guard guard.ConstructorGuard
}

func NewMarkNotificationReadCommand(actor access.Actor, notificationID kernel.UUID) (MarkNotificationReadCommand, error) {
	if err := notificationID.Validate(); err != nil {
		return MarkNotificationReadCommand{}, err
	}
	return MarkNotificationReadCommand{
		actor:          actor,
		notificationID: notificationID,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func NewMarkAllNotificationsReadCommand(actor access.Actor) MarkNotificationReadCommand {
	return MarkNotificationReadCommand{
		actor: actor,
		all:   true,
		guard: guard.NewConstructorGuard(),
	}
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) Actor() access.Actor {
	return c.actor
}

// NotificationID returns the target entry; false means every entry.
func (c MarkNotificationReadCommand) NotificationID() (kernel.UUID, bool) {
	if c.all {
		return kernel.UUID{}, false
	}
	return c.notificationID, true
}
