package queries

import (
	"errors"
	"time"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/pkg/guard"
)

var ErrGetNotificationsQueryIsNotConstructed = errors.New(
	"GetNotificationsQuery must be created via NewGetNotificationsQuery constructor",
)

// GetNotificationsQuery lists the notification log, newest first.
type GetNotificationsQuery struct {
	actor      access.Actor
	unreadOnly bool

	guard guard.ConstructorGuard
}

func NewGetNotificationsQuery(actor access.Actor, unreadOnly bool) GetNotificationsQuery {
	return GetNotificationsQuery{actor: actor, unreadOnly: unreadOnly, guard: guard.NewConstructorGuard()}
}

func (q GetNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrGetNotificationsQueryIsNotConstructed)
}

func (q GetNotificationsQuery) Actor() access.Actor {
	return q.actor
}

func (q GetNotificationsQuery) UnreadOnly() bool {
	return q.unreadOnly
}

type NotificationView struct {
	ID      string
	Message string
	Date    time.Time
	Read    bool
	OrderID string
}
