// Package commands contains the business operations that modify the atelier.
// Every command follows the same pattern: construction-time validation,
// an access check before any ledger mutation, then one unit of work.
package commands

import (
	"context"

	"atelier/internal/core/ports"
)

// Unit of Work interfaces narrow ports.UnitOfWork to what each handler needs.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	WorkstationRepoFactory interface {
		WorkstationRepository() ports.WorkstationRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	WorkshopRepoFactory interface {
		WorkshopRepository() ports.WorkshopRepository
	}

	// WorkstationUoW is used by commands that only touch workstations.
	WorkstationUoW interface {
		TxManager
		WorkstationRepoFactory
	}

	WorkstationUoWFactory interface {
		Create() WorkstationUoW
	}

	// NotificationUoW is used by commands that only touch the notification log.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// AccessUoW is used by the session commands to check access codes.
	AccessUoW interface {
		TxManager
		WorkstationRepoFactory
		WorkshopRepoFactory
	}

	AccessUoWFactory interface {
		Create() AccessUoW
	}

	// UoW spans orders, workstations, notifications and the workshop profile.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().Get(ctx, id)
	//   // ... mutate o, prepend notifications
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		WorkstationRepoFactory
		NotificationRepoFactory
		WorkshopRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
