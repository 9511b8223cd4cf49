package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is an exclusive business transaction on the atelier aggregate.
// Only one unit of work is open at a time; Begin blocks until the previous
// one committed or rolled back, or ctx is done.
type UnitOfWork interface {
	// Begin acquires the aggregate and opens a working copy.
	Begin(ctx context.Context) error

	// Commit makes the working copy the current state and publishes it.
	Commit(ctx context.Context) error

	// Rollback discards the working copy. It fails when no transaction is open.
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository

	WorkstationRepository() WorkstationRepository

	NotificationRepository() NotificationRepository

	WorkshopRepository() WorkshopRepository
}
