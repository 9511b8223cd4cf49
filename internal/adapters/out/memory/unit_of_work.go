package memory

import (
	"context"

	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/ports"
)

// UnitOfWorkFactory creates units of work on one ledger.
type UnitOfWorkFactory struct {
	ledger *Ledger
}

func NewUnitOfWorkFactory(ledger *Ledger) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{ledger: ledger}
}

// Create produces a unit of work. Nothing is locked until Begin.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{ledger: f.ledger}
}

// UnitOfWork is an exclusive transaction on the ledger.
type UnitOfWork struct {
	ledger  *Ledger
	working *atelier.Atelier
	changed bool
}

// Begin waits for the ledger and clones the committed aggregate.
// Calling Begin twice on the same unit of work is a no-op.
func (uow *UnitOfWork) Begin(ctx context.Context) error {
	if uow.working != nil {
		return nil
	}
	if err := uow.ledger.acquire(ctx); err != nil {
		return err
	}
	if uow.ledger.current == nil {
		uow.ledger.release()
		return ErrLedgerIsNotLoaded
	}
	uow.working = uow.ledger.current.Clone()
	uow.changed = false
	return nil
}

// Commit swaps the working copy in and, if anything changed, hands a
// snapshot to the tracker before releasing the ledger. Tracking under the
// ledger keeps tracked snapshots in commit order.
func (uow *UnitOfWork) Commit(ctx context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}
	defer uow.ledger.release()

	if uow.changed {
		uow.ledger.current = uow.working
		if tracker := uow.ledger.tracker; tracker != nil {
			tracker.TrackSnapshot(ctx, uow.working.Clone())
		}
	}
	uow.working = nil
	uow.changed = false
	return nil
}

// Rollback discards the working copy and releases the ledger.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.working == nil {
		return ErrNoActiveTransaction
	}
	uow.working = nil
	uow.changed = false
	uow.ledger.release()
	return nil
}

func (uow *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &OrderRepository{uow: uow}
}

func (uow *UnitOfWork) WorkstationRepository() ports.WorkstationRepository {
	return &WorkstationRepository{uow: uow}
}

func (uow *UnitOfWork) NotificationRepository() ports.NotificationRepository {
	return &NotificationRepository{uow: uow}
}

func (uow *UnitOfWork) WorkshopRepository() ports.WorkshopRepository {
	return &WorkshopRepository{uow: uow}
}

func (uow *UnitOfWork) aggregate() (*atelier.Atelier, error) {
	if uow.working == nil {
		return nil, ErrNoActiveTransaction
	}
	return uow.working, nil
}

func (uow *UnitOfWork) markChanged() {
	uow.changed = true
}
