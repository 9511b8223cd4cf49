// Package memory holds the canonical in-memory state of the atelier.
//
// The Ledger owns the current aggregate. Every change goes through a
// UnitOfWork that works on a private clone:
//
//	uow := memory.NewUnitOfWorkFactory(ledger).Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() {
//	    _ = uow.Rollback(ctx)
//	}()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	// ... mutate o
//	if err := uow.OrderRepository().Update(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Units of work are exclusive: Begin waits until no other unit of work is
// open. A check followed by a write inside one unit of work is therefore a
// compare-and-swap on the ledger.
package memory

import (
	"context"
	"errors"

	"atelier/internal/core/domain/model/atelier"
	"atelier/internal/core/ports"
)

var (
	// ErrLedgerIsNotLoaded is returned before the ledger was hydrated.
	ErrLedgerIsNotLoaded = errors.New("ledger is not loaded")
	// ErrNoActiveTransaction is returned when a unit of work is used outside Begin/Commit.
	ErrNoActiveTransaction = errors.New("no active transaction")
)

// Ledger is the single source of truth for the atelier while the service runs.
type Ledger struct {
	// sem is a one-slot semaphore held by the open unit of work
	sem     chan struct{}
	current *atelier.Atelier
	tracker ports.SnapshotTracker
}

// NewLedger creates an empty ledger. tracker receives a snapshot after every
// commit that changed something; it may be nil. The tracker runs while the
// ledger is held, so it must not open a unit of work itself.
func NewLedger(tracker ports.SnapshotTracker) *Ledger {
	return &Ledger{
		sem:     make(chan struct{}, 1),
		tracker: tracker,
	}
}

// SetTracker replaces the snapshot tracker.
func (l *Ledger) SetTracker(tracker ports.SnapshotTracker) {
	l.tracker = tracker
}

// Load replaces the current aggregate, typically with the hydrated one.
// It does not notify the tracker.
func (l *Ledger) Load(ctx context.Context, a *atelier.Atelier) error {
	if err := a.Validate(); err != nil {
		return err
	}
	if err := l.acquire(ctx); err != nil {
		return err
	}
	defer l.release()

	l.current = a.Clone()
	return nil
}

// Snapshot returns a copy of the committed aggregate for read-only use.
func (l *Ledger) Snapshot(ctx context.Context) (*atelier.Atelier, error) {
	if err := l.acquire(ctx); err != nil {
		return nil, err
	}
	defer l.release()

	if l.current == nil {
		return nil, ErrLedgerIsNotLoaded
	}
	return l.current.Clone(), nil
}

func (l *Ledger) acquire(ctx context.Context) error {
	select {
	case l.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Ledger) release() {
	<-l.sem
}
