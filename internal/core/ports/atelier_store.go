package ports

import (
	"context"

	"atelier/internal/core/domain/model/atelier"
)

// AtelierStore is the remote aggregate store. The aggregate is the unit of
// durability: Replace writes it whole, there are no partial writes.
type AtelierStore interface {
	// Fetch loads the aggregate. A missing atelier yields an errs.ObjectNotFoundError.
	Fetch(ctx context.Context, atelierID string) (*atelier.Atelier, error)

	// Replace overwrites the stored aggregate with a.
	Replace(ctx context.Context, a *atelier.Atelier) error
}

// SnapshotTracker receives the state of the aggregate after every commit that changed it.
// The snapshot is owned by the tracker and is never mutated afterwards.
type SnapshotTracker interface {
	TrackSnapshot(ctx context.Context, snapshot *atelier.Atelier)
}
