package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/workstation"
)

// WorkstationRepository defines the persistence contract for workstations within a unit of work.
type WorkstationRepository interface {
	// Add stores a new workstation.
	// Returns atelier.ErrAccessCodeIsTaken when the access code is already used.
	Add(ctx context.Context, ws *workstation.Workstation) error

	Update(ctx context.Context, ws *workstation.Workstation) error

	// Get returns the workstation or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*workstation.Workstation, error)

	// GetByAccessCode returns the workstation opened by the typed code, or an errs.ObjectNotFoundError.
	GetByAccessCode(ctx context.Context, input string) (*workstation.Workstation, error)

	GetAll(ctx context.Context) ([]*workstation.Workstation, error)
}
