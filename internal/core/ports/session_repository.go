package ports

import (
	"context"

	"atelier/internal/core/domain/model/access"
	"atelier/internal/core/domain/model/kernel"
)

// SessionRepository keeps the access sessions of devices. Sessions are not
// part of the atelier aggregate and are never flushed.
type SessionRepository interface {
	// Get returns a copy of the session or an errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.UUID) (*access.Session, error)

	Save(ctx context.Context, s *access.Session) error

	Delete(ctx context.Context, id kernel.UUID) error
}
