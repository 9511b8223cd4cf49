package ports

import (
	"context"

	"atelier/internal/core/domain/model/atelier"
)

// WorkshopRepository exposes the workshop-level parts of the aggregate.
type WorkshopRepository interface {
	Profile(ctx context.Context) (atelier.Profile, error)

	UpdateProfile(ctx context.Context, profile atelier.Profile) error

	// ClientName resolves a client for messages, falling back to atelier.UnknownClientName.
	ClientName(ctx context.Context, clientID string) (string, error)
}
