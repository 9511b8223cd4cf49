package ports

import (
	"context"

	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders within a unit of work.
type OrderRepository interface {
	// Add stores a new order.
	// Returns atelier.ErrTicketIDIsTaken when the ticket is already used.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores a modified order. The routing target must exist.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns a copy of the order; changes are only kept after Update.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAll returns every order in creation order.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
