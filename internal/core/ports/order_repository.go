package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for imported order
// snapshots. Orders are written once at import and only read afterwards.
type OrderRepository interface {
	// Add persists a newly imported order snapshot with its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order snapshot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByOrderNo retrieves an order snapshot by its order number.
	// Returns an ObjectNotFoundError when the order was never imported.
	GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error)
}
