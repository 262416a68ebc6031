package ports

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
)

// PackRepository defines the persistence contract for pack aggregates.
// Implementations persist the whole aggregate graph (pack, boxes, items,
// pair guards) so a loaded pack is always internally consistent.
type PackRepository interface {
	// Add persists a new pack aggregate to storage.
	Add(ctx context.Context, aggregate *pack.Pack) error

	// Update persists changes to an existing pack aggregate, including
	// created, changed, and removed boxes, items, and pair guards.
	Update(ctx context.Context, aggregate *pack.Pack) error

	// Get retrieves a pack aggregate by its unique identifier with its
	// full box/item/guard graph.
	Get(ctx context.Context, id kernel.UUID) (*pack.Pack, error)

	// GetByOrderID retrieves the pack for the given order, if any.
	// Returns an ObjectNotFoundError when the order has no pack yet.
	GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pack.Pack, error)
}
