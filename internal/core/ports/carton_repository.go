package ports

import (
	"context"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
)

// CartonRepository defines the read contract for the carton type catalog.
// The catalog is reference data; the packing core never writes it.
type CartonRepository interface {
	// Get retrieves a carton type by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*carton.Carton, error)

	// GetAllActive retrieves the carton types available for new boxes.
	GetAllActive(ctx context.Context) ([]*carton.Carton, error)
}
