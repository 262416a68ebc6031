package queries

import (
	"context"

	"packing/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartonsQueryHandler retrieves active carton types from the database.
// Inactive cartons stay out of the catalog but remain referenced by old boxes.
type GetCartonsQueryHandler struct {
	db *gorm.DB
}

// NewGetCartonsQueryHandler creates a handler for carton catalog queries.
func NewGetCartonsQueryHandler(db *gorm.DB) GetCartonsQueryHandler {
	return GetCartonsQueryHandler{db: db}
}

// Handle executes the query to retrieve all active cartons sorted by name.
func (h GetCartonsQueryHandler) Handle(
	ctx context.Context,
	query GetCartonsQuery,
) ([]GetCartonsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cartons := make([]GetCartonsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			length_thousandths,
			width_thousandths,
			height_thousandths,
			max_weight_lb
		FROM carton_types
		WHERE active
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var carton GetCartonsQueryResponse
		var id uuid.UUID
		var lengthTh, widthTh, heightTh int64

		err = rows.Scan(
			&id,
			&carton.Name,
			&lengthTh,
			&widthTh,
			&heightTh,
			&carton.MaxWeightLb,
		)
		if err != nil {
			return nil, err
		}

		carton.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		length, lErr := kernel.DimensionFromThousandths(lengthTh)
		if lErr != nil {
			return nil, lErr
		}
		width, wErr := kernel.DimensionFromThousandths(widthTh)
		if wErr != nil {
			return nil, wErr
		}
		height, hErr := kernel.DimensionFromThousandths(heightTh)
		if hErr != nil {
			return nil, hErr
		}
		carton.LengthIn = length.Inches()
		carton.WidthIn = width.Inches()
		carton.HeightIn = height.Inches()

		cartons = append(cartons, carton)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cartons, nil
}
