package queries

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrGetCartonsQueryIsNotConstructed = errors.New(
	"GetCartonsQuery must be created via NewGetCartonsQuery constructor",
)

// GetCartonsQuery retrieves the active carton catalog for box creation.
type GetCartonsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetCartonsQuery creates a query for the active carton catalog.
func NewGetCartonsQuery() GetCartonsQuery {
	return GetCartonsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetCartonsQuery) Validate() error {
	return q.guard.Validate(ErrGetCartonsQueryIsNotConstructed)
}

// GetCartonsQueryResponse is one carton type available for new boxes.
type GetCartonsQueryResponse struct {
	ID          kernel.UUID `json:"id"`
	Name        string      `json:"name"`
	LengthIn    float64     `json:"length_in"`
	WidthIn     float64     `json:"width_in"`
	HeightIn    float64     `json:"height_in"`
	MaxWeightLb int         `json:"max_weight_lb"`
}
