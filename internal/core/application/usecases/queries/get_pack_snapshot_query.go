// Package queries contains read-only operations in the CQRS architecture.
// Queries bypass the domain model and read persisted rows directly, shaping
// them into denormalized views for presentation layers.
package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrGetPackSnapshotQueryIsNotConstructed = errors.New(
	"GetPackSnapshotQuery must be created via NewGetPackSnapshotQuery constructor",
)

// GetPackSnapshotQuery retrieves the denormalized view of one packing
// session: header, lines with packed totals, and boxes with their items.
// The snapshot is recomputed fresh from persisted rows on every request.
type GetPackSnapshotQuery struct {
	packID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPackSnapshotQuery creates a query for one pack's snapshot.
func NewGetPackSnapshotQuery(packID kernel.UUID) (GetPackSnapshotQuery, error) {
	if err := packID.Validate(); err != nil {
		return GetPackSnapshotQuery{}, err
	}

	return GetPackSnapshotQuery{
		packID: packID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPackSnapshotQuery) Validate() error {
	return q.guard.Validate(ErrGetPackSnapshotQueryIsNotConstructed)
}

// PackID returns the pack to project.
func (q GetPackSnapshotQuery) PackID() kernel.UUID {
	return q.packID
}

// SnapshotHeader carries the order and session fields shown above the
// workspace.
type SnapshotHeader struct {
	PackID       kernel.UUID `json:"pack_id"`
	OrderNo      string      `json:"order_no"`
	CustomerName string      `json:"customer_name"`
	ShipTo       string      `json:"ship_to"`
	DueDate      *time.Time  `json:"due_date"`
	LeadTimePlan string      `json:"lead_time_plan"`
	Status       string      `json:"status"`
	PackedBy     string      `json:"packed_by"`
	CompletedAt  *time.Time  `json:"completed_at"`
}

// SnapshotLine is one order line with its packed progress. Remaining is
// never negative.
type SnapshotLine struct {
	ID          kernel.UUID `json:"id"`
	ProductCode string      `json:"product_code"`
	Finish      string      `json:"finish"`
	LengthIn    float64     `json:"length_in"`
	HeightIn    float64     `json:"height_in"`
	QtyOrdered  int         `json:"qty_ordered"`
	PackedQty   int         `json:"packed_qty"`
	Remaining   int         `json:"remaining"`
}

// SnapshotItem is one line's quantity inside a box, with the line's display
// dimensions.
type SnapshotItem struct {
	ID          kernel.UUID `json:"id"`
	OrderLineID kernel.UUID `json:"order_line_id"`
	ProductCode string      `json:"product_code"`
	Qty         int         `json:"qty"`
	LengthIn    float64     `json:"length_in"`
	HeightIn    float64     `json:"height_in"`
}

// SnapshotBox is one box with its label, dimensions, weight, and items.
type SnapshotBox struct {
	ID                kernel.UUID    `json:"id"`
	BoxNo             int            `json:"box_no"`
	Label             string         `json:"label"`
	CartonTypeID      *kernel.UUID   `json:"carton_type_id"`
	CartonName        string         `json:"carton_name"`
	LengthIn          float64        `json:"length_in"`
	WidthIn           float64        `json:"width_in"`
	HeightIn          float64        `json:"height_in"`
	MaxWeightLb       int            `json:"max_weight_lb"`
	WeightEnteredLb   *float64       `json:"weight_entered_lb"`
	WeightEffectiveLb *int           `json:"weight_effective_lb"`
	Items             []SnapshotItem `json:"items"`
}

// GetPackSnapshotQueryResponse is the full denormalized pack view.
type GetPackSnapshotQueryResponse struct {
	Header SnapshotHeader `json:"header"`
	Lines  []SnapshotLine `json:"lines"`
	Boxes  []SnapshotBox  `json:"boxes"`
}
