package queries

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

var ErrGetStalePacksQueryIsNotConstructed = errors.New(
	"GetStalePacksQuery must be created via NewGetStalePacksQuery constructor",
)

// GetStalePacksQuery finds packing sessions left in progress longer than a
// given age. Used by the stale-pack sweep for reporting; nothing acts on the
// result automatically.
type GetStalePacksQuery struct {
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewGetStalePacksQuery creates a query for packs in progress longer than olderThan.
func NewGetStalePacksQuery(olderThan time.Duration) (GetStalePacksQuery, error) {
	if olderThan <= 0 {
		return GetStalePacksQuery{}, errs.NewValueIsInvalidError("olderThan")
	}

	return GetStalePacksQuery{
		olderThan: olderThan,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStalePacksQuery) Validate() error {
	return q.guard.Validate(ErrGetStalePacksQueryIsNotConstructed)
}

// OlderThan returns the minimum age for a pack to count as stale.
func (q GetStalePacksQuery) OlderThan() time.Duration {
	return q.olderThan
}

// GetStalePacksQueryResponse is one pack left in progress past the threshold.
type GetStalePacksQueryResponse struct {
	PackID    kernel.UUID `json:"pack_id"`
	OrderNo   string      `json:"order_no"`
	PackedBy  string      `json:"packed_by"`
	CreatedAt time.Time   `json:"created_at"`
}
