package queries

import (
	"context"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetStalePacksQueryHandler retrieves in-progress packs older than a threshold.
type GetStalePacksQueryHandler struct {
	db *gorm.DB
}

// NewGetStalePacksQueryHandler creates a handler for stale pack queries.
func NewGetStalePacksQueryHandler(db *gorm.DB) GetStalePacksQueryHandler {
	return GetStalePacksQueryHandler{db: db}
}

// Handle executes the query. Results are sorted oldest first.
func (h GetStalePacksQueryHandler) Handle(
	ctx context.Context,
	query GetStalePacksQuery,
) ([]GetStalePacksQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cutoff := time.Now().UTC().Add(-query.OlderThan())
	packs := make([]GetStalePacksQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			o.order_no,
			p.packed_by,
			p.created_at
		FROM packs p
		JOIN orders o ON o.id = p.order_id
		WHERE p.status = ? AND p.created_at < ?
		ORDER BY p.created_at
	`, int(pack.InProgress), cutoff).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetStalePacksQueryResponse
		var id uuid.UUID

		err = rows.Scan(&id, &resp.OrderNo, &resp.PackedBy, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		resp.PackID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		packs = append(packs, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return packs, nil
}
