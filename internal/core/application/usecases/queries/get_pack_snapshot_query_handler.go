package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPackSnapshotQueryHandler builds the pack workspace view straight from
// persisted rows. Packed totals and remaining counts are aggregated in SQL
// rather than loaded through the aggregate.
//
// Example:
//
//	handler := NewGetPackSnapshotQueryHandler(db)
//	query, _ := NewGetPackSnapshotQuery(packID)
//
//	snapshot, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get pack snapshot: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Order %s: %d boxes\n", snapshot.Header.OrderNo, len(snapshot.Boxes))
type GetPackSnapshotQueryHandler struct {
	db *gorm.DB
}

// NewGetPackSnapshotQueryHandler creates a handler for pack snapshot queries.
// Requires a GORM database connection for query execution.
func NewGetPackSnapshotQueryHandler(db *gorm.DB) GetPackSnapshotQueryHandler {
	return GetPackSnapshotQueryHandler{db: db}
}

// Handle executes the query and assembles the snapshot. Lines are sorted by
// product code and boxes by box number for stable output.
func (h GetPackSnapshotQueryHandler) Handle(
	ctx context.Context,
	query GetPackSnapshotQuery,
) (GetPackSnapshotQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPackSnapshotQueryResponse{}, err
	}

	header, orderID, err := h.loadHeader(ctx, query.PackID())
	if err != nil {
		return GetPackSnapshotQueryResponse{}, err
	}

	lines, err := h.loadLines(ctx, query.PackID(), orderID)
	if err != nil {
		return GetPackSnapshotQueryResponse{}, err
	}

	boxes, err := h.loadBoxes(ctx, query.PackID())
	if err != nil {
		return GetPackSnapshotQueryResponse{}, err
	}

	if err = h.loadItems(ctx, query.PackID(), boxes); err != nil {
		return GetPackSnapshotQueryResponse{}, err
	}

	return GetPackSnapshotQueryResponse{
		Header: header,
		Lines:  lines,
		Boxes:  boxes,
	}, nil
}

func (h GetPackSnapshotQueryHandler) loadHeader(
	ctx context.Context,
	packID kernel.UUID,
) (SnapshotHeader, uuid.UUID, error) {
	var header SnapshotHeader
	var id, orderID uuid.UUID
	var status int
	var dueDate, completedAt sql.NullTime

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.order_id,
			p.status,
			p.packed_by,
			p.completed_at,
			o.order_no,
			o.customer_name,
			o.ship_to,
			o.due_date,
			o.lead_time_plan
		FROM packs p
		JOIN orders o ON o.id = p.order_id
		WHERE p.id = ?
	`, packID.Bytes()).Row()

	err := row.Scan(
		&id,
		&orderID,
		&status,
		&header.PackedBy,
		&completedAt,
		&header.OrderNo,
		&header.CustomerName,
		&header.ShipTo,
		&dueDate,
		&header.LeadTimePlan,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return SnapshotHeader{}, uuid.Nil, errs.NewObjectNotFoundError("packID", packID.String())
	}
	if err != nil {
		return SnapshotHeader{}, uuid.Nil, err
	}

	header.PackID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return SnapshotHeader{}, uuid.Nil, err
	}
	header.Status = pack.Status(status).String()
	header.DueDate = nullableTime(dueDate)
	header.CompletedAt = nullableTime(completedAt)

	return header, orderID, nil
}

func (h GetPackSnapshotQueryHandler) loadLines(
	ctx context.Context,
	packID kernel.UUID,
	orderID uuid.UUID,
) ([]SnapshotLine, error) {
	lines := make([]SnapshotLine, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			l.id,
			l.product_code,
			l.finish,
			l.length_thousandths,
			l.height_thousandths,
			l.qty_ordered,
			COALESCE(packed.qty, 0)
		FROM order_lines l
		LEFT JOIN (
			SELECT i.order_line_id, SUM(i.qty) AS qty
			FROM pack_box_items i
			JOIN pack_boxes b ON b.id = i.box_id
			WHERE b.pack_id = ?
			GROUP BY i.order_line_id
		) packed ON packed.order_line_id = l.id
		WHERE l.order_id = ?
		ORDER BY l.product_code
	`, packID.Bytes(), orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line SnapshotLine
		var id uuid.UUID
		var lengthTh, heightTh int64

		err = rows.Scan(
			&id,
			&line.ProductCode,
			&line.Finish,
			&lengthTh,
			&heightTh,
			&line.QtyOrdered,
			&line.PackedQty,
		)
		if err != nil {
			return nil, err
		}

		line.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		line.LengthIn, line.HeightIn, err = inches(lengthTh, heightTh)
		if err != nil {
			return nil, err
		}
		line.Remaining = max(0, line.QtyOrdered-line.PackedQty)

		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

func (h GetPackSnapshotQueryHandler) loadBoxes(
	ctx context.Context,
	packID kernel.UUID,
) ([]SnapshotBox, error) {
	boxes := make([]SnapshotBox, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			b.id,
			b.box_no,
			b.carton_type_id,
			COALESCE(c.name, ''),
			b.length_thousandths,
			b.width_thousandths,
			b.height_thousandths,
			b.max_weight_lb,
			b.weight_entered_lb,
			b.weight_effective_lb
		FROM pack_boxes b
		LEFT JOIN carton_types c ON c.id = b.carton_type_id
		WHERE b.pack_id = ?
		ORDER BY b.box_no
	`, packID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var box SnapshotBox
		var id uuid.UUID
		var cartonID *uuid.UUID
		var lengthTh, widthTh, heightTh int64
		var enteredLb sql.NullFloat64
		var effectiveLb sql.NullInt64

		err = rows.Scan(
			&id,
			&box.BoxNo,
			&cartonID,
			&box.CartonName,
			&lengthTh,
			&widthTh,
			&heightTh,
			&box.MaxWeightLb,
			&enteredLb,
			&effectiveLb,
		)
		if err != nil {
			return nil, err
		}

		box.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}

		if cartonID != nil {
			ctID, ctErr := kernel.UUIDFromBytes((*cartonID)[:])
			if ctErr != nil {
				return nil, ctErr
			}
			box.CartonTypeID = &ctID
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
		box.LengthIn = length.Inches()
		box.WidthIn = width.Inches()
		box.HeightIn = height.Inches()
		box.Label = fmt.Sprintf("Box %d (%sx%sx%s in)", box.BoxNo, length, width, height)

		if enteredLb.Valid {
			entered := enteredLb.Float64
			effective := int(effectiveLb.Int64)
			box.WeightEnteredLb = &entered
			box.WeightEffectiveLb = &effective
		}

		boxes = append(boxes, box)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return boxes, nil
}

// loadItems fills Items on the already loaded boxes, matched by box ID.
func (h GetPackSnapshotQueryHandler) loadItems(
	ctx context.Context,
	packID kernel.UUID,
	boxes []SnapshotBox,
) error {
	byBoxID := make(map[kernel.UUID]int, len(boxes))
	for i := range boxes {
		boxes[i].Items = make([]SnapshotItem, 0)
		byBoxID[boxes[i].ID] = i
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			i.id,
			i.box_id,
			i.order_line_id,
			i.qty,
			l.product_code,
			l.length_thousandths,
			l.height_thousandths
		FROM pack_box_items i
		JOIN pack_boxes b ON b.id = i.box_id
		JOIN order_lines l ON l.id = i.order_line_id
		WHERE b.pack_id = ?
		ORDER BY b.box_no, l.product_code
	`, packID.Bytes()).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var item SnapshotItem
		var id, boxID, lineID uuid.UUID
		var lengthTh, heightTh int64

		err = rows.Scan(
			&id,
			&boxID,
			&lineID,
			&item.Qty,
			&item.ProductCode,
			&lengthTh,
			&heightTh,
		)
		if err != nil {
			return err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return err
		}
		item.OrderLineID, err = kernel.UUIDFromBytes(lineID[:])
		if err != nil {
			return err
		}
		item.LengthIn, item.HeightIn, err = inches(lengthTh, heightTh)
		if err != nil {
			return err
		}

		owner, err := kernel.UUIDFromBytes(boxID[:])
		if err != nil {
			return err
		}
		if i, ok := byBoxID[owner]; ok {
			boxes[i].Items = append(boxes[i].Items, item)
		}
	}

	return rows.Err()
}

func inches(lengthTh, heightTh int64) (float64, float64, error) {
	length, err := kernel.DimensionFromThousandths(lengthTh)
	if err != nil {
		return 0, 0, err
	}
	height, err := kernel.DimensionFromThousandths(heightTh)
	if err != nil {
		return 0, 0, err
	}
	return length.Inches(), height.Inches(), nil
}

func nullableTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	value := t.Time
	return &value
}
