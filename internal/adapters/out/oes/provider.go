// Package oes reads order headers and lines from the order entry system's
// reporting replica. The replica is a separate database owned by another
// team; this adapter only ever reads from it and normalizes what it finds
// before anything enters the packing core.
package oes

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"packing/internal/core/ports"
	"packing/internal/pkg/errs"

	_ "github.com/lib/pq" // postgres driver for the replica connection
)

// Provider implements ports.OrderSource against the OES replica.
type Provider struct {
	db *sql.DB
}

// NewProvider creates a Provider over an existing replica connection.
func NewProvider(db *sql.DB) *Provider {
	return &Provider{db: db}
}

// Connect opens a connection pool to the replica and wraps it in a Provider.
func Connect(dsn string) (*Provider, error) {
	if dsn == "" {
		return nil, errs.NewValueIsRequiredError("dsn")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	return NewProvider(db), nil
}

// Close releases the replica connection pool.
func (p *Provider) Close() error {
	return p.db.Close()
}

// FetchOrder retrieves one order's header and lines by order number.
// Returns an ObjectNotFoundError when the order does not exist in OES.
// Quantities are normalized to non-negative integers and annotation-only
// detail rows (display names starting with "..") are skipped.
func (p *Provider) FetchOrder(
	ctx context.Context,
	orderNo string,
) (ports.OrderSourceHeader, []ports.OrderSourceLine, error) {
	if orderNo == "" {
		return ports.OrderSourceHeader{}, nil, errs.NewValueIsRequiredError("orderNo")
	}

	header, err := p.fetchHeader(ctx, orderNo)
	if err != nil {
		return ports.OrderSourceHeader{}, nil, err
	}

	lines, err := p.fetchLines(ctx, orderNo)
	if err != nil {
		return ports.OrderSourceHeader{}, nil, err
	}

	return header, lines, nil
}

func (p *Provider) fetchHeader(ctx context.Context, orderNo string) (ports.OrderSourceHeader, error) {
	var header ports.OrderSourceHeader
	var customerName, leadTimePlan sql.NullString
	var shipName, shipAddress, shipCity, shipProvince, shipPostalCode sql.NullString
	var dueDate sql.NullTime

	row := p.db.QueryRowContext(ctx, `
		SELECT
			so.order_no,
			so.client_name,
			sot.name,
			so.due_date,
			so.shipping_name,
			so.shipping_address,
			so.shipping_city,
			so.shipping_province,
			so.shipping_postal_code
		FROM sales_orders so
		LEFT JOIN sales_order_types sot ON sot.sales_order_type_id = so.sales_order_type_id
		WHERE so.order_no = $1
	`, orderNo)

	err := row.Scan(
		&header.OrderNo,
		&customerName,
		&leadTimePlan,
		&dueDate,
		&shipName,
		&shipAddress,
		&shipCity,
		&shipProvince,
		&shipPostalCode,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return ports.OrderSourceHeader{}, errs.NewObjectNotFoundError("orderNo", orderNo)
	}
	if err != nil {
		return ports.OrderSourceHeader{}, err
	}

	header.CustomerName = customerName.String
	header.LeadTimePlan = leadTimePlan.String
	header.ShipTo = composeShipTo(shipName, shipAddress, shipCity, shipProvince, shipPostalCode)
	if dueDate.Valid {
		d := dueDate.Time
		header.DueDate = &d
	}

	return header, nil
}

func (p *Provider) fetchLines(ctx context.Context, orderNo string) ([]ports.OrderSourceLine, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT
			sod.display_name,
			sod.width,
			sod.height,
			COALESCE(fn.display_name, ''),
			sod.quantity
		FROM sales_order_details sod
		LEFT JOIN finishes fn ON fn.finish_id = sod.color_id
		WHERE sod.order_no = $1 AND sod.display_name NOT LIKE '..%'
		ORDER BY sod.detail_id
	`, orderNo)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := make([]ports.OrderSourceLine, 0)
	for rows.Next() {
		var line ports.OrderSourceLine
		var length, height sql.NullFloat64
		var qty sql.NullInt64

		err = rows.Scan(&line.ProductCode, &length, &height, &line.Finish, &qty)
		if err != nil {
			return nil, err
		}

		line.LengthIn = length.Float64
		line.HeightIn = height.Float64
		line.QtyOrdered = int(max(qty.Int64, 0))

		lines = append(lines, line)
	}

	return lines, rows.Err()
}

// composeShipTo flattens the replica's address columns into the single
// display string the packing screens show.
func composeShipTo(parts ...sql.NullString) string {
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part.String); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return strings.Join(fields, ", ")
}
