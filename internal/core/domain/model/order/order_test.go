package order_test

import (
	"testing"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDimension(t *testing.T, inches float64) kernel.Dimension {
	t.Helper()
	d, err := kernel.NewDimension(inches)
	require.NoError(t, err)
	return d
}

func newTestLine(t *testing.T, productCode string, qtyOrdered int) *order.OrderLine {
	t.Helper()
	line, err := order.NewOrderLine(
		kernel.NewUUID(),
		productCode,
		mustDimension(t, 24),
		mustDimension(t, 36.5),
		"matte black",
		qtyOrdered,
	)
	require.NoError(t, err)
	return line
}

func TestNewOrderLine(t *testing.T) {
	line := newTestLine(t, "FRM-2436", 4)

	require.NoError(t, line.Validate())
	assert.Equal(t, "FRM-2436", line.ProductCode())
	assert.Equal(t, 4, line.QtyOrdered())
	assert.Equal(t, "24", line.Length().String())
	assert.Equal(t, "36.5", line.Height().String())
	assert.Equal(t, "matte black", line.Finish())
}

func TestNewOrderLine_Invalid(t *testing.T) {
	length := mustDimension(t, 24)
	height := mustDimension(t, 36)

	t.Run("empty product code", func(t *testing.T) {
		_, err := order.NewOrderLine(kernel.NewUUID(), "", length, height, "", 1)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := order.NewOrderLine(kernel.NewUUID(), "FRM-2436", length, height, "", -1)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("unconstructed dimension", func(t *testing.T) {
		var zero kernel.Dimension
		_, err := order.NewOrderLine(kernel.NewUUID(), "FRM-2436", zero, height, "", 1)
		require.Error(t, err)
	})
}

func TestOrderLine_Validate_Unconstructed(t *testing.T) {
	var line order.OrderLine
	require.ErrorIs(t, line.Validate(), order.ErrOrderLineIsNotConstructed)
}

func TestNewOrder(t *testing.T) {
	dueDate := time.Date(2026, time.September, 15, 0, 0, 0, 0, time.UTC)
	lines := []*order.OrderLine{
		newTestLine(t, "FRM-2436", 4),
		newTestLine(t, "MAT-1114", 2),
	}

	o, err := order.NewOrder(
		kernel.NewUUID(),
		"SO-10342",
		"Hillside Gallery",
		"410 Dock St, Tacoma WA",
		&dueDate,
		"RUSH-5D",
		lines,
	)

	require.NoError(t, err)
	require.NoError(t, o.Validate())
	assert.Equal(t, "SO-10342", o.OrderNo())
	assert.Equal(t, "Hillside Gallery", o.CustomerName())
	assert.Equal(t, "410 Dock St, Tacoma WA", o.ShipTo())
	assert.Equal(t, &dueDate, o.DueDate())
	assert.Equal(t, "RUSH-5D", o.LeadTimePlan())
	assert.Len(t, o.Lines(), 2)
}

func TestNewOrder_Invalid(t *testing.T) {
	lines := []*order.OrderLine{newTestLine(t, "FRM-2436", 4)}

	t.Run("empty order number", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "", "", "", nil, "", lines)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("no lines", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), "SO-10342", "", "", nil, "", nil)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("duplicate line IDs", func(t *testing.T) {
		line := newTestLine(t, "FRM-2436", 4)
		_, err := order.NewOrder(kernel.NewUUID(), "SO-10342", "", "", nil, "",
			[]*order.OrderLine{line, line})
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_Line(t *testing.T) {
	lines := []*order.OrderLine{
		newTestLine(t, "FRM-2436", 4),
		newTestLine(t, "MAT-1114", 2),
	}
	o, err := order.NewOrder(kernel.NewUUID(), "SO-10342", "", "", nil, "", lines)
	require.NoError(t, err)

	found, err := o.Line(lines[1].ID())
	require.NoError(t, err)
	assert.True(t, found.IsEqual(lines[1]))

	_, err = o.Line(kernel.NewUUID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
