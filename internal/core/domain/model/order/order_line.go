package order

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrOrderLineIsNotConstructed is returned when an OrderLine was not created
// through the NewOrderLine constructor.
var ErrOrderLineIsNotConstructed = errors.New("OrderLine must be created via NewOrderLine constructor")

// OrderLine is one ordered product within an Order. It is immutable once
// created: product code, dimensions, finish, and the ordered quantity are
// fixed for the life of the order snapshot.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty product code
//   - Dimensions carry at most three fractional digits (kernel.Dimension)
//   - Ordered quantity is an integer >= 0
type OrderLine struct {
	// id is the unique identifier for the line
	id kernel.UUID

	// productCode identifies the product as displayed on manifests
	productCode string

	// length and height are the product's display dimensions in inches
	length kernel.Dimension
	height kernel.Dimension

	// finish is the optional surface finish description
	finish string

	// qtyOrdered is the immutable ordered quantity
	qtyOrdered int

	guard guard.ConstructorGuard
}

// NewOrderLine creates an OrderLine with validation. This is the only way to
// create a valid line; it is also used when restoring lines from persistence
// since lines carry no mutable state.
func NewOrderLine(
	id kernel.UUID,
	productCode string,
	length, height kernel.Dimension,
	finish string,
	qtyOrdered int,
) (*OrderLine, error) {
	line := &OrderLine{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		line.setID(id),
		line.setProductCode(productCode),
		line.setDimensions(length, height),
		line.setQtyOrdered(qtyOrdered),
	); err != nil {
		return nil, err
	}

	line.finish = finish
	return line, nil
}

// Validate ensures the line was constructed through NewOrderLine.
func (l *OrderLine) Validate() error {
	if l == nil {
		return ErrOrderLineIsNotConstructed
	}
	return l.guard.Validate(ErrOrderLineIsNotConstructed)
}

// IsEqual compares two lines by identifier.
func (l *OrderLine) IsEqual(other *OrderLine) bool {
	return other != nil && l.id.IsEqual(other.id)
}

// ID returns the line's unique identifier.
func (l *OrderLine) ID() kernel.UUID {
	return l.id
}

// ProductCode returns the product code for the line.
func (l *OrderLine) ProductCode() string {
	return l.productCode
}

// Length returns the product length in inches.
func (l *OrderLine) Length() kernel.Dimension {
	return l.length
}

// Height returns the product height in inches.
func (l *OrderLine) Height() kernel.Dimension {
	return l.height
}

// Finish returns the optional finish description; empty when not specified.
func (l *OrderLine) Finish() string {
	return l.finish
}

// QtyOrdered returns the immutable ordered quantity.
func (l *OrderLine) QtyOrdered() int {
	return l.qtyOrdered
}

func (l *OrderLine) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *OrderLine) setProductCode(productCode string) error {
	if productCode == "" {
		return errs.NewValueIsRequiredError("productCode")
	}
	l.productCode = productCode
	return nil
}

func (l *OrderLine) setDimensions(length, height kernel.Dimension) error {
	if err := errors.Join(length.Validate(), height.Validate()); err != nil {
		return err
	}
	l.length = length
	l.height = height
	return nil
}

func (l *OrderLine) setQtyOrdered(qtyOrdered int) error {
	if qtyOrdered < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qtyOrdered", fmt.Errorf("%d is negative", qtyOrdered))
	}
	l.qtyOrdered = qtyOrdered
	return nil
}
