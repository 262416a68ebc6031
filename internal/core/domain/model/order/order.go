package order

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// the NewOrder constructor.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order is the immutable order snapshot aggregate. It holds the header fields
// shown to packers plus the full set of order lines, frozen at import time.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty order number
//   - Must carry at least one order line; line identifiers are unique
type Order struct {
	// id is the aggregate identifier
	id kernel.UUID

	// orderNo is the human-facing order number, unique across orders
	orderNo string

	// customerName and shipTo are display-only header fields
	customerName string
	shipTo       string

	// dueDate is the promised ship date; nil when the sales system gave none
	dueDate *time.Time

	// leadTimePlan is the optional production plan label
	leadTimePlan string

	// lines holds the frozen order lines in import order
	lines []*OrderLine

	guard guard.ConstructorGuard
}

// NewOrder creates an Order with validation. Orders carry no mutable state,
// so the same constructor serves both import and restore from persistence.
func NewOrder(
	id kernel.UUID,
	orderNo string,
	customerName string,
	shipTo string,
	dueDate *time.Time,
	leadTimePlan string,
	lines []*OrderLine,
) (*Order, error) {
	order := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNo(orderNo),
		order.setLines(lines),
	); err != nil {
		return nil, err
	}

	order.customerName = customerName
	order.shipTo = shipTo
	order.dueDate = dueDate
	order.leadTimePlan = leadTimePlan
	return order, nil
}

// Validate ensures the order was constructed through NewOrder.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the aggregate identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNo returns the human-facing order number.
func (o *Order) OrderNo() string {
	return o.orderNo
}

// CustomerName returns the customer display name; empty when unknown.
func (o *Order) CustomerName() string {
	return o.customerName
}

// ShipTo returns the ship-to description; empty when unknown.
func (o *Order) ShipTo() string {
	return o.shipTo
}

// DueDate returns the promised ship date, or nil when none was given.
func (o *Order) DueDate() *time.Time {
	return o.dueDate
}

// LeadTimePlan returns the production plan label; empty when unknown.
func (o *Order) LeadTimePlan() string {
	return o.leadTimePlan
}

// Lines returns the frozen order lines in import order.
func (o *Order) Lines() []*OrderLine {
	return o.lines
}

// Line returns the line with the given identifier, or an ObjectNotFoundError
// when the order has no such line.
func (o *Order) Line(lineID kernel.UUID) (*OrderLine, error) {
	for _, line := range o.lines {
		if line.ID().IsEqual(lineID) {
			return line, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("lineID", lineID)
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return errs.NewValueIsRequiredError("orderNo")
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setLines(lines []*OrderLine) error {
	if len(lines) == 0 {
		return errs.NewValueIsRequiredError("lines")
	}

	seen := make(map[kernel.UUID]struct{}, len(lines))
	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return err
		}
		if _, ok := seen[line.ID()]; ok {
			return errs.NewValueIsInvalidError("lines: duplicate line ID " + line.ID().String())
		}
		seen[line.ID()] = struct{}{}
	}

	o.lines = lines
	return nil
}
