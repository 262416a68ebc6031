package pack

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrBoxItemIsNotConstructed is returned when a BoxItem was not created
// through the NewBoxItem constructor.
var ErrBoxItemIsNotConstructed = errors.New("BoxItem must be created via NewBoxItem constructor")

// BoxItem records "this box contains N units of this order line". Quantity is
// always positive; an item reaching zero is deleted rather than kept at zero.
type BoxItem struct {
	id          kernel.UUID
	orderLineID kernel.UUID
	qty         int

	guard guard.ConstructorGuard
}

// NewBoxItem creates a BoxItem with validation. Also used when restoring
// items from persistence.
func NewBoxItem(id, orderLineID kernel.UUID, qty int) (*BoxItem, error) {
	item := &BoxItem{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setID(id),
		item.setOrderLineID(orderLineID),
		item.setQty(qty),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the item was constructed through NewBoxItem.
func (i *BoxItem) Validate() error {
	if i == nil {
		return ErrBoxItemIsNotConstructed
	}
	return i.guard.Validate(ErrBoxItemIsNotConstructed)
}

// ID returns the item's unique identifier.
func (i *BoxItem) ID() kernel.UUID {
	return i.id
}

// OrderLineID returns the order line this item holds units of.
func (i *BoxItem) OrderLineID() kernel.UUID {
	return i.orderLineID
}

// Qty returns the number of units in the box, always positive.
func (i *BoxItem) Qty() int {
	return i.qty
}

func (i *BoxItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *BoxItem) setOrderLineID(orderLineID kernel.UUID) error {
	if err := orderLineID.Validate(); err != nil {
		return err
	}
	i.orderLineID = orderLineID
	return nil
}

func (i *BoxItem) setQty(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"qty", fmt.Errorf("%d is not greater than 0", qty))
	}
	i.qty = qty
	return nil
}
