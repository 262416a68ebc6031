package pack

import (
	"errors"
	"fmt"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrBoxIsNotConstructed is returned when a Box was not created through the
// NewBox or RestoreBox constructors.
var ErrBoxIsNotConstructed = errors.New("Box must be created via NewBox constructor")

// DefaultMaxWeightLb is the weight limit applied to custom-dimension boxes
// when the operator does not supply one.
const DefaultMaxWeightLb = 40

// Box is a physical shipping container within a Pack. Dimensions are either
// copied from a carton type at creation or entered as custom values; the
// carton reference is kept for display. Weight stays unset until the operator
// enters it.
//
// Invariants:
//   - Box number is positive and unique within the pack
//   - All three dimensions are positive; the weight limit is positive
//   - Item quantities are positive; a line appears in at most one item
type Box struct {
	id kernel.UUID

	// boxNo is the per-pack sequential number shown on labels
	boxNo int

	// cartonID references the carton type the dimensions were copied from;
	// nil for custom-dimension boxes
	cartonID *kernel.UUID

	length kernel.Dimension
	width  kernel.Dimension
	height kernel.Dimension

	// maxWeightLb is the per-box weight limit in whole pounds
	maxWeightLb int

	// weight is nil until the operator records one
	weight *kernel.Weight

	items []*BoxItem

	guard guard.ConstructorGuard
}

// NewBox creates an empty, unweighed Box with validation.
func NewBox(
	id kernel.UUID,
	boxNo int,
	cartonID *kernel.UUID,
	length, width, height kernel.Dimension,
	maxWeightLb int,
) (*Box, error) {
	box := &Box{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		box.setID(id),
		box.setBoxNo(boxNo),
		box.setCartonID(cartonID),
		box.setDimensions(length, width, height),
		box.setMaxWeightLb(maxWeightLb),
	); err != nil {
		return nil, err
	}

	return box, nil
}

// RestoreBox recreates a Box from persistence, including its recorded weight
// and items.
func RestoreBox(
	id kernel.UUID,
	boxNo int,
	cartonID *kernel.UUID,
	length, width, height kernel.Dimension,
	maxWeightLb int,
	weight *kernel.Weight,
	items []*BoxItem,
) (*Box, error) {
	box, err := NewBox(id, boxNo, cartonID, length, width, height, maxWeightLb)
	if err != nil {
		return nil, err
	}

	if weight != nil {
		if err := weight.Validate(); err != nil {
			return nil, err
		}
		box.weight = weight
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[item.OrderLineID()]; ok {
			return nil, errs.NewValueIsInvalidError(
				"items: duplicate line " + item.OrderLineID().String())
		}
		seen[item.OrderLineID()] = struct{}{}
	}
	box.items = items

	return box, nil
}

// Validate ensures the box was constructed through NewBox or RestoreBox.
func (b *Box) Validate() error {
	if b == nil {
		return ErrBoxIsNotConstructed
	}
	return b.guard.Validate(ErrBoxIsNotConstructed)
}

// IsEqual compares two boxes by identifier.
func (b *Box) IsEqual(other *Box) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the box identifier.
func (b *Box) ID() kernel.UUID {
	return b.id
}

// BoxNo returns the per-pack sequential box number.
func (b *Box) BoxNo() int {
	return b.boxNo
}

// CartonID returns the referenced carton type, or nil for custom boxes.
func (b *Box) CartonID() *kernel.UUID {
	return b.cartonID
}

// Length returns the box length in inches.
func (b *Box) Length() kernel.Dimension {
	return b.length
}

// Width returns the box width in inches.
func (b *Box) Width() kernel.Dimension {
	return b.width
}

// Height returns the box height in inches.
func (b *Box) Height() kernel.Dimension {
	return b.height
}

// MaxWeightLb returns the per-box weight limit in whole pounds.
func (b *Box) MaxWeightLb() int {
	return b.maxWeightLb
}

// Weight returns the recorded weight, or nil while the box is unweighed.
func (b *Box) Weight() *kernel.Weight {
	return b.weight
}

// Items returns the box's item rows.
func (b *Box) Items() []*BoxItem {
	return b.items
}

// IsEmpty reports whether the box holds no items.
func (b *Box) IsEmpty() bool {
	return len(b.items) == 0
}

// Label renders the human-readable box label, e.g. "Box 2 (30x6x40 in)".
func (b *Box) Label() string {
	return fmt.Sprintf("Box %d (%sx%sx%s in)", b.boxNo, b.length, b.width, b.height)
}

// ItemFor returns the item row for the given line, or nil when the line is
// not in the box.
func (b *Box) ItemFor(orderLineID kernel.UUID) *BoxItem {
	for _, item := range b.items {
		if item.OrderLineID().IsEqual(orderLineID) {
			return item
		}
	}
	return nil
}

// QtyOf returns the units of the given line in this box, zero when absent.
func (b *Box) QtyOf(orderLineID kernel.UUID) int {
	if item := b.ItemFor(orderLineID); item != nil {
		return item.Qty()
	}
	return 0
}

// DistinctLineIDs returns the lines with quantity > 0 in this box, in item
// order.
func (b *Box) DistinctLineIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(b.items))
	for _, item := range b.items {
		ids = append(ids, item.OrderLineID())
	}
	return ids
}

// addQty increments the line's item by n, creating the item row if absent.
// Callers run the overpack and pair-rule checks first.
func (b *Box) addQty(orderLineID kernel.UUID, n int) error {
	if item := b.ItemFor(orderLineID); item != nil {
		return item.setQty(item.Qty() + n)
	}

	item, err := NewBoxItem(kernel.NewUUID(), orderLineID, n)
	if err != nil {
		return err
	}
	b.items = append(b.items, item)
	return nil
}

// replaceQty sets the line's quantity to qty, deleting the item row when qty
// is zero. Callers run the overpack and pair-rule checks first.
func (b *Box) replaceQty(orderLineID kernel.UUID, qty int) error {
	if qty == 0 {
		b.deleteItem(orderLineID)
		return nil
	}

	if item := b.ItemFor(orderLineID); item != nil {
		return item.setQty(qty)
	}
	return b.addQty(orderLineID, qty)
}

// removeQty decrements the line's item by n, deleting the row when the
// quantity reaches zero or below.
func (b *Box) removeQty(orderLineID kernel.UUID, n int) error {
	item := b.ItemFor(orderLineID)
	if item == nil {
		return NewItemNotInBoxError(b.boxNo, orderLineID)
	}

	if item.Qty() <= n {
		b.deleteItem(orderLineID)
		return nil
	}
	return item.setQty(item.Qty() - n)
}

func (b *Box) deleteItem(orderLineID kernel.UUID) {
	for i, item := range b.items {
		if item.OrderLineID().IsEqual(orderLineID) {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

func (b *Box) setWeight(weight *kernel.Weight) error {
	if weight == nil {
		b.weight = nil
		return nil
	}

	if err := weight.Validate(); err != nil {
		return err
	}
	if weight.Effective() > b.maxWeightLb {
		return NewWeightLimitError(b.boxNo, weight.Entered(), b.maxWeightLb)
	}
	b.weight = weight
	return nil
}

func (b *Box) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Box) setBoxNo(boxNo int) error {
	if boxNo <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"boxNo", fmt.Errorf("%d is not greater than 0", boxNo))
	}
	b.boxNo = boxNo
	return nil
}

func (b *Box) setCartonID(cartonID *kernel.UUID) error {
	if cartonID == nil {
		return nil
	}
	if err := cartonID.Validate(); err != nil {
		return err
	}
	b.cartonID = cartonID
	return nil
}

func (b *Box) setDimensions(length, width, height kernel.Dimension) error {
	if err := errors.Join(length.Validate(), width.Validate(), height.Validate()); err != nil {
		return err
	}
	if length.IsZero() || width.IsZero() || height.IsZero() {
		return errs.NewValueIsInvalidError("box dimensions must be positive")
	}
	b.length = length
	b.width = width
	b.height = height
	return nil
}

func (b *Box) setMaxWeightLb(maxWeightLb int) error {
	if maxWeightLb <= 0 {
		return errs.NewValueIsOutOfRangeError("maxWeightLb", maxWeightLb, 1, nil)
	}
	b.maxWeightLb = maxWeightLb
	return nil
}
