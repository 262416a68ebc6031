package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var (
	ErrRemoveItemCommandIsNotConstructed = errors.New(
		"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
	)
	ErrQtyIsNotPositive = errors.New("qty must be greater than 0")
)

// RemoveItemCommand represents a request to remove units of an order line
// from a box. Removing more than the box holds clamps at zero and deletes
// the item row.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	boxID       kernel.UUID
	orderLineID kernel.UUID
	qty         int

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove qty units of a line.
func NewRemoveItemCommand(packID, boxID, orderLineID kernel.UUID, qty int) (RemoveItemCommand, error) {
	cmd := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packID.Validate(),
		boxID.Validate(),
		orderLineID.Validate(),
		cmd.setQty(qty),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	cmd.packID = packID
	cmd.boxID = boxID
	cmd.orderLineID = orderLineID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// PackID returns the pack being worked on.
func (c RemoveItemCommand) PackID() kernel.UUID {
	return c.packID
}

// BoxID returns the box holding the line.
func (c RemoveItemCommand) BoxID() kernel.UUID {
	return c.boxID
}

// OrderLineID returns the order line to remove units of.
func (c RemoveItemCommand) OrderLineID() kernel.UUID {
	return c.orderLineID
}

// Qty returns the number of units to remove.
func (c RemoveItemCommand) Qty() int {
	return c.qty
}

func (c *RemoveItemCommand) setQty(qty int) error {
	if qty <= 0 {
		return ErrQtyIsNotPositive
	}

	c.qty = qty
	return nil
}
