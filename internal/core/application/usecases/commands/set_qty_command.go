package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var (
	ErrSetQtyCommandIsNotConstructed = errors.New(
		"SetQtyCommand must be created via NewSetQtyCommand constructor",
	)
	ErrQtyIsNegative = errors.New("qty cannot be negative")
)

// SetQtyCommand represents a request to set a line's quantity in a box to an
// explicit value. Zero removes the line from the box.
type SetQtyCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	boxID       kernel.UUID
	orderLineID kernel.UUID
	qty         int

	guard guard.ConstructorGuard
}

// NewSetQtyCommand creates a command to set an explicit quantity.
func NewSetQtyCommand(packID, boxID, orderLineID kernel.UUID, qty int) (SetQtyCommand, error) {
	cmd := SetQtyCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packID.Validate(),
		boxID.Validate(),
		orderLineID.Validate(),
		cmd.setQty(qty),
	); err != nil {
		return SetQtyCommand{}, err
	}

	cmd.packID = packID
	cmd.boxID = boxID
	cmd.orderLineID = orderLineID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetQtyCommand) Validate() error {
	return c.guard.Validate(ErrSetQtyCommandIsNotConstructed)
}

// PackID returns the pack being worked on.
func (c SetQtyCommand) PackID() kernel.UUID {
	return c.packID
}

// BoxID returns the box holding the line.
func (c SetQtyCommand) BoxID() kernel.UUID {
	return c.boxID
}

// OrderLineID returns the order line whose quantity is set.
func (c SetQtyCommand) OrderLineID() kernel.UUID {
	return c.orderLineID
}

// Qty returns the explicit quantity; zero deletes the item.
func (c SetQtyCommand) Qty() int {
	return c.qty
}

func (c *SetQtyCommand) setQty(qty int) error {
	if qty < 0 {
		return ErrQtyIsNegative
	}

	c.qty = qty
	return nil
}
