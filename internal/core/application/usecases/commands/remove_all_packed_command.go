package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrRemoveAllPackedCommandIsNotConstructed = errors.New(
	"RemoveAllPackedCommand must be created via NewRemoveAllPackedCommand constructor",
)

// RemoveAllPackedCommand represents a request to remove a line entirely from
// a box regardless of its quantity.
type RemoveAllPackedCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	boxID       kernel.UUID
	orderLineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAllPackedCommand creates a command to clear a line from a box.
func NewRemoveAllPackedCommand(packID, boxID, orderLineID kernel.UUID) (RemoveAllPackedCommand, error) {
	cmd := RemoveAllPackedCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packID.Validate(),
		boxID.Validate(),
		orderLineID.Validate(),
	); err != nil {
		return RemoveAllPackedCommand{}, err
	}

	cmd.packID = packID
	cmd.boxID = boxID
	cmd.orderLineID = orderLineID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAllPackedCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAllPackedCommandIsNotConstructed)
}

// PackID returns the pack being worked on.
func (c RemoveAllPackedCommand) PackID() kernel.UUID {
	return c.packID
}

// BoxID returns the box to clear the line from.
func (c RemoveAllPackedCommand) BoxID() kernel.UUID {
	return c.boxID
}

// OrderLineID returns the order line to clear.
func (c RemoveAllPackedCommand) OrderLineID() kernel.UUID {
	return c.orderLineID
}
