package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrAssignOneCommandIsNotConstructed = errors.New(
	"AssignOneCommand must be created via NewAssignOneCommand constructor",
)

// AssignOneCommand represents a request to add one unit of an order line
// into a box.
type AssignOneCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	boxID       kernel.UUID
	orderLineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignOneCommand creates a command to assign one unit.
func NewAssignOneCommand(packID, boxID, orderLineID kernel.UUID) (AssignOneCommand, error) {
	cmd := AssignOneCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packID.Validate(),
		boxID.Validate(),
		orderLineID.Validate(),
	); err != nil {
		return AssignOneCommand{}, err
	}

	cmd.packID = packID
	cmd.boxID = boxID
	cmd.orderLineID = orderLineID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignOneCommand) Validate() error {
	return c.guard.Validate(ErrAssignOneCommandIsNotConstructed)
}

// PackID returns the pack being worked on.
func (c AssignOneCommand) PackID() kernel.UUID {
	return c.packID
}

// BoxID returns the destination box.
func (c AssignOneCommand) BoxID() kernel.UUID {
	return c.boxID
}

// OrderLineID returns the order line to assign.
func (c AssignOneCommand) OrderLineID() kernel.UUID {
	return c.orderLineID
}
