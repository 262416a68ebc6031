package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrAssignAllRemainingCommandIsNotConstructed = errors.New(
	"AssignAllRemainingCommand must be created via NewAssignAllRemainingCommand constructor",
)

// AssignAllRemainingCommand represents a request to assign a line's entire
// remaining quantity into one box as a single atomic step.
type AssignAllRemainingCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	boxID       kernel.UUID
	orderLineID kernel.UUID

	guard guard.ConstructorGuard
}

// NewAssignAllRemainingCommand creates a command to assign all remaining
// units of a line.
func NewAssignAllRemainingCommand(packID, boxID, orderLineID kernel.UUID) (AssignAllRemainingCommand, error) {
	cmd := AssignAllRemainingCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packID.Validate(),
		boxID.Validate(),
		orderLineID.Validate(),
	); err != nil {
		return AssignAllRemainingCommand{}, err
	}

	cmd.packID = packID
	cmd.boxID = boxID
	cmd.orderLineID = orderLineID
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignAllRemainingCommand) Validate() error {
	return c.guard.Validate(ErrAssignAllRemainingCommandIsNotConstructed)
}

// PackID returns the pack being worked on.
func (c AssignAllRemainingCommand) PackID() kernel.UUID {
	return c.packID
}

// BoxID returns the destination box.
func (c AssignAllRemainingCommand) BoxID() kernel.UUID {
	return c.boxID
}

// OrderLineID returns the order line to assign.
func (c AssignAllRemainingCommand) OrderLineID() kernel.UUID {
	return c.orderLineID
}
