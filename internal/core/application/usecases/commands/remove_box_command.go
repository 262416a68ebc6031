package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrRemoveBoxCommandIsNotConstructed = errors.New(
	"RemoveBoxCommand must be created via NewRemoveBoxCommand constructor",
)

// RemoveBoxCommand represents a request to delete an empty box from a pack.
type RemoveBoxCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID
	boxID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveBoxCommand creates a command to delete a box.
func NewRemoveBoxCommand(packID, boxID kernel.UUID) (RemoveBoxCommand, error) {
	cmd := RemoveBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackID(packID),
		cmd.setBoxID(boxID),
	); err != nil {
		return RemoveBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveBoxCommand) Validate() error {
	return c.guard.Validate(ErrRemoveBoxCommandIsNotConstructed)
}

// PackID returns the pack that owns the box.
func (c RemoveBoxCommand) PackID() kernel.UUID {
	return c.packID
}

// BoxID returns the box to delete.
func (c RemoveBoxCommand) BoxID() kernel.UUID {
	return c.boxID
}

func (c *RemoveBoxCommand) setPackID(packID kernel.UUID) error {
	if err := packID.Validate(); err != nil {
		return err
	}

	c.packID = packID
	return nil
}

func (c *RemoveBoxCommand) setBoxID(boxID kernel.UUID) error {
	if err := boxID.Validate(); err != nil {
		return err
	}

	c.boxID = boxID
	return nil
}
