package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrDuplicateBoxCommandIsNotConstructed = errors.New(
	"DuplicateBoxCommand must be created via NewDuplicateBoxCommand constructor",
)

// DuplicateBoxCommand represents a request to duplicate a box with all its
// items and settings. The copy runs the full assignment validation, so it
// fails all-or-nothing when remaining quantities or the pair rule block it.
type DuplicateBoxCommand struct { //nolint:recvcheck //using for validation
	packID      kernel.UUID
	sourceBoxID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDuplicateBoxCommand creates a command to duplicate a box.
func NewDuplicateBoxCommand(packID, sourceBoxID kernel.UUID) (DuplicateBoxCommand, error) {
	cmd := DuplicateBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackID(packID),
		cmd.setSourceBoxID(sourceBoxID),
	); err != nil {
		return DuplicateBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DuplicateBoxCommand) Validate() error {
	return c.guard.Validate(ErrDuplicateBoxCommandIsNotConstructed)
}

// PackID returns the pack that owns the source box.
func (c DuplicateBoxCommand) PackID() kernel.UUID {
	return c.packID
}

// SourceBoxID returns the box to copy.
func (c DuplicateBoxCommand) SourceBoxID() kernel.UUID {
	return c.sourceBoxID
}

func (c *DuplicateBoxCommand) setPackID(packID kernel.UUID) error {
	if err := packID.Validate(); err != nil {
		return err
	}

	c.packID = packID
	return nil
}

func (c *DuplicateBoxCommand) setSourceBoxID(sourceBoxID kernel.UUID) error {
	if err := sourceBoxID.Validate(); err != nil {
		return err
	}

	c.sourceBoxID = sourceBoxID
	return nil
}
