package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrReopenPackCommandIsNotConstructed = errors.New(
	"ReopenPackCommand must be created via NewReopenPackCommand constructor",
)

// ReopenPackCommand represents a request to return a completed packing
// session to in-progress. Boxes and items are untouched.
type ReopenPackCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID

	guard guard.ConstructorGuard
}

// NewReopenPackCommand creates a command to reopen a completed pack.
func NewReopenPackCommand(packID kernel.UUID) (ReopenPackCommand, error) {
	if err := packID.Validate(); err != nil {
		return ReopenPackCommand{}, err
	}

	return ReopenPackCommand{
		packID: packID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReopenPackCommand) Validate() error {
	return c.guard.Validate(ErrReopenPackCommandIsNotConstructed)
}

// PackID returns the pack to reopen.
func (c ReopenPackCommand) PackID() kernel.UUID {
	return c.packID
}
