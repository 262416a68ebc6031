package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrCompletePackCommandIsNotConstructed = errors.New(
	"CompletePackCommand must be created via NewCompletePackCommand constructor",
)

// CompletePackCommand represents a request to finalize a packing session.
type CompletePackCommand struct { //nolint:recvcheck //using for validation
	packID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCompletePackCommand creates a command to complete a pack.
func NewCompletePackCommand(packID kernel.UUID) (CompletePackCommand, error) {
	if err := packID.Validate(); err != nil {
		return CompletePackCommand{}, err
	}

	return CompletePackCommand{
		packID: packID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompletePackCommand) Validate() error {
	return c.guard.Validate(ErrCompletePackCommandIsNotConstructed)
}

// PackID returns the pack to complete.
func (c CompletePackCommand) PackID() kernel.UUID {
	return c.packID
}
