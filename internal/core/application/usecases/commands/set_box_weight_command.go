package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var ErrSetBoxWeightCommandIsNotConstructed = errors.New(
	"SetBoxWeightCommand must be created via NewSetBoxWeightCommand constructor",
)

// SetBoxWeightCommand represents a request to record or clear a box's
// weight. A nil weight clears the box back to unweighed.
type SetBoxWeightCommand struct { //nolint:recvcheck //using for validation
	packID   kernel.UUID
	boxID    kernel.UUID
	weightLb *float64

	guard guard.ConstructorGuard
}

// NewSetBoxWeightCommand creates a command to set or clear a box weight.
// The value itself is validated when the weight is constructed; pass nil to
// clear.
func NewSetBoxWeightCommand(packID, boxID kernel.UUID, weightLb *float64) (SetBoxWeightCommand, error) {
	cmd := SetBoxWeightCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		packID.Validate(),
		boxID.Validate(),
	); err != nil {
		return SetBoxWeightCommand{}, err
	}

	cmd.packID = packID
	cmd.boxID = boxID
	cmd.weightLb = weightLb
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SetBoxWeightCommand) Validate() error {
	return c.guard.Validate(ErrSetBoxWeightCommandIsNotConstructed)
}

// PackID returns the pack that owns the box.
func (c SetBoxWeightCommand) PackID() kernel.UUID {
	return c.packID
}

// BoxID returns the box being weighed.
func (c SetBoxWeightCommand) BoxID() kernel.UUID {
	return c.boxID
}

// WeightLb returns the entered weight in pounds, or nil to clear.
func (c SetBoxWeightCommand) WeightLb() *float64 {
	return c.weightLb
}
