package commands

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/guard"
)

var (
	ErrAddBoxCommandIsNotConstructed = errors.New(
		"AddBoxCommand must be created via NewAddBoxCommand constructor",
	)
	ErrBoxSpecIsInvalid = errors.New(
		"provide either a carton type or custom length/width/height",
	)
)

// AddBoxCommand represents a request to add an empty box to a pack. The box
// is either based on a carton type from the catalog or on custom dimensions;
// exactly one of the two forms must be supplied.
type AddBoxCommand struct { //nolint:recvcheck //using for validation
	packID       kernel.UUID
	cartonTypeID *kernel.UUID
	lengthIn     *float64
	widthIn      *float64
	heightIn     *float64
	maxWeightLb  int

	guard guard.ConstructorGuard
}

// NewAddBoxCommand creates a command to add a box. Pass a carton type ID for
// a catalog box, or all three dimensions for a custom box. maxWeightLb of 0
// means "use the carton's limit or the default".
func NewAddBoxCommand(
	packID kernel.UUID,
	cartonTypeID *kernel.UUID,
	lengthIn, widthIn, heightIn *float64,
	maxWeightLb int,
) (AddBoxCommand, error) {
	cmd := AddBoxCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackID(packID),
		cmd.setSpec(cartonTypeID, lengthIn, widthIn, heightIn),
		cmd.setMaxWeightLb(maxWeightLb),
	); err != nil {
		return AddBoxCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddBoxCommand) Validate() error {
	return c.guard.Validate(ErrAddBoxCommandIsNotConstructed)
}

// PackID returns the pack to add the box to.
func (c AddBoxCommand) PackID() kernel.UUID {
	return c.packID
}

// CartonTypeID returns the catalog carton to copy dimensions from, or nil.
func (c AddBoxCommand) CartonTypeID() *kernel.UUID {
	return c.cartonTypeID
}

// LengthIn returns the custom length in inches, or nil for catalog boxes.
func (c AddBoxCommand) LengthIn() *float64 {
	return c.lengthIn
}

// WidthIn returns the custom width in inches, or nil for catalog boxes.
func (c AddBoxCommand) WidthIn() *float64 {
	return c.widthIn
}

// HeightIn returns the custom height in inches, or nil for catalog boxes.
func (c AddBoxCommand) HeightIn() *float64 {
	return c.heightIn
}

// MaxWeightLb returns the per-box weight limit override; 0 means default.
func (c AddBoxCommand) MaxWeightLb() int {
	return c.maxWeightLb
}

func (c *AddBoxCommand) setPackID(packID kernel.UUID) error {
	if err := packID.Validate(); err != nil {
		return err
	}

	c.packID = packID
	return nil
}

func (c *AddBoxCommand) setSpec(cartonTypeID *kernel.UUID, lengthIn, widthIn, heightIn *float64) error {
	if cartonTypeID != nil {
		if err := cartonTypeID.Validate(); err != nil {
			return err
		}
		c.cartonTypeID = cartonTypeID
		return nil
	}

	if lengthIn == nil || widthIn == nil || heightIn == nil {
		return ErrBoxSpecIsInvalid
	}

	c.lengthIn = lengthIn
	c.widthIn = widthIn
	c.heightIn = heightIn
	return nil
}

func (c *AddBoxCommand) setMaxWeightLb(maxWeightLb int) error {
	if maxWeightLb < 0 {
		return ErrBoxSpecIsInvalid
	}

	c.maxWeightLb = maxWeightLb
	return nil
}
