package carton

import (
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrCartonIsNotConstructed is returned when a Carton was not created through
// the NewCarton constructor.
var ErrCartonIsNotConstructed = errors.New("Carton must be created via NewCarton constructor")

// Carton is a named carton type from the catalog.
//
// Invariants:
//   - Must have a valid unique identifier and a non-empty name
//   - All three dimensions are positive; max weight is a positive whole number
//   - Inactive cartons stay referenced by existing boxes but cannot be picked
//     for new ones
type Carton struct {
	id kernel.UUID

	// name is the label packers pick from, unique within the catalog
	name string

	// interior dimensions in inches
	length kernel.Dimension
	width  kernel.Dimension
	height kernel.Dimension

	// maxWeightLb is the carton's structural weight limit in whole pounds
	maxWeightLb int

	// active controls whether the carton can be picked for new boxes
	active bool

	guard guard.ConstructorGuard
}

// NewCarton creates a Carton with validation. Cartons carry no mutable state
// inside the packing core, so the same constructor serves restore from
// persistence.
func NewCarton(
	id kernel.UUID,
	name string,
	length, width, height kernel.Dimension,
	maxWeightLb int,
	active bool,
) (*Carton, error) {
	carton := &Carton{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		carton.setID(id),
		carton.setName(name),
		carton.setDimensions(length, width, height),
		carton.setMaxWeightLb(maxWeightLb),
	); err != nil {
		return nil, err
	}

	carton.active = active
	return carton, nil
}

// Validate ensures the carton was constructed through NewCarton.
func (c *Carton) Validate() error {
	if c == nil {
		return ErrCartonIsNotConstructed
	}
	return c.guard.Validate(ErrCartonIsNotConstructed)
}

// IsEqual compares two cartons by identifier.
func (c *Carton) IsEqual(other *Carton) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the carton identifier.
func (c *Carton) ID() kernel.UUID {
	return c.id
}

// Name returns the carton's catalog label.
func (c *Carton) Name() string {
	return c.name
}

// Length returns the interior length in inches.
func (c *Carton) Length() kernel.Dimension {
	return c.length
}

// Width returns the interior width in inches.
func (c *Carton) Width() kernel.Dimension {
	return c.width
}

// Height returns the interior height in inches.
func (c *Carton) Height() kernel.Dimension {
	return c.height
}

// MaxWeightLb returns the structural weight limit in whole pounds.
func (c *Carton) MaxWeightLb() int {
	return c.maxWeightLb
}

// IsActive reports whether the carton can be picked for new boxes.
func (c *Carton) IsActive() bool {
	return c.active
}

func (c *Carton) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Carton) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Carton) setDimensions(length, width, height kernel.Dimension) error {
	if err := errors.Join(length.Validate(), width.Validate(), height.Validate()); err != nil {
		return err
	}
	if length.IsZero() || width.IsZero() || height.IsZero() {
		return errs.NewValueIsInvalidError("carton dimensions must be positive")
	}
	c.length = length
	c.width = width
	c.height = height
	return nil
}

func (c *Carton) setMaxWeightLb(maxWeightLb int) error {
	if maxWeightLb <= 0 {
		return errs.NewValueIsOutOfRangeError("maxWeightLb", maxWeightLb, 1, nil)
	}
	c.maxWeightLb = maxWeightLb
	return nil
}
