package kernel

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// dimensionScale is the number of thousandths of an inch per inch.
// Dimensions are stored scaled so that three-decimal values compare exactly.
const dimensionScale = 1000

// ErrDimensionIsNotConstructed is returned when validating a zero-value Dimension.
var ErrDimensionIsNotConstructed = errs.NewValueIsRequiredError(
	"dimension must be created via NewDimension or DimensionFromThousandths")

// Dimension is a linear measurement in inches with at most three fractional
// digits. It is stored internally as an integer count of thousandths of an
// inch, so equality and ordering are exact at the domain's precision.
//
// Example:
//
//	length, err := kernel.NewDimension(24.125)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(length) // "24.125"
type Dimension struct {
	thousandths int64

	guard guard.ConstructorGuard
}

// NewDimension creates a Dimension from a value in inches.
// The value must be non-negative and finite; it is rounded half-away-from-zero
// to three fractional digits.
func NewDimension(inches float64) (Dimension, error) {
	if math.IsNaN(inches) || math.IsInf(inches, 0) {
		return Dimension{}, errs.NewValueIsInvalidErrorWithCause(
			"dimension", fmt.Errorf("%v is not a finite number", inches))
	}
	if inches < 0 {
		return Dimension{}, errs.NewValueIsInvalidErrorWithCause(
			"dimension", fmt.Errorf("%v is negative", inches))
	}

	return Dimension{
		thousandths: int64(math.Round(inches * dimensionScale)),
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// DimensionFromThousandths restores a Dimension from its persisted scaled value.
func DimensionFromThousandths(thousandths int64) (Dimension, error) {
	if thousandths < 0 {
		return Dimension{}, errs.NewValueIsInvalidErrorWithCause(
			"dimension", fmt.Errorf("%d thousandths is negative", thousandths))
	}

	return Dimension{
		thousandths: thousandths,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Inches returns the dimension as a float64 number of inches.
func (d Dimension) Inches() float64 {
	return float64(d.thousandths) / dimensionScale
}

// Thousandths returns the scaled integer representation for persistence.
func (d Dimension) Thousandths() int64 {
	return d.thousandths
}

// IsZero reports whether the dimension is exactly zero.
func (d Dimension) IsZero() bool {
	return d.thousandths == 0
}

// IsEqual reports whether two dimensions are equal at three-decimal precision.
func (d Dimension) IsEqual(other Dimension) bool {
	return d.thousandths == other.thousandths
}

// String renders the dimension with trailing zeros trimmed: 24.500 -> "24.5",
// 24.000 -> "24".
func (d Dimension) String() string {
	s := strconv.FormatFloat(d.Inches(), 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

// Validate returns ErrDimensionIsNotConstructed for zero-value instances.
func (d Dimension) Validate() error {
	return d.guard.Validate(ErrDimensionIsNotConstructed)
}
