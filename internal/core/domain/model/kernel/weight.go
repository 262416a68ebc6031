package kernel

import (
	"fmt"
	"math"

	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when validating a zero-value Weight.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight")

// Weight is a box weight in pounds. It keeps the operator-entered value for
// redisplay and a ceiling-rounded effective value in whole pounds, which is
// the only value ever used for limit comparisons or persistence of totals.
//
// Example:
//
//	w, _ := kernel.NewWeight(24.2)
//	w.Entered()   // 24.2
//	w.Effective() // 25
type Weight struct {
	entered   float64
	effective int

	guard guard.ConstructorGuard
}

// NewWeight creates a Weight from the operator-entered pounds value.
// The value must be positive and finite.
func NewWeight(entered float64) (Weight, error) {
	if math.IsNaN(entered) || math.IsInf(entered, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not a finite number", entered))
	}
	if entered <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("%v is not greater than 0", entered))
	}

	return Weight{
		entered:   entered,
		effective: int(math.Ceil(entered)),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreWeight reconstructs a Weight from its persisted components.
// The effective value must equal the ceiling of the entered value.
func RestoreWeight(entered float64, effective int) (Weight, error) {
	w, err := NewWeight(entered)
	if err != nil {
		return Weight{}, err
	}
	if w.effective != effective {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause(
			"weight", fmt.Errorf("effective %d does not match ceiling of %v", effective, entered))
	}
	return w, nil
}

// Entered returns the raw pounds value the operator typed in.
func (w Weight) Entered() float64 {
	return w.entered
}

// Effective returns the ceiling-rounded whole-pound value used for validation.
func (w Weight) Effective() int {
	return w.effective
}

// IsEqual reports whether two weights have the same entered value.
func (w Weight) IsEqual(other Weight) bool {
	return w.entered == other.entered
}

// String renders the effective weight, e.g. "25 lb".
func (w Weight) String() string {
	return fmt.Sprintf("%d lb", w.effective)
}

// Validate returns ErrWeightIsNotConstructed for zero-value instances.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
