package pack

import (
	"errors"
	"strings"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrPairGuardIsNotConstructed is returned when a PairGuard was not created
// through the NewPairGuard constructor.
var ErrPairGuardIsNotConstructed = errors.New("PairGuard must be created via NewPairGuard constructor")

// PairGuard records that two distinct order lines co-occur in one box. Line
// identifiers are normalized so the pair is unordered; for a given pack one
// pair maps to at most one box. Guards are re-derived from current box
// contents after every content mutation, so fully undoing a co-occurrence
// frees the pair to be boxed together again elsewhere.
type PairGuard struct {
	id kernel.UUID

	// lineLowID and lineHighID are the pair in normalized order
	lineLowID  kernel.UUID
	lineHighID kernel.UUID

	// boxID is the single box this pair co-occurs in
	boxID kernel.UUID

	guard guard.ConstructorGuard
}

// NewPairGuard creates a PairGuard with validation, normalizing the line
// order. Also used when restoring guards from persistence.
func NewPairGuard(id, lineA, lineB, boxID kernel.UUID) (*PairGuard, error) {
	if err := errors.Join(
		id.Validate(),
		lineA.Validate(),
		lineB.Validate(),
		boxID.Validate(),
	); err != nil {
		return nil, err
	}
	if lineA.IsEqual(lineB) {
		return nil, errs.NewValueIsInvalidError("pair guard lines must be distinct")
	}

	low, high := normalizePair(lineA, lineB)
	return &PairGuard{
		id:         id,
		lineLowID:  low,
		lineHighID: high,
		boxID:      boxID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the guard was constructed through NewPairGuard.
func (g *PairGuard) Validate() error {
	if g == nil {
		return ErrPairGuardIsNotConstructed
	}
	return g.guard.Validate(ErrPairGuardIsNotConstructed)
}

// ID returns the guard's unique identifier.
func (g *PairGuard) ID() kernel.UUID {
	return g.id
}

// LineLowID returns the smaller line identifier of the normalized pair.
func (g *PairGuard) LineLowID() kernel.UUID {
	return g.lineLowID
}

// LineHighID returns the larger line identifier of the normalized pair.
func (g *PairGuard) LineHighID() kernel.UUID {
	return g.lineHighID
}

// BoxID returns the box the pair co-occurs in.
func (g *PairGuard) BoxID() kernel.UUID {
	return g.boxID
}

// Matches reports whether the guard covers the unordered pair (lineA, lineB).
func (g *PairGuard) Matches(lineA, lineB kernel.UUID) bool {
	low, high := normalizePair(lineA, lineB)
	return g.lineLowID.IsEqual(low) && g.lineHighID.IsEqual(high)
}

// normalizePair orders two line identifiers so {A, B} and {B, A} map to the
// same key.
func normalizePair(a, b kernel.UUID) (kernel.UUID, kernel.UUID) {
	if strings.Compare(a.String(), b.String()) <= 0 {
		return a, b
	}
	return b, a
}
