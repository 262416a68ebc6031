package pack

import (
	"errors"
	"fmt"
	"strings"

	"packing/internal/core/domain/model/kernel"
)

// Sentinel errors for classification with errors.Is. Rule violations that
// carry context are modeled as structs below and unwrap to these sentinels
// so callers can branch on kind without parsing messages.
var (
	ErrPackAlreadyComplete = errors.New("pack is already complete")
	ErrPackNotComplete     = errors.New("pack is not complete")
	ErrBoxNotEmpty         = errors.New("box is not empty")
	ErrItemNotInBox        = errors.New("item is not in box")
	ErrOverpack            = errors.New("overpacking is not allowed")
	ErrPairRuleViolation   = errors.New("pair rule violation")
	ErrWeightLimitExceeded = errors.New("weight exceeds box limit")
	ErrUnderpacked         = errors.New("pack has an underpacked line")
	ErrOverpacked          = errors.New("pack has an overpacked line")
	ErrUnweighedBox        = errors.New("box has no recorded weight")
	ErrDuplicateBlocked    = errors.New("box cannot be duplicated")
)

// BoxNotEmptyError indicates a delete attempt on a box that still holds items.
type BoxNotEmptyError struct {
	BoxNo int
}

func NewBoxNotEmptyError(boxNo int) *BoxNotEmptyError {
	return &BoxNotEmptyError{BoxNo: boxNo}
}

func (e *BoxNotEmptyError) Error() string {
	return fmt.Sprintf("%s: Box %d still holds items", ErrBoxNotEmpty, e.BoxNo)
}

func (e *BoxNotEmptyError) Unwrap() error {
	return ErrBoxNotEmpty
}

// ItemNotInBoxError indicates a removal targeting a (box, line) pair that has
// no item row.
type ItemNotInBoxError struct {
	BoxNo       int
	OrderLineID kernel.UUID
}

func NewItemNotInBoxError(boxNo int, orderLineID kernel.UUID) *ItemNotInBoxError {
	return &ItemNotInBoxError{BoxNo: boxNo, OrderLineID: orderLineID}
}

func (e *ItemNotInBoxError) Error() string {
	return fmt.Sprintf("%s: line %s is not in Box %d", ErrItemNotInBox, e.OrderLineID, e.BoxNo)
}

func (e *ItemNotInBoxError) Unwrap() error {
	return ErrItemNotInBox
}

// OverpackError indicates that a mutation would push a line's packed total
// past its ordered quantity.
type OverpackError struct {
	ProductCode string
	Requested   int
	Ordered     int
}

func NewOverpackError(productCode string, requested, ordered int) *OverpackError {
	return &OverpackError{ProductCode: productCode, Requested: requested, Ordered: ordered}
}

func (e *OverpackError) Error() string {
	return fmt.Sprintf("%s: %s requested total %d of %d ordered",
		ErrOverpack, e.ProductCode, e.Requested, e.Ordered)
}

func (e *OverpackError) Unwrap() error {
	return ErrOverpack
}

// PairRuleError indicates that two lines already boxed together elsewhere
// would co-occur in a second box.
type PairRuleError struct {
	ProductCode string
	PairedWith  string
	BoxNo       int
}

func NewPairRuleError(productCode, pairedWith string, boxNo int) *PairRuleError {
	return &PairRuleError{ProductCode: productCode, PairedWith: pairedWith, BoxNo: boxNo}
}

func (e *PairRuleError) Error() string {
	return fmt.Sprintf("%s: %s + %s already together in Box %d",
		ErrPairRuleViolation, e.ProductCode, e.PairedWith, e.BoxNo)
}

func (e *PairRuleError) Unwrap() error {
	return ErrPairRuleViolation
}

// WeightLimitError indicates an entered weight whose ceiling-rounded value
// exceeds the box's weight limit.
type WeightLimitError struct {
	BoxNo     int
	EnteredLb float64
	LimitLb   int
}

func NewWeightLimitError(boxNo int, enteredLb float64, limitLb int) *WeightLimitError {
	return &WeightLimitError{BoxNo: boxNo, EnteredLb: enteredLb, LimitLb: limitLb}
}

func (e *WeightLimitError) Error() string {
	return fmt.Sprintf("%s: Box %d entered %g lb, limit %d lb",
		ErrWeightLimitExceeded, e.BoxNo, e.EnteredLb, e.LimitLb)
}

func (e *WeightLimitError) Unwrap() error {
	return ErrWeightLimitExceeded
}

// UnderpackedError indicates a completion attempt with a line packed short.
type UnderpackedError struct {
	ProductCode string
	Packed      int
	Ordered     int
}

func NewUnderpackedError(productCode string, packed, ordered int) *UnderpackedError {
	return &UnderpackedError{ProductCode: productCode, Packed: packed, Ordered: ordered}
}

func (e *UnderpackedError) Error() string {
	return fmt.Sprintf("%s: %s (%d/%d)", ErrUnderpacked, e.ProductCode, e.Packed, e.Ordered)
}

func (e *UnderpackedError) Unwrap() error {
	return ErrUnderpacked
}

// OverpackedError indicates a completion attempt with a line packed over.
// The assign/set guards should make this unreachable; completion re-checks
// anyway so a bad restore can never be sealed into a complete pack.
type OverpackedError struct {
	ProductCode string
	Packed      int
	Ordered     int
}

func NewOverpackedError(productCode string, packed, ordered int) *OverpackedError {
	return &OverpackedError{ProductCode: productCode, Packed: packed, Ordered: ordered}
}

func (e *OverpackedError) Error() string {
	return fmt.Sprintf("%s: %s (%d/%d)", ErrOverpacked, e.ProductCode, e.Packed, e.Ordered)
}

func (e *OverpackedError) Unwrap() error {
	return ErrOverpacked
}

// UnweighedBoxError indicates a completion attempt while a box has no weight.
type UnweighedBoxError struct {
	BoxNo int
}

func NewUnweighedBoxError(boxNo int) *UnweighedBoxError {
	return &UnweighedBoxError{BoxNo: boxNo}
}

func (e *UnweighedBoxError) Error() string {
	return fmt.Sprintf("%s: Box %d", ErrUnweighedBox, e.BoxNo)
}

func (e *UnweighedBoxError) Unwrap() error {
	return ErrUnweighedBox
}

// DuplicateOffender describes one line that prevents a box duplication.
// PairedWith is empty for quantity offenses; Needed and Remaining are zero
// for pair-rule offenses.
type DuplicateOffender struct {
	ProductCode string
	Needed      int
	Remaining   int
	PairedWith  string
}

func (o DuplicateOffender) String() string {
	if o.PairedWith != "" {
		return fmt.Sprintf("%s already paired with %s", o.ProductCode, o.PairedWith)
	}
	return fmt.Sprintf("%s needs %d, remaining %d", o.ProductCode, o.Needed, o.Remaining)
}

// DuplicateBlockedError indicates a duplicate-box attempt that would overpack
// or violate the pair rule. It carries every offending line so the caller can
// show the full list; nothing is persisted.
type DuplicateBlockedError struct {
	Offenders []DuplicateOffender
}

func NewDuplicateBlockedError(offenders []DuplicateOffender) *DuplicateBlockedError {
	return &DuplicateBlockedError{Offenders: offenders}
}

func (e *DuplicateBlockedError) Error() string {
	parts := make([]string, 0, len(e.Offenders))
	for _, o := range e.Offenders {
		parts = append(parts, o.String())
	}
	return fmt.Sprintf("%s: %s", ErrDuplicateBlocked, strings.Join(parts, "; "))
}

func (e *DuplicateBlockedError) Unwrap() error {
	return ErrDuplicateBlocked
}
