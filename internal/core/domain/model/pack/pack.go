package pack

import (
	"errors"
	"time"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/pkg/errs"
	"packing/internal/pkg/guard"
)

// ErrPackIsNotConstructed is returned when a Pack was not created through the
// NewPack or RestorePack constructors.
var ErrPackIsNotConstructed = errors.New("Pack must be created via NewPack constructor")

// Pack is the packing session aggregate root for exactly one order. It owns
// the boxes, their items, and the pair guards, and is the only place state
// transitions happen. Every mutation validates against the order's frozen
// quantities before applying, so the aggregate can never hold an overpacked
// line or a twice-boxed pair.
//
// Mutations that take an *order.Order expect the snapshot the pack was
// started for; a mismatched order is rejected.
type Pack struct {
	id kernel.UUID

	// orderID references the order snapshot this session packs
	orderID kernel.UUID

	status Status

	// packedBy is the operator's display name; empty when unknown
	packedBy string

	createdAt time.Time

	// completedAt is set on completion and cleared on reopen
	completedAt *time.Time

	boxes []*Box

	// pairGuards is re-derived from box contents after every item mutation
	pairGuards []*PairGuard

	guard guard.ConstructorGuard
}

// NewPack starts a new in-progress packing session for an order.
func NewPack(id, orderID kernel.UUID, packedBy string) (*Pack, error) {
	pack := &Pack{
		status:    InProgress,
		packedBy:  packedBy,
		createdAt: time.Now().UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		pack.setID(id),
		pack.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return pack, nil
}

// RestorePack recreates a Pack from persistence with its boxes and guards.
func RestorePack(
	id, orderID kernel.UUID,
	status Status,
	packedBy string,
	createdAt time.Time,
	completedAt *time.Time,
	boxes []*Box,
	pairGuards []*PairGuard,
) (*Pack, error) {
	pack, err := NewPack(id, orderID, packedBy)
	if err != nil {
		return nil, err
	}

	if err := status.Validate(); err != nil {
		return nil, err
	}
	pack.status = status
	pack.createdAt = createdAt
	pack.completedAt = completedAt

	seen := make(map[int]struct{}, len(boxes))
	for _, box := range boxes {
		if err := box.Validate(); err != nil {
			return nil, err
		}
		if _, ok := seen[box.BoxNo()]; ok {
			return nil, errs.NewValueIsInvalidError("boxes: duplicate box number")
		}
		seen[box.BoxNo()] = struct{}{}
	}
	pack.boxes = boxes

	for _, g := range pairGuards {
		if err := g.Validate(); err != nil {
			return nil, err
		}
	}
	pack.pairGuards = pairGuards

	return pack, nil
}

// Validate ensures the pack was constructed through NewPack or RestorePack.
func (p *Pack) Validate() error {
	if p == nil {
		return ErrPackIsNotConstructed
	}
	return p.guard.Validate(ErrPackIsNotConstructed)
}

// IsEqual compares two packs by identifier.
func (p *Pack) IsEqual(other *Pack) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the aggregate identifier.
func (p *Pack) ID() kernel.UUID {
	return p.id
}

// OrderID returns the order this session packs.
func (p *Pack) OrderID() kernel.UUID {
	return p.orderID
}

// Status returns the current session status.
func (p *Pack) Status() Status {
	return p.status
}

// PackedBy returns the operator's display name; empty when unknown.
func (p *Pack) PackedBy() string {
	return p.packedBy
}

// CreatedAt returns when the session was started.
func (p *Pack) CreatedAt() time.Time {
	return p.createdAt
}

// CompletedAt returns when the session was completed, nil while in progress.
func (p *Pack) CompletedAt() *time.Time {
	return p.completedAt
}

// Boxes returns the session's boxes in creation order.
func (p *Pack) Boxes() []*Box {
	return p.boxes
}

// PairGuards returns the current pair guards.
func (p *Pack) PairGuards() []*PairGuard {
	return p.pairGuards
}

// Box returns the box with the given identifier, or an ObjectNotFoundError.
func (p *Pack) Box(boxID kernel.UUID) (*Box, error) {
	for _, box := range p.boxes {
		if box.ID().IsEqual(boxID) {
			return box, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("boxID", boxID)
}

// PackedQty returns the line's total packed quantity across all boxes.
func (p *Pack) PackedQty(orderLineID kernel.UUID) int {
	total := 0
	for _, box := range p.boxes {
		total += box.QtyOf(orderLineID)
	}
	return total
}

// AddBoxFromCarton adds an empty box with dimensions copied from the carton
// type. maxWeightLb overrides the carton's limit when positive; pass 0 to
// inherit it. Inactive cartons are rejected.
func (p *Pack) AddBoxFromCarton(c *carton.Carton, maxWeightLb int) (*Box, error) {
	if err := p.status.ValidateMutable(); err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if !c.IsActive() {
		return nil, errs.NewValueIsInvalidError("carton " + c.Name() + " is inactive")
	}

	if maxWeightLb <= 0 {
		maxWeightLb = c.MaxWeightLb()
	}

	cartonID := c.ID()
	box, err := NewBox(
		kernel.NewUUID(), p.nextBoxNo(), &cartonID,
		c.Length(), c.Width(), c.Height(), maxWeightLb,
	)
	if err != nil {
		return nil, err
	}

	p.boxes = append(p.boxes, box)
	return box, nil
}

// AddCustomBox adds an empty box with operator-entered dimensions.
// maxWeightLb defaults to DefaultMaxWeightLb when not positive.
func (p *Pack) AddCustomBox(length, width, height kernel.Dimension, maxWeightLb int) (*Box, error) {
	if err := p.status.ValidateMutable(); err != nil {
		return nil, err
	}

	if maxWeightLb <= 0 {
		maxWeightLb = DefaultMaxWeightLb
	}

	box, err := NewBox(kernel.NewUUID(), p.nextBoxNo(), nil, length, width, height, maxWeightLb)
	if err != nil {
		return nil, err
	}

	p.boxes = append(p.boxes, box)
	return box, nil
}

// RemoveBox deletes an empty box. A box still holding items is rejected with
// BoxNotEmptyError; guards recorded against the box are released.
func (p *Pack) RemoveBox(boxID kernel.UUID) error {
	if err := p.status.ValidateMutable(); err != nil {
		return err
	}

	box, err := p.Box(boxID)
	if err != nil {
		return err
	}
	if !box.IsEmpty() {
		return NewBoxNotEmptyError(box.BoxNo())
	}

	for i, b := range p.boxes {
		if b.ID().IsEqual(boxID) {
			p.boxes = append(p.boxes[:i], p.boxes[i+1:]...)
			break
		}
	}
	p.recomputePairGuards()
	return nil
}

// AssignOne adds one unit of an order line into a box. Checks remaining
// quantity and the pair rule before applying.
func (p *Pack) AssignOne(o *order.Order, boxID, orderLineID kernel.UUID) error {
	box, line, err := p.resolveMutation(o, boxID, orderLineID)
	if err != nil {
		return err
	}

	packed := p.PackedQty(orderLineID)
	if packed >= line.QtyOrdered() {
		return NewOverpackError(line.ProductCode(), packed+1, line.QtyOrdered())
	}

	if err := p.checkPairRule(o, box, orderLineID); err != nil {
		return err
	}

	if err := box.addQty(orderLineID, 1); err != nil {
		return err
	}
	p.recomputePairGuards()
	return nil
}

// SetQty sets the quantity of a line in a box to an explicit value, replacing
// any prior quantity for that (box, line) pair. Zero deletes the item. The
// line's total across all other boxes plus qty must not exceed the ordered
// quantity.
func (p *Pack) SetQty(o *order.Order, boxID, orderLineID kernel.UUID, qty int) error {
	if qty < 0 {
		return errs.NewValueIsInvalidError("qty cannot be negative")
	}

	box, line, err := p.resolveMutation(o, boxID, orderLineID)
	if err != nil {
		return err
	}

	packedElsewhere := p.PackedQty(orderLineID) - box.QtyOf(orderLineID)
	if packedElsewhere+qty > line.QtyOrdered() {
		return NewOverpackError(line.ProductCode(), packedElsewhere+qty, line.QtyOrdered())
	}

	if qty > 0 {
		if err := p.checkPairRule(o, box, orderLineID); err != nil {
			return err
		}
	}

	if err := box.replaceQty(orderLineID, qty); err != nil {
		return err
	}
	p.recomputePairGuards()
	return nil
}

// RemoveItem decrements a line's quantity in a box by qty, deleting the item
// row when it reaches zero or below.
func (p *Pack) RemoveItem(boxID, orderLineID kernel.UUID, qty int) error {
	if err := p.status.ValidateMutable(); err != nil {
		return err
	}
	if qty <= 0 {
		return errs.NewValueIsInvalidError("qty must be positive")
	}

	box, err := p.Box(boxID)
	if err != nil {
		return err
	}

	if err := box.removeQty(orderLineID, qty); err != nil {
		return err
	}
	p.recomputePairGuards()
	return nil
}

// SetBoxWeight records the box's entered weight; nil clears it so the box
// becomes unweighed again. The ceiling-rounded effective weight must not
// exceed the box's limit.
func (p *Pack) SetBoxWeight(boxID kernel.UUID, weight *kernel.Weight) error {
	if err := p.status.ValidateMutable(); err != nil {
		return err
	}

	box, err := p.Box(boxID)
	if err != nil {
		return err
	}
	return box.setWeight(weight)
}

// DuplicateBox creates a new box with the source's dimensions and settings
// and copies every item, validating remaining quantity and the pair rule
// against current state. When any item cannot be copied the whole operation
// fails with DuplicateBlockedError listing all offenders and nothing is
// changed.
func (p *Pack) DuplicateBox(o *order.Order, sourceBoxID kernel.UUID) (*Box, error) {
	if err := p.status.ValidateMutable(); err != nil {
		return nil, err
	}
	if err := p.checkOrder(o); err != nil {
		return nil, err
	}

	source, err := p.Box(sourceBoxID)
	if err != nil {
		return nil, err
	}

	var offenders []DuplicateOffender

	for _, item := range source.Items() {
		line, err := o.Line(item.OrderLineID())
		if err != nil {
			return nil, err
		}
		remaining := line.QtyOrdered() - p.PackedQty(item.OrderLineID())
		if item.Qty() > remaining {
			offenders = append(offenders, DuplicateOffender{
				ProductCode: line.ProductCode(),
				Needed:      item.Qty(),
				Remaining:   max(remaining, 0),
			})
		}
	}

	// Any pair in the source box is already guarded to it, so the copy would
	// co-box that pair a second time.
	lineIDs := source.DistinctLineIDs()
	for i := 0; i < len(lineIDs); i++ {
		for j := i + 1; j < len(lineIDs); j++ {
			offenders = append(offenders, DuplicateOffender{
				ProductCode: p.productCodeOf(o, lineIDs[i]),
				PairedWith:  p.productCodeOf(o, lineIDs[j]),
			})
		}
	}

	if len(offenders) > 0 {
		return nil, NewDuplicateBlockedError(offenders)
	}

	var cartonID *kernel.UUID
	if source.CartonID() != nil {
		id := *source.CartonID()
		cartonID = &id
	}

	box, err := NewBox(
		kernel.NewUUID(), p.nextBoxNo(), cartonID,
		source.Length(), source.Width(), source.Height(), source.MaxWeightLb(),
	)
	if err != nil {
		return nil, err
	}

	for _, item := range source.Items() {
		if err := box.addQty(item.OrderLineID(), item.Qty()); err != nil {
			return nil, err
		}
	}

	p.boxes = append(p.boxes, box)
	p.recomputePairGuards()
	return box, nil
}

// AssignAllRemaining assigns a line's entire remaining quantity into one box,
// running the same overpack and pair-rule checks as AssignOne. Returns the
// number of units assigned.
func (p *Pack) AssignAllRemaining(o *order.Order, boxID, orderLineID kernel.UUID) (int, error) {
	box, line, err := p.resolveMutation(o, boxID, orderLineID)
	if err != nil {
		return 0, err
	}

	packed := p.PackedQty(orderLineID)
	remaining := line.QtyOrdered() - packed
	if remaining <= 0 {
		return 0, NewOverpackError(line.ProductCode(), packed+1, line.QtyOrdered())
	}

	if err := p.checkPairRule(o, box, orderLineID); err != nil {
		return 0, err
	}

	if err := box.addQty(orderLineID, remaining); err != nil {
		return 0, err
	}
	p.recomputePairGuards()
	return remaining, nil
}

// RemoveAllPacked removes a line entirely from a box regardless of quantity.
func (p *Pack) RemoveAllPacked(boxID, orderLineID kernel.UUID) error {
	if err := p.status.ValidateMutable(); err != nil {
		return err
	}

	box, err := p.Box(boxID)
	if err != nil {
		return err
	}

	item := box.ItemFor(orderLineID)
	if item == nil {
		return NewItemNotInBoxError(box.BoxNo(), orderLineID)
	}
	return p.RemoveItem(boxID, orderLineID, item.Qty())
}

// Complete reconciles the session and marks it complete. Every order line
// must be packed to exactly its ordered quantity and every box must have a
// recorded weight.
func (p *Pack) Complete(o *order.Order) error {
	if err := p.checkOrder(o); err != nil {
		return err
	}

	for _, line := range o.Lines() {
		packed := p.PackedQty(line.ID())
		if packed < line.QtyOrdered() {
			return NewUnderpackedError(line.ProductCode(), packed, line.QtyOrdered())
		}
		if packed > line.QtyOrdered() {
			return NewOverpackedError(line.ProductCode(), packed, line.QtyOrdered())
		}
	}

	for _, box := range p.boxes {
		if box.Weight() == nil {
			return NewUnweighedBoxError(box.BoxNo())
		}
	}

	newStatus, err := p.status.Complete()
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	p.status = newStatus
	p.completedAt = &now
	return nil
}

// Reopen returns a completed session to in-progress, clearing the completion
// timestamp. Boxes and items are untouched.
func (p *Pack) Reopen() error {
	newStatus, err := p.status.Reopen()
	if err != nil {
		return err
	}

	p.status = newStatus
	p.completedAt = nil
	return nil
}

// resolveMutation runs the shared preconditions for item mutations: the pack
// is mutable, the order matches, the box belongs to the pack, and the line
// belongs to the order.
func (p *Pack) resolveMutation(
	o *order.Order,
	boxID, orderLineID kernel.UUID,
) (*Box, *order.OrderLine, error) {
	if err := p.status.ValidateMutable(); err != nil {
		return nil, nil, err
	}
	if err := p.checkOrder(o); err != nil {
		return nil, nil, err
	}

	box, err := p.Box(boxID)
	if err != nil {
		return nil, nil, err
	}

	line, err := o.Line(orderLineID)
	if err != nil {
		return nil, nil, err
	}

	return box, line, nil
}

func (p *Pack) checkOrder(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if !o.ID().IsEqual(p.orderID) {
		return errs.NewValueIsInvalidError("order " + o.ID().String() + " does not match pack")
	}
	return nil
}

// checkPairRule rejects adding a line to a box when the line and any line
// already in the box are guarded to a different box.
func (p *Pack) checkPairRule(o *order.Order, box *Box, orderLineID kernel.UUID) error {
	for _, existingID := range box.DistinctLineIDs() {
		if existingID.IsEqual(orderLineID) {
			continue
		}
		for _, g := range p.pairGuards {
			if g.Matches(orderLineID, existingID) && !g.BoxID().IsEqual(box.ID()) {
				return NewPairRuleError(
					p.productCodeOf(o, orderLineID),
					p.productCodeOf(o, existingID),
					p.boxNoOf(g.BoxID()),
				)
			}
		}
	}
	return nil
}

// recomputePairGuards re-derives the guard set from current box contents.
// Guards whose pair still co-occurs in their recorded box are kept with
// their identity; vanished pairs are dropped and new co-occurrences get
// fresh guards.
func (p *Pack) recomputePairGuards() {
	type pairKey struct {
		low, high kernel.UUID
	}

	current := make(map[pairKey]kernel.UUID)
	for _, box := range p.boxes {
		lineIDs := box.DistinctLineIDs()
		for i := 0; i < len(lineIDs); i++ {
			for j := i + 1; j < len(lineIDs); j++ {
				low, high := normalizePair(lineIDs[i], lineIDs[j])
				current[pairKey{low: low, high: high}] = box.ID()
			}
		}
	}

	kept := make([]*PairGuard, 0, len(current))
	for _, g := range p.pairGuards {
		key := pairKey{low: g.LineLowID(), high: g.LineHighID()}
		if boxID, ok := current[key]; ok && boxID.IsEqual(g.BoxID()) {
			kept = append(kept, g)
			delete(current, key)
		}
	}

	for key, boxID := range current {
		g, err := NewPairGuard(kernel.NewUUID(), key.low, key.high, boxID)
		if err != nil {
			continue
		}
		kept = append(kept, g)
	}

	p.pairGuards = kept
}

func (p *Pack) nextBoxNo() int {
	maxNo := 0
	for _, box := range p.boxes {
		if box.BoxNo() > maxNo {
			maxNo = box.BoxNo()
		}
	}
	return maxNo + 1
}

// productCodeOf resolves a line's product code for error messages, falling
// back to the raw identifier when the line is unknown.
func (p *Pack) productCodeOf(o *order.Order, lineID kernel.UUID) string {
	if line, err := o.Line(lineID); err == nil {
		return line.ProductCode()
	}
	return lineID.String()
}

func (p *Pack) boxNoOf(boxID kernel.UUID) int {
	if box, err := p.Box(boxID); err == nil {
		return box.BoxNo()
	}
	return 0
}

func (p *Pack) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pack) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	p.orderID = orderID
	return nil
}
