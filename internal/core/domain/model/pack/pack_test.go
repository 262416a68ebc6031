package pack_test

import (
	"testing"

	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dim(t *testing.T, inches float64) kernel.Dimension {
	t.Helper()
	d, err := kernel.NewDimension(inches)
	require.NoError(t, err)
	return d
}

func weight(t *testing.T, lb float64) *kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(lb)
	require.NoError(t, err)
	return &w
}

type lineSpec struct {
	productCode string
	qtyOrdered  int
}

func newTestOrder(t *testing.T, specs ...lineSpec) *order.Order {
	t.Helper()

	lines := make([]*order.OrderLine, 0, len(specs))
	for _, s := range specs {
		line, err := order.NewOrderLine(
			kernel.NewUUID(), s.productCode, dim(t, 24), dim(t, 36), "", s.qtyOrdered)
		require.NoError(t, err)
		lines = append(lines, line)
	}

	o, err := order.NewOrder(kernel.NewUUID(), "SO-10342", "Hillside Gallery", "", nil, "", lines)
	require.NoError(t, err)
	return o
}

func lineID(t *testing.T, o *order.Order, productCode string) kernel.UUID {
	t.Helper()
	for _, line := range o.Lines() {
		if line.ProductCode() == productCode {
			return line.ID()
		}
	}
	t.Fatalf("no line with product code %s", productCode)
	return kernel.UUID{}
}

func newTestPack(t *testing.T, o *order.Order) *pack.Pack {
	t.Helper()
	p, err := pack.NewPack(kernel.NewUUID(), o.ID(), "sam")
	require.NoError(t, err)
	return p
}

func addBox(t *testing.T, p *pack.Pack) *pack.Box {
	t.Helper()
	box, err := p.AddCustomBox(dim(t, 12), dim(t, 10), dim(t, 8), 0)
	require.NoError(t, err)
	return box
}

func assignN(t *testing.T, p *pack.Pack, o *order.Order, boxID kernel.UUID, productCode string, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		require.NoError(t, p.AssignOne(o, boxID, lineID(t, o, productCode)))
	}
}

func TestPack_FullCycle(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10}, lineSpec{"MAT-B", 5})
	p := newTestPack(t, o)
	box := addBox(t, p)

	assignN(t, p, o, box.ID(), "FRM-A", 10)
	assignN(t, p, o, box.ID(), "MAT-B", 5)
	require.NoError(t, p.SetBoxWeight(box.ID(), weight(t, 25)))

	require.NoError(t, p.Complete(o))
	assert.Equal(t, pack.Complete, p.Status())
	require.NotNil(t, p.CompletedAt())
}

func TestPack_Complete_Underpacked(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10}, lineSpec{"MAT-B", 5})
	p := newTestPack(t, o)
	box := addBox(t, p)

	assignN(t, p, o, box.ID(), "FRM-A", 8)
	assignN(t, p, o, box.ID(), "MAT-B", 5)
	require.NoError(t, p.SetBoxWeight(box.ID(), weight(t, 25)))

	err := p.Complete(o)
	require.ErrorIs(t, err, pack.ErrUnderpacked)

	var underpacked *pack.UnderpackedError
	require.ErrorAs(t, err, &underpacked)
	assert.Equal(t, "FRM-A", underpacked.ProductCode)
	assert.Equal(t, 8, underpacked.Packed)
	assert.Equal(t, 10, underpacked.Ordered)
	assert.Equal(t, pack.InProgress, p.Status())
}

func TestPack_Complete_UnweighedBox(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 2})
	p := newTestPack(t, o)
	box := addBox(t, p)
	assignN(t, p, o, box.ID(), "FRM-A", 2)

	err := p.Complete(o)
	require.ErrorIs(t, err, pack.ErrUnweighedBox)

	var unweighed *pack.UnweighedBoxError
	require.ErrorAs(t, err, &unweighed)
	assert.Equal(t, box.BoxNo(), unweighed.BoxNo)
}

func TestPack_PairRule(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10}, lineSpec{"MAT-B", 5})
	p := newTestPack(t, o)
	box1 := addBox(t, p)
	box2 := addBox(t, p)

	// Pair A-B forms in box 1.
	assignN(t, p, o, box1.ID(), "FRM-A", 1)
	assignN(t, p, o, box1.ID(), "MAT-B", 1)
	assert.Len(t, p.PairGuards(), 1)

	// A alone in box 2 is fine, but B would re-pair A-B in a second box.
	assignN(t, p, o, box2.ID(), "FRM-A", 1)
	err := p.AssignOne(o, box2.ID(), lineID(t, o, "MAT-B"))
	require.ErrorIs(t, err, pack.ErrPairRuleViolation)

	var pairErr *pack.PairRuleError
	require.ErrorAs(t, err, &pairErr)
	assert.Equal(t, "MAT-B", pairErr.ProductCode)
	assert.Equal(t, "FRM-A", pairErr.PairedWith)
	assert.Equal(t, box1.BoxNo(), pairErr.BoxNo)

	// Re-adding within the guarded box stays allowed.
	require.NoError(t, p.AssignOne(o, box1.ID(), lineID(t, o, "MAT-B")))
}

func TestPack_PairRule_ReleasedWhenCoOccurrenceUndone(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10}, lineSpec{"MAT-B", 5})
	p := newTestPack(t, o)
	box1 := addBox(t, p)
	box2 := addBox(t, p)

	assignN(t, p, o, box1.ID(), "FRM-A", 1)
	assignN(t, p, o, box1.ID(), "MAT-B", 1)
	require.Len(t, p.PairGuards(), 1)

	// Undo the co-occurrence in box 1; the pair becomes free again.
	require.NoError(t, p.RemoveItem(box1.ID(), lineID(t, o, "MAT-B"), 1))
	assert.Empty(t, p.PairGuards())

	assignN(t, p, o, box2.ID(), "FRM-A", 1)
	require.NoError(t, p.AssignOne(o, box2.ID(), lineID(t, o, "MAT-B")))
	assert.Len(t, p.PairGuards(), 1)
}

func TestPack_AssignOne_Overpack(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)

	assignN(t, p, o, box.ID(), "FRM-A", 10)

	err := p.AssignOne(o, box.ID(), lineID(t, o, "FRM-A"))
	require.ErrorIs(t, err, pack.ErrOverpack)

	var overpack *pack.OverpackError
	require.ErrorAs(t, err, &overpack)
	assert.Equal(t, "FRM-A", overpack.ProductCode)
	assert.Equal(t, 11, overpack.Requested)
	assert.Equal(t, 10, overpack.Ordered)
	assert.Equal(t, 10, p.PackedQty(lineID(t, o, "FRM-A")))
}

func TestPack_SetQty(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)
	aID := lineID(t, o, "FRM-A")

	require.NoError(t, p.SetQty(o, box.ID(), aID, 7))
	assert.Equal(t, 7, box.QtyOf(aID))

	// Setting the same value twice is idempotent.
	require.NoError(t, p.SetQty(o, box.ID(), aID, 7))
	assert.Equal(t, 7, box.QtyOf(aID))

	// Replacement semantics: 7 -> 10 is fine even though +10 would overpack.
	require.NoError(t, p.SetQty(o, box.ID(), aID, 10))
	assert.Equal(t, 10, box.QtyOf(aID))

	err := p.SetQty(o, box.ID(), aID, 11)
	require.ErrorIs(t, err, pack.ErrOverpack)

	// Zero deletes the item row.
	require.NoError(t, p.SetQty(o, box.ID(), aID, 0))
	assert.True(t, box.IsEmpty())

	require.Error(t, p.SetQty(o, box.ID(), aID, -1))
}

func TestPack_SetQty_CountsOtherBoxes(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box1 := addBox(t, p)
	box2 := addBox(t, p)
	aID := lineID(t, o, "FRM-A")

	require.NoError(t, p.SetQty(o, box1.ID(), aID, 6))

	err := p.SetQty(o, box2.ID(), aID, 5)
	require.ErrorIs(t, err, pack.ErrOverpack)

	var overpack *pack.OverpackError
	require.ErrorAs(t, err, &overpack)
	assert.Equal(t, 11, overpack.Requested)

	require.NoError(t, p.SetQty(o, box2.ID(), aID, 4))
	assert.Equal(t, 10, p.PackedQty(aID))
}

func TestPack_RemoveItem(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)
	aID := lineID(t, o, "FRM-A")

	assignN(t, p, o, box.ID(), "FRM-A", 3)

	require.NoError(t, p.RemoveItem(box.ID(), aID, 1))
	assert.Equal(t, 2, box.QtyOf(aID))

	// Removing more than present clamps at zero and deletes the row.
	require.NoError(t, p.RemoveItem(box.ID(), aID, 5))
	assert.True(t, box.IsEmpty())

	err := p.RemoveItem(box.ID(), aID, 1)
	require.ErrorIs(t, err, pack.ErrItemNotInBox)
}

func TestPack_RemoveAllPacked(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)
	aID := lineID(t, o, "FRM-A")

	assignN(t, p, o, box.ID(), "FRM-A", 7)

	require.NoError(t, p.RemoveAllPacked(box.ID(), aID))
	assert.True(t, box.IsEmpty())

	require.ErrorIs(t, p.RemoveAllPacked(box.ID(), aID), pack.ErrItemNotInBox)
}

func TestPack_AssignAllRemaining(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box1 := addBox(t, p)
	box2 := addBox(t, p)
	aID := lineID(t, o, "FRM-A")

	assignN(t, p, o, box1.ID(), "FRM-A", 4)

	assigned, err := p.AssignAllRemaining(o, box2.ID(), aID)
	require.NoError(t, err)
	assert.Equal(t, 6, assigned)
	assert.Equal(t, 10, p.PackedQty(aID))

	_, err = p.AssignAllRemaining(o, box2.ID(), aID)
	require.ErrorIs(t, err, pack.ErrOverpack)
}

func TestPack_DuplicateBox(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)

	assignN(t, p, o, box.ID(), "FRM-A", 2)

	copied, err := p.DuplicateBox(o, box.ID())
	require.NoError(t, err)
	assert.Equal(t, 2, copied.BoxNo())
	assert.Equal(t, 2, copied.QtyOf(lineID(t, o, "FRM-A")))
	assert.True(t, copied.Length().IsEqual(box.Length()))
	assert.Nil(t, copied.Weight())
	assert.Equal(t, 4, p.PackedQty(lineID(t, o, "FRM-A")))
}

func TestPack_DuplicateBox_BlockedByRemaining(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)

	assignN(t, p, o, box.ID(), "FRM-A", 10)

	_, err := p.DuplicateBox(o, box.ID())
	require.ErrorIs(t, err, pack.ErrDuplicateBlocked)

	var blocked *pack.DuplicateBlockedError
	require.ErrorAs(t, err, &blocked)
	require.Len(t, blocked.Offenders, 1)
	assert.Equal(t, "FRM-A", blocked.Offenders[0].ProductCode)
	assert.Equal(t, 10, blocked.Offenders[0].Needed)
	assert.Equal(t, 0, blocked.Offenders[0].Remaining)

	// All-or-nothing: no box was added.
	assert.Len(t, p.Boxes(), 1)
	assert.Equal(t, 10, p.PackedQty(lineID(t, o, "FRM-A")))
}

func TestPack_DuplicateBox_BlockedByPairRule(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10}, lineSpec{"MAT-B", 5})
	p := newTestPack(t, o)
	box := addBox(t, p)

	assignN(t, p, o, box.ID(), "FRM-A", 1)
	assignN(t, p, o, box.ID(), "MAT-B", 1)

	_, err := p.DuplicateBox(o, box.ID())
	require.ErrorIs(t, err, pack.ErrDuplicateBlocked)

	var blocked *pack.DuplicateBlockedError
	require.ErrorAs(t, err, &blocked)
	require.Len(t, blocked.Offenders, 1)
	assert.NotEmpty(t, blocked.Offenders[0].PairedWith)
	assert.Len(t, p.Boxes(), 1)
}

func TestPack_RemoveBox(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)
	aID := lineID(t, o, "FRM-A")

	assignN(t, p, o, box.ID(), "FRM-A", 1)

	err := p.RemoveBox(box.ID())
	require.ErrorIs(t, err, pack.ErrBoxNotEmpty)

	require.NoError(t, p.RemoveItem(box.ID(), aID, 1))
	require.NoError(t, p.RemoveBox(box.ID()))
	assert.Empty(t, p.Boxes())

	require.ErrorIs(t, p.RemoveBox(box.ID()), errs.ErrObjectNotFound)
}

func TestPack_BoxNumbering(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)

	box1 := addBox(t, p)
	box2 := addBox(t, p)
	assert.Equal(t, 1, box1.BoxNo())
	assert.Equal(t, 2, box2.BoxNo())

	// Numbers keep climbing past removed boxes.
	require.NoError(t, p.RemoveBox(box2.ID()))
	box3 := addBox(t, p)
	assert.Equal(t, 3, box3.BoxNo())
}

func TestPack_AddBoxFromCarton(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)

	active, err := carton.NewCarton(
		kernel.NewUUID(), "Medium Art Box", dim(t, 30), dim(t, 6), dim(t, 40), 50, true)
	require.NoError(t, err)

	box, err := p.AddBoxFromCarton(active, 0)
	require.NoError(t, err)
	require.NotNil(t, box.CartonID())
	assert.True(t, box.CartonID().IsEqual(active.ID()))
	assert.Equal(t, 50, box.MaxWeightLb())
	assert.True(t, box.Length().IsEqual(active.Length()))

	// An explicit override takes precedence over the carton limit.
	box2, err := p.AddBoxFromCarton(active, 35)
	require.NoError(t, err)
	assert.Equal(t, 35, box2.MaxWeightLb())

	inactive, err := carton.NewCarton(
		kernel.NewUUID(), "Retired Box", dim(t, 30), dim(t, 6), dim(t, 40), 50, false)
	require.NoError(t, err)

	_, err = p.AddBoxFromCarton(inactive, 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPack_SetBoxWeight(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p) // default limit 40 lb

	require.NoError(t, p.SetBoxWeight(box.ID(), weight(t, 39.5)))
	require.NotNil(t, box.Weight())
	assert.Equal(t, 40, box.Weight().Effective())

	// 40.2 lb rounds up to 41 effective, past the 40 lb limit.
	err := p.SetBoxWeight(box.ID(), weight(t, 40.2))
	require.ErrorIs(t, err, pack.ErrWeightLimitExceeded)

	var limitErr *pack.WeightLimitError
	require.ErrorAs(t, err, &limitErr)
	assert.Equal(t, 40.2, limitErr.EnteredLb)
	assert.Equal(t, 40, limitErr.LimitLb)

	// The previously recorded weight is untouched by the failed attempt.
	require.NotNil(t, box.Weight())
	assert.Equal(t, 39.5, box.Weight().Entered())

	// Null weight clears the box back to unweighed.
	require.NoError(t, p.SetBoxWeight(box.ID(), nil))
	assert.Nil(t, box.Weight())
}

func TestPack_ReopenCycle(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 1})
	p := newTestPack(t, o)
	box := addBox(t, p)

	assignN(t, p, o, box.ID(), "FRM-A", 1)
	require.NoError(t, p.SetBoxWeight(box.ID(), weight(t, 5)))

	require.ErrorIs(t, p.Reopen(), pack.ErrPackNotComplete)

	require.NoError(t, p.Complete(o))
	require.NotNil(t, p.CompletedAt())

	// Completed packs reject every mutation until reopened.
	require.ErrorIs(t, p.AssignOne(o, box.ID(), lineID(t, o, "FRM-A")), pack.ErrPackAlreadyComplete)
	require.ErrorIs(t, p.RemoveBox(box.ID()), pack.ErrPackAlreadyComplete)
	require.ErrorIs(t, p.SetBoxWeight(box.ID(), nil), pack.ErrPackAlreadyComplete)
	require.ErrorIs(t, p.Complete(o), pack.ErrPackAlreadyComplete)

	require.NoError(t, p.Reopen())
	assert.Equal(t, pack.InProgress, p.Status())
	assert.Nil(t, p.CompletedAt())
	assert.Len(t, p.Boxes(), 1)

	// Completing again with no intervening changes succeeds.
	require.NoError(t, p.Complete(o))
	assert.Equal(t, pack.Complete, p.Status())
}

func TestPack_RejectsForeignOrder(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	other := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)

	err := p.AssignOne(other, box.ID(), lineID(t, other, "FRM-A"))
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestRestorePack(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 10})
	p := newTestPack(t, o)
	box := addBox(t, p)
	assignN(t, p, o, box.ID(), "FRM-A", 3)

	restored, err := pack.RestorePack(
		p.ID(), p.OrderID(), p.Status(), p.PackedBy(),
		p.CreatedAt(), p.CompletedAt(), p.Boxes(), p.PairGuards(),
	)
	require.NoError(t, err)
	assert.True(t, restored.IsEqual(p))
	assert.Equal(t, 3, restored.PackedQty(lineID(t, o, "FRM-A")))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, "in_progress", pack.InProgress.String())
	assert.Equal(t, "complete", pack.Complete.String())
	assert.Equal(t, "unknown", pack.Unknown.String())

	s, err := pack.StatusFromString("complete")
	require.NoError(t, err)
	assert.Equal(t, pack.Complete, s)

	_, err = pack.StatusFromString("paused")
	require.Error(t, err)

	require.Error(t, pack.Unknown.Validate())
	require.NoError(t, pack.InProgress.Validate())
}

func TestBox_Label(t *testing.T) {
	o := newTestOrder(t, lineSpec{"FRM-A", 1})
	p := newTestPack(t, o)

	box, err := p.AddCustomBox(dim(t, 30), dim(t, 6.5), dim(t, 40), 0)
	require.NoError(t, err)

	assert.Equal(t, "Box 1 (30x6.5x40 in)", box.Label())
}
