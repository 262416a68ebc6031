// Package pack contains the packing session aggregate and its validation
// rules. A Pack tracks the boxes an operator fills for one order: items are
// assigned against the order's frozen quantities, any two order lines may
// share a box in at most one box per pack, box weights are ceiling-rounded
// and checked against the box limit, and completion requires every line to
// be packed exactly and every box to be weighed. Completed packs can be
// reopened, which re-enables mutation without touching boxes or items.
package pack
