package ports

import (
	"context"
	"time"
)

// OrderSourceHeader is the raw order header as returned by the external
// order entry system, before it is turned into an order aggregate.
type OrderSourceHeader struct {
	OrderNo      string
	CustomerName string
	ShipTo       string
	DueDate      *time.Time
	LeadTimePlan string
}

// OrderSourceLine is one raw order line from the external system. Quantities
// are normalized to integers and dimensions to at most three decimals before
// they reach the core.
type OrderSourceLine struct {
	ProductCode string
	LengthIn    float64
	HeightIn    float64
	QtyOrdered  int
	Finish      string
}

// OrderSource supplies order headers and lines from the external order entry
// system. Calls are synchronous and idempotent; the same order number always
// yields the same snapshot. Returns an ObjectNotFoundError when the external
// system has no such order.
type OrderSource interface {
	FetchOrder(ctx context.Context, orderNo string) (OrderSourceHeader, []OrderSourceLine, error)
}
