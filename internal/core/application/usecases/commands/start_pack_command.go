package commands

import (
	"errors"

	"packing/internal/pkg/guard"
)

var (
	ErrStartPackCommandIsNotConstructed = errors.New(
		"StartPackCommand must be created via NewStartPackCommand constructor",
	)
	ErrOrderNoIsRequired = errors.New("order number is required")
)

// StartPackCommand represents a request to start (or resume) a packing
// session for an order number. The order is imported from the external order
// entry system the first time it is seen.
type StartPackCommand struct { //nolint:recvcheck //using for validation
	orderNo  string
	packedBy string

	guard guard.ConstructorGuard
}

// NewStartPackCommand creates a command to start packing an order.
// The order number must be non-empty; packedBy may be empty.
func NewStartPackCommand(orderNo, packedBy string) (StartPackCommand, error) {
	cmd := StartPackCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setOrderNo(orderNo); err != nil {
		return StartPackCommand{}, err
	}

	cmd.packedBy = packedBy
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c StartPackCommand) Validate() error {
	return c.guard.Validate(ErrStartPackCommandIsNotConstructed)
}

// OrderNo returns the order number to pack.
func (c StartPackCommand) OrderNo() string {
	return c.orderNo
}

// PackedBy returns the operator's display name.
func (c StartPackCommand) PackedBy() string {
	return c.packedBy
}

func (c *StartPackCommand) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return ErrOrderNoIsRequired
	}

	c.orderNo = orderNo
	return nil
}
