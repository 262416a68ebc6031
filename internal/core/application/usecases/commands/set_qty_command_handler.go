package commands

import (
	"context"
)

// SetQtyCommandHandler handles the business logic for setting an explicit
// line quantity in a box. The line's total across all other boxes plus the
// new quantity is validated against the ordered quantity.
type SetQtyCommandHandler struct {
	uowFactory PackOrderUoWFactory
}

// NewSetQtyCommandHandler creates a handler for explicit quantity updates.
func NewSetQtyCommandHandler(uowFactory PackOrderUoWFactory) SetQtyCommandHandler {
	return SetQtyCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-qty command.
func (h *SetQtyCommandHandler) Handle(ctx context.Context, cmd SetQtyCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packRepo := uow.PackRepository()
	p, err := packRepo.Get(ctx, cmd.PackID())
	if err != nil {
		return err
	}

	o, err := uow.OrderRepository().Get(ctx, p.OrderID())
	if err != nil {
		return err
	}

	if err := p.SetQty(o, cmd.BoxID(), cmd.OrderLineID(), cmd.Qty()); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
