package commands

import (
	"context"
)

// AssignOneCommandHandler handles the business logic for assigning one unit
// of an order line into a box. Remaining quantity and the pair rule are
// validated inside the pack aggregate before anything is persisted.
type AssignOneCommandHandler struct {
	uowFactory PackOrderUoWFactory
}

// NewAssignOneCommandHandler creates a handler for single-unit assignment.
func NewAssignOneCommandHandler(uowFactory PackOrderUoWFactory) AssignOneCommandHandler {
	return AssignOneCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assign-one command.
func (h *AssignOneCommandHandler) Handle(ctx context.Context, cmd AssignOneCommand) error {
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

	if err := p.AssignOne(o, cmd.BoxID(), cmd.OrderLineID()); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
