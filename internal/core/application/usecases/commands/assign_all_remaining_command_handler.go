package commands

import (
	"context"
)

// AssignAllRemainingCommandHandler handles the bulk form of assignment: the
// line's full remaining quantity lands in one box or nothing is changed. It
// reuses the same validation path as single-unit assignment.
type AssignAllRemainingCommandHandler struct {
	uowFactory PackOrderUoWFactory
}

// NewAssignAllRemainingCommandHandler creates a handler for bulk assignment.
func NewAssignAllRemainingCommandHandler(uowFactory PackOrderUoWFactory) AssignAllRemainingCommandHandler {
	return AssignAllRemainingCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assign-all-remaining command.
func (h *AssignAllRemainingCommandHandler) Handle(ctx context.Context, cmd AssignAllRemainingCommand) error {
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

	if _, err := p.AssignAllRemaining(o, cmd.BoxID(), cmd.OrderLineID()); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
