package commands

import (
	"context"
)

// RemoveItemCommandHandler handles the business logic for removing units of
// a line from a box.
type RemoveItemCommandHandler struct {
	uowFactory PackUoWFactory
}

// NewRemoveItemCommandHandler creates a handler for item removal operations.
func NewRemoveItemCommandHandler(uowFactory PackUoWFactory) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-item command.
func (h *RemoveItemCommandHandler) Handle(ctx context.Context, cmd RemoveItemCommand) error {
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

	if err := p.RemoveItem(cmd.BoxID(), cmd.OrderLineID(), cmd.Qty()); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
