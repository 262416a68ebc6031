package commands

import (
	"context"
)

// RemoveAllPackedCommandHandler handles the bulk form of removal: the line's
// entire quantity leaves the box in one step.
type RemoveAllPackedCommandHandler struct {
	uowFactory PackUoWFactory
}

// NewRemoveAllPackedCommandHandler creates a handler for bulk removal.
func NewRemoveAllPackedCommandHandler(uowFactory PackUoWFactory) RemoveAllPackedCommandHandler {
	return RemoveAllPackedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-all-packed command.
func (h *RemoveAllPackedCommandHandler) Handle(ctx context.Context, cmd RemoveAllPackedCommand) error {
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

	if err := p.RemoveAllPacked(cmd.BoxID(), cmd.OrderLineID()); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
