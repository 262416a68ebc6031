package commands

import (
	"context"
)

// RemoveBoxCommandHandler handles the business logic for deleting a box.
// Only empty boxes can be deleted; pair guards recorded against the box are
// released as part of the same transaction.
type RemoveBoxCommandHandler struct {
	uowFactory PackUoWFactory
}

// NewRemoveBoxCommandHandler creates a handler for box deletion operations.
func NewRemoveBoxCommandHandler(uowFactory PackUoWFactory) RemoveBoxCommandHandler {
	return RemoveBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-box command.
func (h *RemoveBoxCommandHandler) Handle(ctx context.Context, cmd RemoveBoxCommand) error {
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

	if err := p.RemoveBox(cmd.BoxID()); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
