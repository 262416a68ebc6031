package commands

import (
	"context"
)

// ReopenPackCommandHandler handles the business logic for reopening a
// completed packing session.
type ReopenPackCommandHandler struct {
	uowFactory PackUoWFactory
}

// NewReopenPackCommandHandler creates a handler for pack reopening.
func NewReopenPackCommandHandler(uowFactory PackUoWFactory) ReopenPackCommandHandler {
	return ReopenPackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reopen-pack command.
func (h *ReopenPackCommandHandler) Handle(ctx context.Context, cmd ReopenPackCommand) error {
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

	if err := p.Reopen(); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
