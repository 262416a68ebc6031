package commands

import (
	"context"
)

// CompletePackCommandHandler handles the business logic for completing a
// packing session. Every order line must be packed to exactly its ordered
// quantity and every box must be weighed before the status flips.
type CompletePackCommandHandler struct {
	uowFactory PackOrderUoWFactory
}

// NewCompletePackCommandHandler creates a handler for pack completion.
func NewCompletePackCommandHandler(uowFactory PackOrderUoWFactory) CompletePackCommandHandler {
	return CompletePackCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complete-pack command.
func (h *CompletePackCommandHandler) Handle(ctx context.Context, cmd CompletePackCommand) error {
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

	if err := p.Complete(o); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
