package commands

import (
	"context"

	"packing/internal/core/domain/model/kernel"
)

// DuplicateBoxCommandHandler handles the business logic for duplicating a
// box. The new box and its items are committed together or not at all.
type DuplicateBoxCommandHandler struct {
	uowFactory PackOrderUoWFactory
}

// NewDuplicateBoxCommandHandler creates a handler for box duplication.
func NewDuplicateBoxCommandHandler(uowFactory PackOrderUoWFactory) DuplicateBoxCommandHandler {
	return DuplicateBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the duplicate-box command and returns the new box's
// identifier.
func (h *DuplicateBoxCommandHandler) Handle(ctx context.Context, cmd DuplicateBoxCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	packRepo := uow.PackRepository()
	p, err := packRepo.Get(ctx, cmd.PackID())
	if err != nil {
		return kernel.UUID{}, err
	}

	o, err := uow.OrderRepository().Get(ctx, p.OrderID())
	if err != nil {
		return kernel.UUID{}, err
	}

	box, err := p.DuplicateBox(o, cmd.SourceBoxID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return box.ID(), nil
}
