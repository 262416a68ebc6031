package commands

import (
	"context"

	"packing/internal/core/domain/model/kernel"
)

// SetBoxWeightCommandHandler handles the business logic for recording a box
// weight. The ceiling-rounded effective weight is validated against the
// box's limit before persisting.
type SetBoxWeightCommandHandler struct {
	uowFactory PackUoWFactory
}

// NewSetBoxWeightCommandHandler creates a handler for box weight updates.
func NewSetBoxWeightCommandHandler(uowFactory PackUoWFactory) SetBoxWeightCommandHandler {
	return SetBoxWeightCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the set-box-weight command.
func (h *SetBoxWeightCommandHandler) Handle(ctx context.Context, cmd SetBoxWeightCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var weight *kernel.Weight
	if cmd.WeightLb() != nil {
		w, err := kernel.NewWeight(*cmd.WeightLb())
		if err != nil {
			return err
		}
		weight = &w
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

	if err := p.SetBoxWeight(cmd.BoxID(), weight); err != nil {
		return err
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
