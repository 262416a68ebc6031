package commands

import (
	"context"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"
)

// AddBoxCommandHandler handles the business logic for adding a box to a pack.
// Catalog boxes copy their dimensions and weight limit from the carton type;
// custom boxes use the operator-entered dimensions.
type AddBoxCommandHandler struct {
	uowFactory UoWFactory
}

// NewAddBoxCommandHandler creates a handler for box creation operations.
func NewAddBoxCommandHandler(uowFactory UoWFactory) AddBoxCommandHandler {
	return AddBoxCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-box command and returns the new box's identifier.
func (h *AddBoxCommandHandler) Handle(ctx context.Context, cmd AddBoxCommand) (kernel.UUID, error) {
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

	var box *pack.Box
	if cmd.CartonTypeID() != nil {
		c, err := uow.CartonRepository().Get(ctx, *cmd.CartonTypeID())
		if err != nil {
			return kernel.UUID{}, err
		}
		box, err = p.AddBoxFromCarton(c, cmd.MaxWeightLb())
		if err != nil {
			return kernel.UUID{}, err
		}
	} else {
		length, err := kernel.NewDimension(*cmd.LengthIn())
		if err != nil {
			return kernel.UUID{}, err
		}
		width, err := kernel.NewDimension(*cmd.WidthIn())
		if err != nil {
			return kernel.UUID{}, err
		}
		height, err := kernel.NewDimension(*cmd.HeightIn())
		if err != nil {
			return kernel.UUID{}, err
		}
		box, err = p.AddCustomBox(length, width, height, cmd.MaxWeightLb())
		if err != nil {
			return kernel.UUID{}, err
		}
	}

	if err := packRepo.Update(ctx, p); err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return box.ID(), nil
}
