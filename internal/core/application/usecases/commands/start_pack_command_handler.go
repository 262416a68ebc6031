package commands

import (
	"context"
	"errors"

	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/ports"
	"packing/internal/pkg/errs"
)

// StartPackCommandHandler handles the business logic for starting a packing
// session. Imports the order snapshot from the external order entry system on
// first sight, then reuses the order's existing pack or creates a new one in
// in-progress status.
type StartPackCommandHandler struct {
	uowFactory  PackOrderUoWFactory
	orderSource ports.OrderSource
}

// NewStartPackCommandHandler creates a handler for starting packing sessions.
func NewStartPackCommandHandler(
	uowFactory PackOrderUoWFactory,
	orderSource ports.OrderSource,
) StartPackCommandHandler {
	return StartPackCommandHandler{
		uowFactory:  uowFactory,
		orderSource: orderSource,
	}
}

// Handle processes the start-pack command and returns the pack's identifier.
// The whole import-and-start flow runs in one transaction so a failed import
// never leaves a partial order behind.
func (h *StartPackCommandHandler) Handle(ctx context.Context, cmd StartPackCommand) (kernel.UUID, error) {
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

	orderRepo := uow.OrderRepository()
	packRepo := uow.PackRepository()

	o, err := orderRepo.GetByOrderNo(ctx, cmd.OrderNo())
	if errors.Is(err, errs.ErrObjectNotFound) {
		o, err = h.importOrder(ctx, cmd.OrderNo(), orderRepo)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	p, err := packRepo.GetByOrderID(ctx, o.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		p, err = pack.NewPack(kernel.NewUUID(), o.ID(), cmd.PackedBy())
		if err != nil {
			return kernel.UUID{}, err
		}
		err = packRepo.Add(ctx, p)
	}
	if err != nil {
		return kernel.UUID{}, err
	}

	if err := uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return p.ID(), nil
}

// importOrder fetches the order from the external system, converts it into an
// order aggregate, and persists it.
func (h *StartPackCommandHandler) importOrder(
	ctx context.Context,
	orderNo string,
	orderRepo ports.OrderRepository,
) (*order.Order, error) {
	header, sourceLines, err := h.orderSource.FetchOrder(ctx, orderNo)
	if err != nil {
		return nil, err
	}

	lines := make([]*order.OrderLine, 0, len(sourceLines))
	for _, sl := range sourceLines {
		length, err := kernel.NewDimension(sl.LengthIn)
		if err != nil {
			return nil, err
		}
		height, err := kernel.NewDimension(sl.HeightIn)
		if err != nil {
			return nil, err
		}

		line, err := order.NewOrderLine(
			kernel.NewUUID(), sl.ProductCode, length, height, sl.Finish, sl.QtyOrdered)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	o, err := order.NewOrder(
		kernel.NewUUID(), header.OrderNo, header.CustomerName,
		header.ShipTo, header.DueDate, header.LeadTimePlan, lines,
	)
	if err != nil {
		return nil, err
	}

	if err := orderRepo.Add(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}
