package commands_test

import (
	"testing"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/pack"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCompletePackCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	o := testOrderWithLine(t, "FRM-A", 2)
	p, box := testPackWithBox(t, o)
	lineID := o.Lines()[0].ID()
	require.NoError(t, p.AssignOne(o, box.ID(), lineID))
	require.NoError(t, p.AssignOne(o, box.ID(), lineID))
	w, err := kernel.NewWeight(12.5)
	require.NoError(t, err)
	require.NoError(t, p.SetBoxWeight(box.ID(), &w))

	cmd, err := commands.NewCompletePackCommand(p.ID())
	require.NoError(t, err)

	packRepo := new(MockPackRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackRepository").Return(packRepo).Once(),
		packRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		packRepo.On("Update", ctx, mock.AnythingOfType("*pack.Pack")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompletePackCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, pack.Complete, p.Status())
	uow.AssertExpectations(t)
}

func TestCompletePackCommandHandler_Handle_Underpacked(t *testing.T) {
	ctx := t.Context()

	o := testOrderWithLine(t, "FRM-A", 2)
	p, box := testPackWithBox(t, o)
	require.NoError(t, p.AssignOne(o, box.ID(), o.Lines()[0].ID()))

	cmd, err := commands.NewCompletePackCommand(p.ID())
	require.NoError(t, err)

	packRepo := new(MockPackRepository)
	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackRepository").Return(packRepo).Once(),
		packRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewCompletePackCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, pack.ErrUnderpacked)
	assert.Equal(t, pack.InProgress, p.Status())
	packRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
