package commands_test

import (
	"testing"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAddBoxCommandHandler_Handle_CartonBox(t *testing.T) {
	ctx := t.Context()

	o := testOrderWithLine(t, "FRM-A", 10)
	p, _ := testPackWithBox(t, o)

	ct, err := carton.NewCarton(
		kernel.NewUUID(), "Medium Art Box",
		testDimension(t, 30), testDimension(t, 6), testDimension(t, 40), 50, true)
	require.NoError(t, err)

	cartonID := ct.ID()
	cmd, err := commands.NewAddBoxCommand(p.ID(), &cartonID, nil, nil, nil, 0)
	require.NoError(t, err)

	packRepo := new(MockPackRepository)
	cartonRepo := new(MockCartonRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackRepository").Return(packRepo).Once(),
		packRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		uow.On("CartonRepository").Return(cartonRepo).Once(),
		cartonRepo.On("Get", ctx, cartonID).Return(ct, nil).Once(),
		packRepo.On("Update", ctx, mock.AnythingOfType("*pack.Pack")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddBoxCommandHandler(factory)
	boxID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Len(t, p.Boxes(), 2)

	added, err := p.Box(boxID)
	require.NoError(t, err)
	assert.Equal(t, 2, added.BoxNo())
	assert.Equal(t, 50, added.MaxWeightLb())
	uow.AssertExpectations(t)
}

func TestAddBoxCommandHandler_Handle_CustomBox(t *testing.T) {
	ctx := t.Context()

	o := testOrderWithLine(t, "FRM-A", 10)
	p, _ := testPackWithBox(t, o)

	length, width, height := 30.0, 6.0, 40.0
	cmd, err := commands.NewAddBoxCommand(p.ID(), nil, &length, &width, &height, 0)
	require.NoError(t, err)

	packRepo := new(MockPackRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PackRepository").Return(packRepo).Once(),
		packRepo.On("Get", ctx, p.ID()).Return(p, nil).Once(),
		packRepo.On("Update", ctx, mock.AnythingOfType("*pack.Pack")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewAddBoxCommandHandler(factory)
	boxID, err := handler.Handle(ctx, cmd)

	require.NoError(t, err)
	added, err := p.Box(boxID)
	require.NoError(t, err)
	assert.Nil(t, added.CartonID())
	assert.Equal(t, 40, added.MaxWeightLb()) // default limit
	uow.AssertExpectations(t)
}
