package commands_test

import (
	"context"
	"testing"

	"packing/internal/core/application/usecases/commands"
	"packing/internal/core/domain/model/carton"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPackRepository struct{ mock.Mock }

func (m *MockPackRepository) Add(ctx context.Context, p *pack.Pack) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackRepository) Update(ctx context.Context, p *pack.Pack) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackRepository) Get(ctx context.Context, id kernel.UUID) (*pack.Pack, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pack.Pack), args.Error(1)
}

func (m *MockPackRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*pack.Pack, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*pack.Pack), args.Error(1)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*order.Order, error) {
	args := m.Called(ctx, orderNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockCartonRepository struct{ mock.Mock }

func (m *MockCartonRepository) Get(ctx context.Context, id kernel.UUID) (*carton.Carton, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*carton.Carton), args.Error(1)
}

func (m *MockCartonRepository) GetAllActive(ctx context.Context) ([]*carton.Carton, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*carton.Carton), args.Error(1)
}

type MockOrderSource struct{ mock.Mock }

func (m *MockOrderSource) FetchOrder(
	ctx context.Context,
	orderNo string,
) (ports.OrderSourceHeader, []ports.OrderSourceLine, error) {
	args := m.Called(ctx, orderNo)
	var lines []ports.OrderSourceLine
	if args.Get(1) != nil {
		lines = args.Get(1).([]ports.OrderSourceLine)
	}
	return args.Get(0).(ports.OrderSourceHeader), lines, args.Error(2)
}

// MockUoW implements every unit-of-work flavor the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PackRepository() ports.PackRepository {
	args := m.Called()
	return args.Get(0).(ports.PackRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CartonRepository() ports.CartonRepository {
	args := m.Called()
	return args.Get(0).(ports.CartonRepository)
}

type MockPackUoWFactory struct{ mock.Mock }

func (m *MockPackUoWFactory) Create() commands.PackUoW {
	args := m.Called()
	return args.Get(0).(commands.PackUoW)
}

type MockPackOrderUoWFactory struct{ mock.Mock }

func (m *MockPackOrderUoWFactory) Create() commands.PackOrderUoW {
	args := m.Called()
	return args.Get(0).(commands.PackOrderUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// Test fixtures shared across handler tests.

func testDimension(t *testing.T, inches float64) kernel.Dimension {
	t.Helper()
	d, err := kernel.NewDimension(inches)
	require.NoError(t, err)
	return d
}

func testOrderWithLine(t *testing.T, productCode string, qtyOrdered int) *order.Order {
	t.Helper()
	line, err := order.NewOrderLine(
		kernel.NewUUID(), productCode,
		testDimension(t, 24), testDimension(t, 36), "", qtyOrdered)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), "SO-10342", "Hillside Gallery", "", nil, "",
		[]*order.OrderLine{line})
	require.NoError(t, err)
	return o
}

func testPackWithBox(t *testing.T, o *order.Order) (*pack.Pack, *pack.Box) {
	t.Helper()
	p, err := pack.NewPack(kernel.NewUUID(), o.ID(), "sam")
	require.NoError(t, err)

	box, err := p.AddCustomBox(
		testDimension(t, 12), testDimension(t, 10), testDimension(t, 8), 0)
	require.NoError(t, err)
	return p, box
}
