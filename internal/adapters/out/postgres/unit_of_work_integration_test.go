package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	postgresadapter "packing/internal/adapters/out/postgres"
	"packing/internal/adapters/out/postgres/cartonrepo"
	"packing/internal/adapters/out/postgres/orderrepo"
	"packing/internal/adapters/out/postgres/packrepo"
	"packing/internal/core/domain/model/kernel"
	"packing/internal/core/domain/model/order"
	"packing/internal/core/domain/model/pack"
	"packing/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&cartonrepo.CartonDTO{},
		&packrepo.PackDTO{},
		&packrepo.BoxDTO{},
		&packrepo.BoxItemDTO{},
		&packrepo.PairGuardDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE pack_box_items, pair_guards, pack_boxes, packs, order_lines, orders, carton_types CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.PackRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CartonRepository())
	suite.NotNil(uow2.PackRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Repeated begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().Error(uow.Commit(ctx), "Commit without begin should fail")
	suite.Require().Error(uow.Rollback(ctx), "Rollback without begin should fail")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_PackingWorkflowCommits() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := newTestOrder(suite)

	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	p, err := pack.NewPack(kernel.NewUUID(), testOrder.ID(), "sam")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PackRepository().Add(ctx, p))

	box, err := p.AddCustomBox(
		newTestDimension(suite, 30), newTestDimension(suite, 6), newTestDimension(suite, 40), 0)
	suite.Require().NoError(err)
	suite.Require().NoError(p.AssignOne(testOrder, box.ID(), testOrder.Lines()[0].ID()))
	suite.Require().NoError(uow.PackRepository().Update(ctx, p))

	suite.Require().NoError(uow.Commit(ctx))

	newUow := suite.factory.Create()
	restored, err := newUow.PackRepository().Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().Len(restored.Boxes(), 1)
	suite.Equal(1, restored.PackedQty(testOrder.Lines()[0].ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllChanges() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := newTestOrder(suite)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	p, err := pack.NewPack(kernel.NewUUID(), testOrder.ID(), "sam")
	suite.Require().NoError(err)
	suite.Require().NoError(uow.PackRepository().Add(ctx, p))

	_, err = uow.PackRepository().Get(ctx, p.ID())
	suite.Require().NoError(err, "Pack should be visible inside the transaction")

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")
	_, err = newUow.PackRepository().Get(ctx, p.ID())
	suite.Require().Error(err, "Pack should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	order1 := newTestOrder(suite)
	order2 := newTestOrder(suite)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.OrderRepository().Add(ctx, order1))
	suite.Require().NoError(uow2.OrderRepository().Add(ctx, order2))

	_, err := uow1.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "First transaction should not see the second's order")
	_, err = uow2.OrderRepository().Get(ctx, order1.ID())
	suite.Require().Error(err, "Second transaction should not see the first's order")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	newUow := suite.factory.Create()
	_, err = newUow.OrderRepository().Get(ctx, order1.ID())
	suite.Require().NoError(err, "Committed order should persist")
	_, err = newUow.OrderRepository().Get(ctx, order2.ID())
	suite.Require().Error(err, "Rolled back order should not persist")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := newTestOrder(suite)

	suite.Require().NoError(uow.OrderRepository().Add(ctx, testOrder))

	newUow := suite.factory.Create()
	restored, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.ID(), restored.ID())
}

func newTestOrder(suite *UnitOfWorkIntegrationTestSuite) *order.Order {
	line, err := order.NewOrderLine(
		kernel.NewUUID(), "FRM-A",
		newTestDimension(suite, 24), newTestDimension(suite, 36), "", 2)
	suite.Require().NoError(err)

	orderNo := fmt.Sprintf("SO-%s", kernel.NewUUID().String()[:8])
	o, err := order.NewOrder(
		kernel.NewUUID(), orderNo, "Hillside Gallery", "12 Main St", nil, "standard",
		[]*order.OrderLine{line})
	suite.Require().NoError(err)

	return o
}

func newTestDimension(suite *UnitOfWorkIntegrationTestSuite, inches float64) kernel.Dimension {
	d, err := kernel.NewDimension(inches)
	suite.Require().NoError(err)
	return d
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
