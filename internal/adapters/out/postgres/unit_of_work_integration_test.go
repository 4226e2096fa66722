package postgres_test

import (
	"context"
	"testing"
	"time"

	postgresadapter "orders/internal/adapters/out/postgres"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/core/ports"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based unit of work
// against a real PostgreSQL database.
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

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.OrderStatusHistoryDTO{}))

	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) newOrder() *order.Order {
	price, err := kernel.NewMoney(decimal.RequireFromString("100.00"), "INR")
	suite.Require().NoError(err)
	item, err := order.NewOrderItem(kernel.NewUUID(), "SKU-42", "USB Cable", 1, price, price)
	suite.Require().NoError(err)

	zero, err := kernel.ZeroMoney("INR")
	suite.Require().NoError(err)
	pricing, err := order.NewPricing(price, zero, zero, zero, price)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
		[]order.OrderItem{item}, pricing, "")
	suite.Require().NoError(err)
	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) TestFactory_CreatesIsolatedInstances() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2)
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	// repeated Begin on the same instance is a no-op
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin() {
	ctx := context.Background()

	suite.ErrorIs(suite.factory.Create().Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(suite.factory.Create().Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsOrder() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(loaded.IsEqual(aggregate))
	suite.Len(loaded.History(), 1)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsOrder() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsStatusChange() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(setup.Commit(ctx))

	suite.Require().NoError(aggregate.ChangeStatus(order.Confirmed, aggregate.UserID(), "payment verified"))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.Rollback(ctx))

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Placed, loaded.Status())
	suite.Len(loaded.History(), 1)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
