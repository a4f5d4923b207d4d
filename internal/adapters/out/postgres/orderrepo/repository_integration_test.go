package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker satisfies the repository's tracker dependency in tests that do
// not care about aggregate tracking.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// OrderRepositoryIntegrationTestSuite exercises the GORM order repository
// against a real PostgreSQL database.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	repo      *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{})
	suite.Require().NoError(err)

	suite.repo = orderrepo.NewGormOrderRepository(db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders").Error
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder() *order.Order {
	aggregate, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "2x widgets", time.Now())
	suite.Require().NoError(err)
	return aggregate
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet() {
	ctx := context.Background()
	aggregate := suite.newOrder()

	err := suite.repo.Add(ctx, aggregate)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(aggregate.ID()))
	suite.True(retrieved.CustomerID().IsEqual(aggregate.CustomerID()))
	suite.Equal(order.Created, retrieved.State())
	suite.Equal("2x widgets", retrieved.Details())
	suite.Equal(aggregate.Number(), retrieved.Number())
	// Postgres stores microsecond precision, so compare loosely.
	suite.WithinDuration(aggregate.CreatedAt(), retrieved.CreatedAt(), time.Millisecond)
	suite.WithinDuration(aggregate.UpdatedAt(), retrieved.UpdatedAt(), time.Millisecond)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetNotFound() {
	ctx := context.Background()

	_, err := suite.repo.Get(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStateFrom() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	previous := aggregate.State()
	suite.Require().NoError(aggregate.TransitionTo(order.Processing, time.Now()))

	err := suite.repo.UpdateStateFrom(ctx, aggregate, previous)
	suite.Require().NoError(err)

	retrieved, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.State())
	suite.True(retrieved.UpdatedAt().After(retrieved.CreatedAt()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStateFromStaleState() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	// A rival writer moves the order forward first.
	rival, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(rival.TransitionTo(order.Processing, time.Now()))
	suite.Require().NoError(suite.repo.UpdateStateFrom(ctx, rival, order.Created))

	// The stale writer computed its transition against created.
	suite.Require().NoError(aggregate.TransitionTo(order.Processing, time.Now()))
	err = suite.repo.UpdateStateFrom(ctx, aggregate, order.Created)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrConcurrentModification)

	// The rival's write stands.
	retrieved, err := suite.repo.Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Processing, retrieved.State())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStateFromMissingRow() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	previous := aggregate.State()
	suite.Require().NoError(aggregate.TransitionTo(order.Processing, time.Now()))

	err := suite.repo.UpdateStateFrom(ctx, aggregate, previous)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	err := suite.repo.Delete(ctx, aggregate.ID())
	suite.Require().NoError(err)

	_, err = suite.repo.Get(ctx, aggregate.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteNotFound() {
	ctx := context.Background()

	err := suite.repo.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDeleteAllowedFromAnyState() {
	ctx := context.Background()
	aggregate := suite.newOrder()
	suite.Require().NoError(suite.repo.Add(ctx, aggregate))

	previous := aggregate.State()
	suite.Require().NoError(aggregate.TransitionTo(order.Rejected, time.Now()))
	suite.Require().NoError(suite.repo.UpdateStateFrom(ctx, aggregate, previous))

	err := suite.repo.Delete(ctx, aggregate.ID())
	suite.Require().NoError(err)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
