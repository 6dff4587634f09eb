package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/orderrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence
// behavior, including clearing of nullable lifecycle columns.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.HistoryEntryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, status_history").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.newQuote(120_000)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsAllFields() {
	ctx := context.Background()

	approved := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	started := approved.Add(time.Hour)
	responsible := kernel.NewUUID()

	original, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), suite.newMoney(250_000),
		order.StatusInProduction,
		&approved, &started, nil, nil, &responsible,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(retrieved.ID().IsEqual(original.ID()))
	suite.True(retrieved.OwnerSalesRepID().IsEqual(original.OwnerSalesRepID()))
	suite.Equal(int64(250_000), retrieved.FinalValue().Cents())
	suite.Equal(order.StatusInProduction, retrieved.Status())
	suite.Require().NotNil(retrieved.ApprovedAt())
	suite.True(retrieved.ApprovedAt().Equal(approved))
	suite.Require().NotNil(retrieved.ProductionStartedAt())
	suite.True(retrieved.ProductionStartedAt().Equal(started))
	suite.Nil(retrieved.ProductionFinishedAt())
	suite.Nil(retrieved.DeliveredAt())
	suite.Require().NotNil(retrieved.ProductionResponsible())
	suite.True(retrieved.ProductionResponsible().IsEqual(responsible))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_InvalidID_ReturnsError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.UUID{})

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetForUpdate_ExistingOrder_ReturnsOrder() {
	ctx := context.Background()

	testOrder := suite.newQuote(90_000)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
	suite.Equal(order.StatusQuote, retrieved.Status())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Transition_PersistsNewStatus() {
	ctx := context.Background()

	testOrder := suite.newQuote(90_000)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	now := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	suite.Require().NoError(testOrder.Approve(now))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusApproved, retrieved.Status())
	suite.Require().NotNil(retrieved.ApprovedAt())
	suite.True(retrieved.ApprovedAt().Equal(now))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_Regression_ClearsProductionColumns() {
	ctx := context.Background()

	approved := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	started := approved.Add(time.Hour)
	responsible := kernel.NewUUID()

	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), suite.newMoney(250_000),
		order.StatusInProduction,
		&approved, &started, nil, nil, &responsible,
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.Require().NoError(testOrder.ReturnToQueue())
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.StatusApproved, retrieved.Status())
	suite.Nil(retrieved.ProductionStartedAt())
	suite.Nil(retrieved.ProductionResponsible())
	suite.Require().NotNil(retrieved.ApprovedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsError() {
	ctx := context.Background()

	missing := suite.newQuote(10_000)

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHistory_AppendAndGet_OldestFirst() {
	ctx := context.Background()

	testOrder := suite.newQuote(90_000)
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	actorID := kernel.NewUUID()
	base := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)
	transitions := []struct {
		status order.Status
		note   string
		at     time.Time
	}{
		{order.StatusApproved, "", base},
		{order.StatusInProduction, "", base.Add(time.Hour)},
		{order.StatusFinished, "checklist complete", base.Add(3 * time.Hour)},
	}

	for _, tr := range transitions {
		entry, err := order.NewHistoryEntry(testOrder.ID(), tr.status, actorID, tr.note, tr.at)
		suite.Require().NoError(err)
		suite.Require().NoError(suite.repository.AppendHistory(ctx, entry))
	}

	entries, err := suite.repository.GetHistory(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(entries, 3)

	for i, tr := range transitions {
		suite.Equal(tr.status, entries[i].Status())
		suite.Equal(tr.note, entries[i].Note())
		suite.True(entries[i].ActorID().IsEqual(actorID))
		suite.True(entries[i].CreatedAt().Equal(tr.at))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestHistory_ScopedToOrder() {
	ctx := context.Background()

	first := suite.newQuote(10_000)
	second := suite.newQuote(20_000)
	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(2)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	actorID := kernel.NewUUID()
	at := time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC)

	entry, err := order.NewHistoryEntry(first.ID(), order.StatusApproved, actorID, "", at)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.AppendHistory(ctx, entry))

	entries, err := suite.repository.GetHistory(ctx, second.ID())
	suite.Require().NoError(err)
	suite.Empty(entries)

	suite.tracker.AssertExpectations(suite.T())
}

// newQuote creates a fresh quote order with the given value in cents.
func (suite *OrderRepositoryIntegrationTestSuite) newQuote(cents int64) *order.Order {
	testOrder, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), suite.newMoney(cents))
	suite.Require().NoError(err)
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) newMoney(cents int64) kernel.Money {
	value, err := kernel.NewMoney(cents)
	suite.Require().NoError(err)
	return value
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
