package orderrepo_test

import (
	"context"
	"testing"
	"time"

	pgadapter "entrega/internal/adapters/out/postgres"
	"entrega/internal/adapters/out/postgres/orderrepo"
	"entrega/internal/adapters/out/postgres/productrepo"
	"entrega/internal/core/domain/model/kernel"
	"entrega/internal/core/domain/model/order"
	"entrega/internal/core/ports"
	"entrega/internal/pkg/errs"

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

// OrderRepositoryIntegrationTestSuite verifies order persistence against a
// real PostgreSQL instance, including the conditional-write behavior that
// the claim protocol relies on.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	product    ports.Product
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(pgadapter.Migrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_items, orders, products").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)

	// Line items carry a foreign key to products, so every test needs at
	// least one catalog entry.
	suite.product = ports.Product{
		ID:        kernel.NewUUID(),
		Name:      "lomo saltado",
		UnitPrice: suite.money("12.50"),
	}
	productRepo := productrepo.NewGormProductRepository(suite.db)
	suite.Require().NoError(productRepo.Add(context.Background(), suite.product))
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_UnknownProduct_ReturnsIntegrityError() {
	ctx := context.Background()

	// Item references a product that was never added to the catalog.
	item, err := order.NewItem(kernel.NewUUID(), 1, suite.money("9.90"))
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"card", "Av. Arequipa 1234",
		suite.money("9.90"), []order.Item{item},
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, testOrder)
	suite.Require().Error(err)

	var integrityErr *errs.IntegrityError
	suite.Require().ErrorAs(err, &integrityErr)

	suite.assertOrderCount(0)
	suite.assertItemCount(0)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_ReturnsOrderWithItems() {
	ctx := context.Background()

	originalOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", originalOrder.ID(), originalOrder).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalOrder))

	retrieved, err := suite.repository.Get(ctx, originalOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(originalOrder.ID(), retrieved.ID())
	suite.Equal(originalOrder.ClientID(), retrieved.ClientID())
	suite.Equal(originalOrder.RestaurantID(), retrieved.RestaurantID())
	suite.Equal(order.PendingConfirmation, retrieved.Status())
	suite.Nil(retrieved.Courier())
	suite.True(originalOrder.Total().IsEqual(retrieved.Total()))

	// Line items come back in their original order.
	originalItems := originalOrder.Items()
	retrievedItems := retrieved.Items()
	suite.Require().Len(retrievedItems, len(originalItems))
	for i := range originalItems {
		suite.Equal(originalItems[i].ID(), retrievedItems[i].ID())
		suite.Equal(originalItems[i].ProductID(), retrievedItems[i].ProductID())
		suite.Equal(originalItems[i].Quantity(), retrievedItems[i].Quantity())
		suite.True(originalItems[i].UnitPrice().IsEqual(retrievedItems[i].UnitPrice()))
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	retrieved, err := suite.repository.Get(context.Background(), kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusIf_ExpectedStateMatches_AppliesTransition() {
	ctx := context.Background()

	testOrder := suite.addTestOrderWithStatus(order.PendingConfirmation, nil)

	updated, err := suite.repository.UpdateStatusIf(
		ctx, testOrder.ID(),
		order.PendingConfirmation, nil,
		order.ConfirmedByRestaurant, nil,
	)
	suite.Require().NoError(err)
	suite.Equal(order.ConfirmedByRestaurant, updated.Status())
	suite.Nil(updated.Courier())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusIf_Claim_SetsCourier() {
	ctx := context.Background()

	testOrder := suite.addTestOrderWithStatus(order.ReadyForPickup, nil)
	courierID := kernel.NewUUID()

	updated, err := suite.repository.UpdateStatusIf(
		ctx, testOrder.ID(),
		order.ReadyForPickup, nil,
		order.ClaimedByCourier, &courierID,
	)
	suite.Require().NoError(err)
	suite.Equal(order.ClaimedByCourier, updated.Status())
	suite.Require().NotNil(updated.Courier())
	suite.True(courierID.IsEqual(*updated.Courier()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusIf_StatusMismatch_ReturnsVersionConflict() {
	ctx := context.Background()

	testOrder := suite.addTestOrderWithStatus(order.ConfirmedByRestaurant, nil)

	updated, err := suite.repository.UpdateStatusIf(
		ctx, testOrder.ID(),
		order.PendingConfirmation, nil,
		order.Cancelled, nil,
	)
	suite.Nil(updated)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	// The row is untouched.
	current, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ConfirmedByRestaurant, current.Status())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusIf_CourierMismatch_ReturnsVersionConflict() {
	ctx := context.Background()

	owner := kernel.NewUUID()
	intruder := kernel.NewUUID()
	testOrder := suite.addTestOrderWithStatus(order.ClaimedByCourier, &owner)

	updated, err := suite.repository.UpdateStatusIf(
		ctx, testOrder.ID(),
		order.ClaimedByCourier, &intruder,
		order.EnRoute, &intruder,
	)
	suite.Nil(updated)

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	current, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ClaimedByCourier, current.Status())
	suite.Require().NotNil(current.Courier())
	suite.True(owner.IsEqual(*current.Courier()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusIf_NonExistentOrder_ReturnsNotFoundError() {
	updated, err := suite.repository.UpdateStatusIf(
		context.Background(), kernel.NewUUID(),
		order.PendingConfirmation, nil,
		order.ConfirmedByRestaurant, nil,
	)
	suite.Nil(updated)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// TestUpdateStatusIf_ConcurrentClaims_ExactlyOneWinner races two couriers
// over the same ready order. The conditional write guarantees exactly one
// success regardless of scheduling.
func (suite *OrderRepositoryIntegrationTestSuite) TestUpdateStatusIf_ConcurrentClaims_ExactlyOneWinner() {
	ctx := context.Background()

	testOrder := suite.addTestOrderWithStatus(order.ReadyForPickup, nil)
	courier1 := kernel.NewUUID()
	courier2 := kernel.NewUUID()

	type claimResult struct {
		courierID kernel.UUID
		err       error
	}
	results := make(chan claimResult, 2)

	for _, courierID := range []kernel.UUID{courier1, courier2} {
		go func(cid kernel.UUID) {
			_, err := suite.repository.UpdateStatusIf(
				ctx, testOrder.ID(),
				order.ReadyForPickup, nil,
				order.ClaimedByCourier, &cid,
			)
			results <- claimResult{courierID: cid, err: err}
		}(courierID)
	}

	var winners, losers []claimResult
	for range 2 {
		r := <-results
		if r.err == nil {
			winners = append(winners, r)
		} else {
			losers = append(losers, r)
		}
	}

	suite.Require().Len(winners, 1, "exactly one claim must succeed")
	suite.Require().Len(losers, 1, "exactly one claim must lose the race")

	var conflictErr *errs.VersionConflictError
	suite.Require().ErrorAs(losers[0].err, &conflictErr)

	// The persisted courier is the winner's, and stays.
	current, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ClaimedByCourier, current.Status())
	suite.Require().NotNil(current.Courier())
	suite.True(winners[0].courierID.IsEqual(*current.Courier()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetStalePending_ReturnsOnlyStalePendingOrders() {
	ctx := context.Background()

	stale := suite.addTestOrderWithCreatedAt(order.PendingConfirmation, time.Now().UTC().Add(-2*time.Hour))
	suite.addTestOrderWithCreatedAt(order.PendingConfirmation, time.Now().UTC())
	confirmed := suite.addTestOrderWithCreatedAt(order.ConfirmedByRestaurant, time.Now().UTC().Add(-2*time.Hour))
	_ = confirmed

	cutoff := time.Now().UTC().Add(-1 * time.Hour)
	orders, err := suite.repository.GetStalePending(ctx, cutoff)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal(stale.ID(), orders[0].ID())
	suite.NotEmpty(orders[0].Items())
}

func (suite *OrderRepositoryIntegrationTestSuite) money(value string) kernel.Money {
	m, err := kernel.MoneyFromString(value)
	suite.Require().NoError(err)
	return m
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestItems() []order.Item {
	item1, err := order.NewItem(suite.product.ID, 2, suite.product.UnitPrice)
	suite.Require().NoError(err)
	item2, err := order.NewItem(suite.product.ID, 1, suite.product.UnitPrice)
	suite.Require().NoError(err)
	return []order.Item{item1, item2}
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"card", "Av. Arequipa 1234",
		suite.money("37.50"), suite.createTestItems(),
	)
	suite.Require().NoError(err)
	return testOrder
}

// addTestOrderWithStatus persists an order directly in the given state.
func (suite *OrderRepositoryIntegrationTestSuite) addTestOrderWithStatus(
	status order.Status, courierID *kernel.UUID,
) *order.Order {
	return suite.addTestOrder(status, courierID, time.Now().UTC())
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrderWithCreatedAt(
	status order.Status, createdAt time.Time,
) *order.Order {
	return suite.addTestOrder(status, nil, createdAt)
}

func (suite *OrderRepositoryIntegrationTestSuite) addTestOrder(
	status order.Status, courierID *kernel.UUID, createdAt time.Time,
) *order.Order {
	testOrder, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		"card", "Av. Arequipa 1234",
		suite.money("37.50"), createdAt,
		status, courierID, suite.createTestItems(),
	)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), testOrder))
	return testOrder
}

func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func (suite *OrderRepositoryIntegrationTestSuite) assertItemCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&orderrepo.ItemDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
