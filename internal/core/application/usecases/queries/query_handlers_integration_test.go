package queries_test

import (
	"context"
	"testing"
	"time"

	"shiptrack/internal/adapters/out/postgres/orderrepo"
	"shiptrack/internal/adapters/out/postgres/parcelrepo"
	"shiptrack/internal/adapters/out/postgres/trackingrepo"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/model/parcel"
	"shiptrack/internal/core/domain/model/status"
	"shiptrack/internal/core/domain/model/tracking"
	"shiptrack/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueryHandlersIntegrationTestSuite exercises the read side against a real
// PostgreSQL schema, seeded through the repositories so the queries see
// exactly what the write side produces.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB

	parcelRepo *parcelrepo.GormParcelRepository
	orderRepo  *orderrepo.GormOrderRepository
	eventRepo  *trackingrepo.GormTrackingEventRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(
		&parcelrepo.ParcelDTO{}, &orderrepo.OrderDTO{}, &trackingrepo.EventDTO{}))
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE parcels, orders, tracking_events").Error)

	suite.parcelRepo = parcelrepo.NewGormParcelRepository(suite.db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(suite.db)
	suite.eventRepo = trackingrepo.NewGormTrackingEventRepository(suite.db)
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) TestAllowedTransitions_OriginAgentMidPhase() {
	ctx := context.Background()
	p := suite.seedParcel(status.ReceivedAtOrigin)

	handler := queries.NewGetAllowedTransitionsQueryHandler(suite.db)
	query, err := queries.NewGetAllowedTransitionsQuery(p.ID(), status.OriginAgent)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(status.ReceivedAtOrigin, resp.CurrentStatus)
	suite.Equal([]status.Status{
		status.QCChecked,
		status.PackedAtOrigin,
		status.ReadyToShipHub,
		status.ShippedToHub,
	}, resp.Allowed)
}

func (suite *QueryHandlersIntegrationTestSuite) TestAllowedTransitions_OutsideRoleSpan() {
	ctx := context.Background()
	p := suite.seedParcel(status.ArrivedDestination)

	handler := queries.NewGetAllowedTransitionsQueryHandler(suite.db)
	query, err := queries.NewGetAllowedTransitionsQuery(p.ID(), status.OriginAgent)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(resp.Allowed)
}

func (suite *QueryHandlersIntegrationTestSuite) TestAllowedTransitions_ParcelNotFound() {
	ctx := context.Background()

	handler := queries.NewGetAllowedTransitionsQueryHandler(suite.db)
	query, err := queries.NewGetAllowedTransitionsQuery(kernel.NewUUID(), status.OriginAgent)
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackingHistory_NewestFirst() {
	ctx := context.Background()
	parcelID := kernel.NewUUID()
	base := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)

	for i, s := range []status.Status{
		status.PurchasedFromSeller, status.InTransitToOriginAgent,
	} {
		event, err := tracking.NewEvent(
			kernel.NewUUID(), parcelID, s,
			base.Add(time.Duration(i)*time.Hour),
			kernel.NewUUID(), "Guangzhou", "note")
		suite.Require().NoError(err)
		suite.Require().NoError(suite.eventRepo.Append(ctx, event))
	}

	handler := queries.NewGetTrackingHistoryQueryHandler(suite.db)
	query, err := queries.NewGetTrackingHistoryQuery(parcelID)
	suite.Require().NoError(err)

	history, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(history, 2)
	suite.Equal(status.InTransitToOriginAgent, history[0].Status)
	suite.Equal(status.PurchasedFromSeller, history[1].Status)
	suite.Equal("Guangzhou", history[0].Location)
	suite.Equal("note", history[0].Notes)
}

func (suite *QueryHandlersIntegrationTestSuite) TestTrackingHistory_UnknownParcel_Empty() {
	ctx := context.Background()

	handler := queries.NewGetTrackingHistoryQueryHandler(suite.db)
	query, err := queries.NewGetTrackingHistoryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	history, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)
}

func (suite *QueryHandlersIntegrationTestSuite) TestOrderSummary_WithFlaggedParcel() {
	ctx := context.Background()

	healthy := suite.makeSnapshot(status.PackedAtOrigin)
	flagged := suite.makeSnapshot(status.IssueReported)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]parcel.Snapshot{healthy, flagged}, status.PackedAtOrigin)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	handler := queries.NewGetOrderSummaryQueryHandler(suite.db)
	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.True(resp.ID.IsEqual(testOrder.ID()))
	suite.Equal(status.PackedAtOrigin, resp.Status)
	suite.True(resp.HasReportedIssues)
	suite.Require().Len(resp.Parcels, 2)
}

func (suite *QueryHandlersIntegrationTestSuite) TestOrderSummary_NoIssues() {
	ctx := context.Background()

	snap := suite.makeSnapshot(status.ShippedToHub)
	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]parcel.Snapshot{snap}, status.ShippedToHub)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))

	handler := queries.NewGetOrderSummaryQueryHandler(suite.db)
	query, err := queries.NewGetOrderSummaryQuery(testOrder.ID())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.False(resp.HasReportedIssues)
	suite.Require().Len(resp.Parcels, 1)
	suite.Equal(status.ShippedToHub, resp.Parcels[0].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestOrderSummary_NotFound() {
	ctx := context.Background()

	handler := queries.NewGetOrderSummaryQueryHandler(suite.db)
	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestOrdersByStatus_FiltersAndCounts() {
	ctx := context.Background()

	matching, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]parcel.Snapshot{
			suite.makeSnapshot(status.ArrivedHub),
			suite.makeSnapshot(status.ArrivedHub),
		}, status.ArrivedHub)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, matching))

	other, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		[]parcel.Snapshot{suite.makeSnapshot(status.Delivered)}, status.Delivered)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, other))

	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrdersByStatusQuery(status.ArrivedHub)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(resp, 1)
	suite.True(resp[0].ID.IsEqual(matching.ID()))
	suite.Equal(status.ArrivedHub, resp[0].Status)
	suite.Equal(2, resp[0].ParcelCount)
}

func (suite *QueryHandlersIntegrationTestSuite) TestOrdersByStatus_NoMatches_Empty() {
	ctx := context.Background()

	handler := queries.NewGetOrdersByStatusQueryHandler(suite.db)
	query, err := queries.NewGetOrdersByStatusQuery(status.Repacking)
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.NotNil(resp)
	suite.Empty(resp)
}

func (suite *QueryHandlersIntegrationTestSuite) seedParcel(s status.Status) *parcel.Parcel {
	p, err := parcel.RestoreParcel(
		kernel.NewUUID(), kernel.NewUUID(), s,
		"1Z999AA10123456784", nil, nil, nil, "", 0,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(context.Background(), p))
	return p
}

func (suite *QueryHandlersIntegrationTestSuite) makeSnapshot(s status.Status) parcel.Snapshot {
	snap, err := parcel.RestoreSnapshot(
		kernel.NewUUID(), s, "1Z999AA10123456784", nil, nil, nil, "")
	suite.Require().NoError(err)
	return snap
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
