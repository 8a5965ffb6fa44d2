package snapshotrepo_test

import (
	"context"
	"testing"
	"time"

	"retail/internal/adapters/out/postgres/snapshotrepo"
	"retail/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// SnapshotRepositoryIntegrationTestSuite provides integration tests for the
// snapshot store using a PostgreSQL container.
type SnapshotRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *snapshotrepo.GormSnapshotRepository
}

func (suite *SnapshotRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&snapshotrepo.SnapshotDTO{}))
}

func (suite *SnapshotRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_snapshots").Error)
	suite.repository = snapshotrepo.NewGormSnapshotRepository(suite.db)
}

func (suite *SnapshotRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *SnapshotRepositoryIntegrationTestSuite) testSnapshot(orderID string, createdAt time.Time) order.Snapshot {
	return order.Snapshot{
		OrderID:    orderID,
		CustomerID: "C1",
		Items: []order.LineItem{
			{ProductID: "P1", Name: "Laptop", UnitPrice: decimal.RequireFromString("999.99"), Quantity: 1},
		},
		Status:    "Pending",
		Total:     decimal.RequireFromString("1079.9892"),
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func (suite *SnapshotRepositoryIntegrationTestSuite) TestUpsert_NewSnapshot_Persists() {
	ctx := context.Background()
	snapshot := suite.testSnapshot("O1", time.Now().UTC())

	err := suite.repository.Upsert(ctx, snapshot)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&snapshotrepo.SnapshotDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

func (suite *SnapshotRepositoryIntegrationTestSuite) TestUpsert_ExistingOrder_ReplacesRow() {
	ctx := context.Background()
	createdAt := time.Now().UTC().Truncate(time.Microsecond)

	first := suite.testSnapshot("O1", createdAt)
	suite.Require().NoError(suite.repository.Upsert(ctx, first))

	updated := first
	updated.Status = "Processing"
	updated.Total = decimal.RequireFromString("971.99028")
	suite.Require().NoError(suite.repository.Upsert(ctx, updated))

	snapshots, err := suite.repository.GetByPeriod(ctx,
		createdAt.Add(-time.Hour), createdAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 1, "upsert must replace, not duplicate")
	suite.Equal("Processing", snapshots[0].Status)
	suite.True(updated.Total.Equal(snapshots[0].Total))
}

func (suite *SnapshotRepositoryIntegrationTestSuite) TestGetByPeriod_InclusiveBounds() {
	ctx := context.Background()
	base := time.Now().UTC().Truncate(time.Microsecond)

	suite.Require().NoError(suite.repository.Upsert(ctx, suite.testSnapshot("O1", base.Add(-48*time.Hour))))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.testSnapshot("O2", base.Add(-24*time.Hour))))
	suite.Require().NoError(suite.repository.Upsert(ctx, suite.testSnapshot("O3", base)))

	snapshots, err := suite.repository.GetByPeriod(ctx, base.Add(-24*time.Hour), base)
	suite.Require().NoError(err)

	suite.Require().Len(snapshots, 2)
	suite.Equal("O2", snapshots[0].OrderID, "results ordered by creation time")
	suite.Equal("O3", snapshots[1].OrderID)
}

func (suite *SnapshotRepositoryIntegrationTestSuite) TestGetByPeriod_RoundTripsItems() {
	ctx := context.Background()
	createdAt := time.Now().UTC().Truncate(time.Microsecond)
	snapshot := suite.testSnapshot("O1", createdAt)

	suite.Require().NoError(suite.repository.Upsert(ctx, snapshot))

	snapshots, err := suite.repository.GetByPeriod(ctx,
		createdAt.Add(-time.Hour), createdAt.Add(time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(snapshots, 1)

	got := snapshots[0]
	suite.Equal(snapshot.CustomerID, got.CustomerID)
	suite.Require().Len(got.Items, 1)
	suite.Equal("Laptop", got.Items[0].Name)
	suite.True(snapshot.Items[0].UnitPrice.Equal(got.Items[0].UnitPrice))
	suite.True(snapshot.Total.Equal(got.Total))
}

func (suite *SnapshotRepositoryIntegrationTestSuite) TestGetByPeriod_EmptyRange_ReturnsEmptySlice() {
	ctx := context.Background()
	base := time.Now().UTC()

	snapshots, err := suite.repository.GetByPeriod(ctx, base.Add(-time.Hour), base)
	suite.Require().NoError(err)
	suite.Empty(snapshots)
}

func TestSnapshotRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(SnapshotRepositoryIntegrationTestSuite))
}
