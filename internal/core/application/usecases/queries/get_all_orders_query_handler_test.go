package queries_test

import (
	"context"
	"testing"
	"time"

	"printstream/internal/adapters/out/postgres/orderrepo"
	"printstream/internal/core/application/usecases/queries"
	"printstream/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetAllOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.GetAllOrdersQueryHandler
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetAllOrdersQueryHandler(db)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetAllOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) seedOrder(customerName string, status order.Status, total float64, createdAt time.Time) uuid.UUID {
	dto := orderrepo.OrderDTO{
		ID:           uuid.New(),
		CustomerName: customerName,
		Status:       int(status),
		Total:        total,
		CreatedAt:    createdAt,
	}
	err := suite.db.Create(&dto).Error
	suite.Require().NoError(err)
	return dto.ID
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetAllOrdersQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_WithOrders_ReturnsNewestFirst() {
	base := time.Now().UTC().Truncate(time.Second)
	oldestID := suite.seedOrder("Alice", order.Pending, 19.99, base.Add(-2*time.Hour))
	middleID := suite.seedOrder("Bob", order.Processing, 39.98, base.Add(-1*time.Hour))
	newestID := suite.seedOrder("Carol", order.Pending, 9.99, base)

	query := queries.NewGetAllOrdersQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal(newestID.String(), result[0].ID.String())
	suite.Equal(middleID.String(), result[1].ID.String())
	suite.Equal(oldestID.String(), result[2].ID.String())
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_MapsAllFields() {
	createdAt := time.Now().UTC().Truncate(time.Second)
	id := suite.seedOrder("Dana", order.Processing, 59.97, createdAt)

	query := queries.NewGetAllOrdersQuery()
	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(id.String(), result[0].ID.String())
	suite.Equal("Dana", result[0].CustomerName)
	suite.Equal(order.Processing, result[0].Status)
	suite.InDelta(59.97, result[0].Total, 0.001)
	suite.WithinDuration(createdAt, result[0].CreatedAt, time.Second)
}

func (suite *GetAllOrdersQueryHandlerTestSuite) TestHandle_NotConstructedQuery_ReturnsError() {
	query := queries.GetAllOrdersQuery{}

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetAllOrdersQueryIsNotConstructed)
	suite.Nil(result)
}

func TestGetAllOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetAllOrdersQueryHandlerTestSuite))
}
