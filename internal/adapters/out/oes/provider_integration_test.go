package oes_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"packing/internal/adapters/out/oes"
	"packing/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// ProviderIntegrationTestSuite verifies order fetching and normalization
// against a PostgreSQL container standing in for the OES replica.
type ProviderIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *sql.DB
	provider  *oes.Provider
}

func (suite *ProviderIntegrationTestSuite) SetupSuite() {
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

	db, err := sql.Open("postgres", dsn)
	suite.Require().NoError(err)
	suite.db = db
	suite.provider = oes.NewProvider(db)

	for _, ddl := range []string{
		`CREATE TABLE sales_order_types (
			sales_order_type_id int PRIMARY KEY,
			name varchar(255) NOT NULL
		)`,
		`CREATE TABLE sales_orders (
			order_no varchar(50) PRIMARY KEY,
			client_name varchar(255),
			sales_order_type_id int,
			due_date timestamptz,
			shipping_name varchar(255),
			shipping_address varchar(255),
			shipping_city varchar(255),
			shipping_province varchar(255),
			shipping_postal_code varchar(32)
		)`,
		`CREATE TABLE finishes (
			finish_id int PRIMARY KEY,
			display_name varchar(255)
		)`,
		`CREATE TABLE sales_order_details (
			detail_id serial PRIMARY KEY,
			order_no varchar(50) NOT NULL,
			display_name varchar(255) NOT NULL,
			width numeric,
			height numeric,
			color_id int,
			quantity int
		)`,
	} {
		_, err = db.ExecContext(ctx, ddl)
		suite.Require().NoError(err)
	}
}

func (suite *ProviderIntegrationTestSuite) SetupTest() {
	ctx := context.Background()
	for _, table := range []string{"sales_order_details", "sales_orders", "sales_order_types", "finishes"} {
		_, err := suite.db.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		suite.Require().NoError(err)
	}
}

func (suite *ProviderIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Close())
	}
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ProviderIntegrationTestSuite) TestFetchOrder_FullOrder_NormalizesFields() {
	ctx := context.Background()

	suite.exec(`INSERT INTO sales_order_types VALUES (1, 'standard')`)
	suite.exec(`INSERT INTO finishes VALUES (7, 'matte')`)
	suite.exec(`INSERT INTO sales_orders VALUES
		('SO-10342', 'Hillside Gallery', 1, '2026-09-15T00:00:00Z',
		 'Hillside Gallery', '12 Main St', 'Toronto', 'ON', 'M5V 2T6')`)
	suite.exec(`INSERT INTO sales_order_details
		(order_no, display_name, width, height, color_id, quantity) VALUES
		('SO-10342', 'FRM-A', 24.5, 36.125, NULL, 10),
		('SO-10342', 'MAT-B', 11, 14, 7, 5),
		('SO-10342', '..packing note', 0, 0, NULL, 1)`)

	header, lines, err := suite.provider.FetchOrder(ctx, "SO-10342")
	suite.Require().NoError(err)

	suite.Equal("SO-10342", header.OrderNo)
	suite.Equal("Hillside Gallery", header.CustomerName)
	suite.Equal("standard", header.LeadTimePlan)
	suite.Equal("Hillside Gallery, 12 Main St, Toronto, ON, M5V 2T6", header.ShipTo)
	suite.Require().NotNil(header.DueDate)

	// annotation rows (display names starting with "..") are skipped
	suite.Require().Len(lines, 2)
	suite.Equal("FRM-A", lines[0].ProductCode)
	suite.InDelta(24.5, lines[0].LengthIn, 0.0001)
	suite.InDelta(36.125, lines[0].HeightIn, 0.0001)
	suite.Equal(10, lines[0].QtyOrdered)
	suite.Equal("", lines[0].Finish)
	suite.Equal("MAT-B", lines[1].ProductCode)
	suite.Equal("matte", lines[1].Finish)
}

func (suite *ProviderIntegrationTestSuite) TestFetchOrder_NullFields_DefaultsApplied() {
	ctx := context.Background()

	suite.exec(`INSERT INTO sales_orders (order_no) VALUES ('SO-20001')`)
	suite.exec(`INSERT INTO sales_order_details
		(order_no, display_name, width, height, color_id, quantity) VALUES
		('SO-20001', 'FRM-A', NULL, NULL, NULL, NULL)`)

	header, lines, err := suite.provider.FetchOrder(ctx, "SO-20001")
	suite.Require().NoError(err)

	suite.Equal("", header.CustomerName)
	suite.Equal("", header.ShipTo)
	suite.Nil(header.DueDate)

	suite.Require().Len(lines, 1)
	suite.Equal(0, lines[0].QtyOrdered)
	suite.Zero(lines[0].LengthIn)
}

func (suite *ProviderIntegrationTestSuite) TestFetchOrder_UnknownOrder_ReturnsObjectNotFound() {
	_, _, err := suite.provider.FetchOrder(context.Background(), "SO-99999")
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ProviderIntegrationTestSuite) TestFetchOrder_EmptyOrderNo_ReturnsRequiredError() {
	_, _, err := suite.provider.FetchOrder(context.Background(), "")
	suite.Require().ErrorIs(err, errs.ErrValueIsRequired)
}

func (suite *ProviderIntegrationTestSuite) exec(query string) {
	_, err := suite.db.ExecContext(context.Background(), query)
	suite.Require().NoError(err)
}

func TestProviderIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ProviderIntegrationTestSuite))
}
