package outletdir_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"freightgate/internal/adapters/out/postgres/outletdir"
	"freightgate/internal/pkg/errs"
)

// OutletDirectoryIntegrationTestSuite exercises the read-only directory
// against a real PostgreSQL container.
type OutletDirectoryIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	directory *outletdir.GormOutletDirectory
}

func (suite *OutletDirectoryIntegrationTestSuite) SetupSuite() {
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
		&outletdir.OutletDTO{},
		&outletdir.TransferDTO{},
	))
}

func (suite *OutletDirectoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE vend_outlets").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE transfers").Error)

	suite.directory = outletdir.NewGormOutletDirectory(suite.db)
}

func (suite *OutletDirectoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutletDirectoryIntegrationTestSuite) TestOutletByID() {
	suite.Require().NoError(suite.db.Create(&outletdir.OutletDTO{
		ID:                    7,
		Name:                  "Downtown",
		NZPostAPIKey:          "key-a",
		NZPostSubscriptionKey: "sub-a",
		GSSToken:              "gss-token",
		CourierAccountNumber:  "ACC-1",
		Address1:              "1 Queen St",
		City:                  "Auckland",
		Postcode:              "1010",
	}).Error)

	record, err := suite.directory.OutletByID(context.Background(), 7)
	suite.Require().NoError(err)
	suite.Equal(int64(7), record.ID)
	suite.Equal("Downtown", record.Name)
	suite.Equal("key-a", record.NZPostAPIKey)
	suite.Equal("sub-a", record.NZPostSubscriptionKey)
	suite.Equal("gss-token", record.GSSToken)
	suite.Equal("ACC-1", record.CourierAccountNumber)
	suite.Equal("Auckland", record.City)
}

func (suite *OutletDirectoryIntegrationTestSuite) TestOutletByID_NotFound() {
	_, err := suite.directory.OutletByID(context.Background(), 404)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OutletDirectoryIntegrationTestSuite) TestOutletForTransfer() {
	suite.Require().NoError(suite.db.Create(&outletdir.TransferDTO{
		ID:         9123,
		OutletFrom: 7,
	}).Error)

	outletID, err := suite.directory.OutletForTransfer(context.Background(), 9123)
	suite.Require().NoError(err)
	suite.Equal(int64(7), outletID)
}

func (suite *OutletDirectoryIntegrationTestSuite) TestOutletForTransfer_UnknownIsZero() {
	outletID, err := suite.directory.OutletForTransfer(context.Background(), 555)
	suite.Require().NoError(err)
	suite.Equal(int64(0), outletID)
}

func TestOutletDirectoryIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(OutletDirectoryIntegrationTestSuite))
}
