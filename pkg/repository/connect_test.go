package repository_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/suite"
	"go.openly.dev/pointy"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"moul.io/zapgorm2"

	"droscher.com/BrewLog/configs"
	"droscher.com/BrewLog/pkg/model"
	"droscher.com/BrewLog/pkg/repository"
)

// RepositorySuite runs the repository against sqlmock to pin down the SQL it
// sends to postgres.
type RepositorySuite struct {
	suite.Suite
	DB           *gorm.DB
	mock         sqlmock.Sqlmock
	observedLogs *observer.ObservedLogs
	repository   repository.Repository
}

func (suite *RepositorySuite) SetupTest() {
	var (
		db              *sql.DB
		err             error
		observedZapCore zapcore.Core
	)

	observedZapCore, suite.observedLogs = observer.New(zap.InfoLevel)
	observedLogger := zap.New(observedZapCore)

	db, suite.mock, err = sqlmock.New()
	suite.Require().NoError(err)

	gormLogger := zapgorm2.New(observedLogger)
	gormLogger.SetAsDefault()

	suite.DB, err = gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{Logger: gormLogger})
	suite.NoError(err)

	suite.repository = repository.Repository{DB: suite.DB, Logger: observedLogger}
}

// StoreSuite runs the repository against a fresh SQLite database so that
// transactions and cascades behave as they do in production.
type StoreSuite struct {
	suite.Suite
	repository *repository.Repository
	ctx        context.Context
}

func (suite *StoreSuite) SetupTest() {
	conf := &configs.Config{DB: configs.DB{
		Driver: configs.DriverSQLite,
		Path:   filepath.Join(suite.T().TempDir(), "brewlog.db"),
	}}

	repo, err := repository.Open(conf, zaptest.NewLogger(suite.T()))
	suite.Require().NoError(err)
	suite.Require().NoError(repo.Migrate())

	suite.repository = repo
	suite.ctx = context.Background()
}

func (suite *StoreSuite) TearDownTest() {
	suite.repository.Close()
}

func (suite *StoreSuite) addBean(name string, shopID *uint) *model.CoffeeBean {
	bean, err := suite.repository.AddBean(suite.ctx, model.CoffeeBean{Name: name, ShopID: shopID})
	suite.Require().NoError(err)

	return bean
}

func (suite *StoreSuite) addTasting(beanID uint, overall *int) *model.TastingEntry {
	tasting, err := suite.repository.AddTasting(suite.ctx, model.TastingEntry{
		CoffeeBeanID:  beanID,
		BrewDate:      time.Now(),
		OverallRating: overall,
	})
	suite.Require().NoError(err)

	return tasting
}

func (suite *StoreSuite) addNote(tastingID uint, taster string) *model.TastingNote {
	note, err := suite.repository.AddTastingNote(suite.ctx, model.TastingNote{
		TastingEntryID: tastingID,
		TasterName:     taster,
		OverallRating:  pointy.Int(4),
	})
	suite.Require().NoError(err)

	return note
}
