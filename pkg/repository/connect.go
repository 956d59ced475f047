package repository

import (
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"moul.io/zapgorm2"

	"droscher.com/BrewLog/configs"
	"droscher.com/BrewLog/pkg/model"
)

type Repository struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

const (
	maxIdleTime = 5 * time.Minute
	maxLifetime = time.Hour
)

// shareLock keeps a referenced row from being deleted until the writing
// transaction commits. SQLite ignores row locking clauses.
var shareLock = clause.Locking{Strength: "SHARE"}

func Open(conf *configs.Config, logger *zap.Logger) (*Repository, error) {
	gormLogger := zapgorm2.New(logger)
	gormLogger.SetAsDefault()

	db, err := gorm.Open(dialector(conf.DB), &gorm.Config{Logger: gormLogger, TranslateError: true})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	if conf.DB.Driver == configs.DriverSQLite {
		// one writer at a time keeps SQLite from returning SQLITE_BUSY
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(conf.DB.MaxIdleConnections)
		sqlDB.SetMaxOpenConns(conf.DB.MaxOpenConnections)
	}

	sqlDB.SetConnMaxIdleTime(maxIdleTime)
	sqlDB.SetConnMaxLifetime(maxLifetime)

	return &Repository{DB: db, Logger: logger}, err
}

func dialector(conf configs.DB) gorm.Dialector {
	if conf.Driver == configs.DriverSQLite {
		return sqlite.Open(conf.Path + "?_pragma=foreign_keys(1)")
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		conf.Host, conf.User, conf.Password, conf.Database, conf.Port)

	return postgres.Open(dsn)
}

// Migrate creates or updates the journal schema.
func (r *Repository) Migrate() error {
	return r.DB.AutoMigrate(
		&model.OriginMaster{}, &model.BeanMaster{}, &model.Shop{},
		&model.CoffeeBean{},
		&model.Dripper{}, &model.Filter{},
		&model.TastingEntry{}, &model.TastingNote{})
}

func (r *Repository) Close() {
	sqlDB, err := r.DB.DB()
	if err == nil && sqlDB != nil {
		_ = sqlDB.Close()
	}
}
