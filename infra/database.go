package infra

import (
	"database/sql"
	"errors"
	"time"

	"github.com/amirasaad/banksim/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	defaultMaxOpenConns    = 25
	defaultMaxIdleConns    = 25
	defaultConnMaxLifetime = time.Hour
)

// NewDBConnection opens the Postgres pool sized by cnf.
func NewDBConnection(cnf *config.DB, appEnv string) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(cnf.Url), gormConfig(appEnv))
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	configurePool(sqlDB, cnf)
	return db, nil
}

// gormConfig logs SQL only in development. Single writes run without an
// implicit transaction; UnitOfWork.Do opens one where it matters.
func gormConfig(appEnv string) *gorm.Config {
	level := logger.Silent
	if appEnv == "development" {
		level = logger.Info
	}
	return &gorm.Config{
		Logger:                 logger.Default.LogMode(level),
		SkipDefaultTransaction: true,
	}
}

func configurePool(sqlDB *sql.DB, cnf *config.DB) {
	maxOpen, maxIdle, lifetime := cnf.MaxOpenConns, cnf.MaxIdleConns, cnf.ConnMaxLifetime
	if maxOpen <= 0 {
		maxOpen = defaultMaxOpenConns
	}
	if maxIdle <= 0 {
		maxIdle = defaultMaxIdleConns
	}
	if lifetime <= 0 {
		lifetime = defaultConnMaxLifetime
	}
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(maxIdle)
	sqlDB.SetConnMaxLifetime(lifetime)
}
