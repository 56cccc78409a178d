// Package initializer builds the process dependencies from configuration.
package initializer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/amirasaad/banksim/infra"
	"github.com/amirasaad/banksim/infra/cache"
	infra_provider "github.com/amirasaad/banksim/infra/provider"
	infra_repository "github.com/amirasaad/banksim/infra/repository"
	"github.com/amirasaad/banksim/pkg/app"
	"github.com/amirasaad/banksim/pkg/config"
	"github.com/amirasaad/banksim/pkg/provider"
	"github.com/amirasaad/banksim/pkg/repository"
	"gorm.io/gorm"
)

const connectTimeout = 10 * time.Second

// InitializeDependencies opens the database, applies migrations when enabled
// and selects the OTP store and SMS sender. The returned cleanup releases
// every connection that was opened.
func InitializeDependencies(cfg *config.App) (deps *app.Deps, cleanup func(), err error) {
	logger := setupLogger(cfg.Log)
	deps = &app.Deps{Logger: logger}

	var closers []func() error
	release := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if cerr := closers[i](); cerr != nil {
				logger.Warn("Failed to release resource", "error", cerr)
			}
		}
	}
	defer func() {
		if err != nil {
			release()
		}
	}()

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		logger.Error("Failed to initialize database", "error", err)
		return nil, nil, err
	}
	closers = append(closers, sqlCloser(db))

	if cfg.DB.AutoMigrate {
		if err = infra.RunMigrations(db); err != nil {
			return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("Database migrations applied")
	}
	deps.Uow = infra_repository.NewUoW(db)

	store, closeStore, err := newOtpStore(cfg.Redis, logger)
	if err != nil {
		return nil, nil, err
	}
	if closeStore != nil {
		closers = append(closers, closeStore)
	}
	deps.OtpStore = store

	sender, closeSender, err := newSMSSender(cfg.RabbitMQ, logger)
	if err != nil {
		return nil, nil, err
	}
	if closeSender != nil {
		closers = append(closers, closeSender)
	}
	deps.SMSSender = sender

	return deps, release, nil
}

func sqlCloser(db *gorm.DB) func() error {
	return func() error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}
}

// newOtpStore uses Redis when a URL is configured and process memory otherwise.
func newOtpStore(cfg *config.Redis, logger *slog.Logger) (repository.OtpStore, func() error, error) {
	if cfg == nil || cfg.URL == "" {
		logger.Info("Using in-memory OTP store")
		return cache.NewMemoryOtpStore(), nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	store, err := cache.NewRedisOtpStoreFromURL(ctx, cfg.URL, cfg.KeyPrefix, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create Redis OTP store: %w", err)
	}
	logger.Info("Using Redis OTP store", "prefix", cfg.KeyPrefix)
	return store, store.Close, nil
}

// newSMSSender publishes to RabbitMQ when a URL is configured and only logs otherwise.
func newSMSSender(cfg *config.RabbitMQ, logger *slog.Logger) (provider.SMSSender, func() error, error) {
	if cfg == nil || cfg.URL == "" {
		logger.Info("Using log SMS sender")
		return infra_provider.NewLogSMSSender(logger), nil, nil
	}
	if cfg.Exchange == "" {
		return nil, nil, errors.New("RABBITMQ_EXCHANGE is required with RABBITMQ_URL")
	}

	sender, err := infra_provider.NewRabbitMQSMSSender(cfg.URL, cfg.Exchange, cfg.RoutingKey, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create RabbitMQ SMS sender: %w", err)
	}
	logger.Info("Using RabbitMQ SMS sender", "exchange", cfg.Exchange, "routing_key", cfg.RoutingKey)
	return sender, sender.Close, nil
}
