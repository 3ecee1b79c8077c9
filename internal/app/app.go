package app

import (
	"fmt"
	"io/fs"
	"time"

	"github.com/hance08/bankist/internal/config"
	"github.com/hance08/bankist/internal/model"
	"github.com/hance08/bankist/internal/observability"
	"github.com/hance08/bankist/internal/service"
	"github.com/hance08/bankist/internal/store"
	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Service *service.Service
	Store   store.Repository
	Logger  *zap.Logger
}

// NewApp opens the configured store, loads the startup accounts and wires the
// services. The returned cleanup closes the store.
func NewApp(cfg *config.Config, migrationFS fs.FS, logger *zap.Logger) (*App, func(), error) {
	return newApp(cfg, migrationFS, logger, model.DefaultSeed())
}

func newApp(cfg *config.Config, migrationFS fs.FS, logger *zap.Logger, seeds []model.SeedAccount) (*App, func(), error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	repo, err := store.Open(cfg.Store.Driver, cfg.Store.DSN, migrationFS)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	svc := service.NewService(repo, cfg, logger, observability.NewMetrics(), time.Now)
	if err := svc.Account.Bootstrap(seeds); err != nil {
		repo.Close()
		return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
	}

	logger.Debug("store ready",
		zap.String("driver", cfg.Store.Driver),
		zap.Int("accounts", len(seeds)),
	)

	cleanup := func() {
		if err := repo.Close(); err != nil {
			logger.Warn("error closing store", zap.Error(err))
		}
	}

	return &App{
		Config:  cfg,
		Service: svc,
		Store:   repo,
		Logger:  logger,
	}, cleanup, nil
}
