// Package cmd holds the skyline subcommands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/gravitrone/skyline/internal/catalog"
	"github.com/gravitrone/skyline/internal/config"
	"github.com/gravitrone/skyline/internal/logging"
	"github.com/gravitrone/skyline/internal/store"
)

// Env is what a subcommand works with.
type Env struct {
	Config *config.Config
	Logger *zap.Logger
	Store  *store.Store
	Repo   *catalog.Repository
}

// LoadConfig returns the config file, or defaults when there is none.
func LoadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return cfg, err
}

// Open loads the config, builds the logger and opens the store.
func Open(ctx context.Context) (*Env, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogPath, cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	s, err := store.Open(ctx, cfg.StorePath, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Env{
		Config: cfg,
		Logger: logger,
		Store:  s,
		Repo:   catalog.NewRepository(s, logger),
	}, nil
}

// Close releases the store and flushes the log.
func (e *Env) Close() error {
	err := e.Store.Close()
	_ = e.Logger.Sync()
	return err
}
