// Package commands implements the modelsql subcommands.
package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/leapstack-labs/modelsql/internal/adapter"
	"github.com/leapstack-labs/modelsql/internal/config"
	"github.com/leapstack-labs/modelsql/internal/engine"
	"github.com/leapstack-labs/modelsql/pkg/catalog"
)

type configKey struct{}

type loggerKey struct{}

// WithConfig stores the loaded config in the context.
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		CatalogPath: config.DefaultCatalogPath,
		Output:      config.DefaultOutput,
	}
}

// WithLogger stores the logger in the context.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// openCatalog opens the catalog configured by catalog_path.
// ":memory:" gives a session-scoped in-memory catalog.
func openCatalog(cfg *config.Config, logger *slog.Logger) (catalog.Catalog, error) {
	if cfg.CatalogPath == ":memory:" {
		return catalog.NewMemory(), nil
	}

	dir := filepath.Dir(cfg.CatalogPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create catalog directory: %w", err)
		}
	}

	logger.Debug("opening catalog", "path", cfg.CatalogPath)
	return catalog.OpenSQLite(cfg.CatalogPath)
}

// createEngine builds an engine from the current configuration.
// The caller owns the engine and must Close it.
func createEngine(cfg *config.Config, logger *slog.Logger) (*engine.Engine, error) {
	cat, err := openCatalog(cfg, logger)
	if err != nil {
		return nil, err
	}

	var target *adapter.Config
	if cfg.Target != nil && cfg.Target.Type != "" {
		target = cfg.Target
	}

	eng, err := engine.New(engine.Config{
		Catalog: cat,
		Target:  target,
		Logger:  logger,
	})
	if err != nil {
		_ = cat.Close()
		return nil, err
	}
	return eng, nil
}
