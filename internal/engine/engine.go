// Package engine executes SQL against a model catalog and a host database.
// Recognized model statements run as catalog commands; everything else is
// forwarded to the host database untouched.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/leapstack-labs/modelsql/internal/adapter"
	"github.com/leapstack-labs/modelsql/pkg/catalog"
	"github.com/leapstack-labs/modelsql/pkg/command"
	"github.com/leapstack-labs/modelsql/pkg/parser"
)

// Engine routes statements between the model catalog and the host database.
type Engine struct {
	catalog catalog.Catalog
	logger  *slog.Logger

	// Host database adapter (lazy initialized)
	db          adapter.Adapter
	dbConfig    adapter.Config
	dbConnected bool
	dbMu        sync.Mutex
}

// Config holds engine configuration.
type Config struct {
	// Catalog stores registered models. Required.
	Catalog catalog.Catalog
	// Target contains the host database configuration. Optional; without
	// it, unrecognized statements fail instead of being forwarded.
	Target *adapter.Config
	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// New creates a new engine with a lazy host database connection.
// The adapter is only connected when a statement needs forwarding.
func New(cfg Config) (*Engine, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("engine requires a catalog")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	e := &Engine{
		catalog: cfg.Catalog,
		logger:  logger,
	}
	if cfg.Target != nil {
		e.dbConfig = *cfg.Target
	}
	return e, nil
}

// Execute parses one statement and runs it. Model statements run against
// the catalog; anything else is forwarded to the host database.
func (e *Engine) Execute(ctx context.Context, sql string) (*command.Result, error) {
	stmt, err := parser.Parse(sql)
	if err != nil {
		return nil, err
	}

	if pass, ok := stmt.(*parser.Passthrough); ok {
		return e.forward(ctx, pass.SQL)
	}

	cmd, err := command.Build(stmt)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("running model command", "command", fmt.Sprintf("%T", cmd))
	return cmd.Run(ctx, e.catalog)
}

// forward sends an unrecognized statement to the host database and scans
// any returned rows into a result.
func (e *Engine) forward(ctx context.Context, sql string) (*command.Result, error) {
	db, err := e.hostDB(ctx)
	if err != nil {
		return nil, err
	}

	e.logger.Debug("forwarding statement to host database", "type", e.dbConfig.Type)

	rows, err := db.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	return scanRows(rows)
}

// hostDB returns the connected adapter, connecting on first use.
func (e *Engine) hostDB(ctx context.Context) (adapter.Adapter, error) {
	e.dbMu.Lock()
	defer e.dbMu.Unlock()

	if e.dbConnected {
		return e.db, nil
	}

	if e.dbConfig.Type == "" {
		return nil, fmt.Errorf("no host database configured: statement is not a model statement")
	}

	db, err := adapter.New(e.dbConfig, e.logger)
	if err != nil {
		return nil, err
	}
	if err := db.Connect(ctx, e.dbConfig); err != nil {
		return nil, fmt.Errorf("failed to connect to host database: %w", err)
	}

	e.db = db
	e.dbConnected = true
	return e.db, nil
}

// Close releases the catalog and, if connected, the host database.
func (e *Engine) Close() error {
	e.dbMu.Lock()
	defer e.dbMu.Unlock()

	var firstErr error
	if e.dbConnected {
		if err := e.db.Close(); err != nil {
			firstErr = err
		}
		e.dbConnected = false
	}
	if err := e.catalog.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
