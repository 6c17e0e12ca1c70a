package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

func init() {
	Register("duckdb", func(logger *slog.Logger) Adapter { return NewDuckDB(logger) })
}

// DuckDBAdapter runs forwarded SQL against a DuckDB database.
type DuckDBAdapter struct {
	BaseSQLAdapter
}

// NewDuckDB creates a new DuckDB adapter instance.
// If logger is nil, a discard logger is used.
func NewDuckDB(logger *slog.Logger) *DuckDBAdapter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &DuckDBAdapter{
		BaseSQLAdapter: BaseSQLAdapter{Logger: logger},
	}
}

// Connect establishes a connection to DuckDB.
// An empty path opens an in-memory database.
func (a *DuckDBAdapter) Connect(ctx context.Context, cfg Config) error {
	path := cfg.Path
	if path == "" {
		path = ":memory:"
	}

	a.Logger.Debug("connecting to duckdb", slog.String("path", path))

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return fmt.Errorf("failed to open duckdb connection: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to ping duckdb: %w", err)
	}

	a.DB = db
	a.Cfg = cfg
	return nil
}

var _ Adapter = (*DuckDBAdapter)(nil)
