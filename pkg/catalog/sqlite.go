package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // sqlite driver
)

// SQLite is a Catalog backed by a SQLite database, so registrations
// survive across sessions. SQLite's single-writer discipline plus the
// per-name transactions below serialize conflicting operations.
type SQLite struct {
	db   *sql.DB
	path string
}

// OpenSQLite opens (creating if necessary) a SQLite catalog at path.
// Use ":memory:" for an ephemeral database.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}

	// A single connection keeps :memory: databases coherent and lets
	// SQLite serialize writers.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping catalog database: %w", err)
	}

	if err := migrate(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &SQLite{db: db, path: path}, nil
}

// Register adds a model under its name.
func (c *SQLite) Register(ctx context.Context, model *Model, replace bool) error {
	optionsJSON, err := marshalOptions(model.Options)
	if err != nil {
		return err
	}

	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM models WHERE name = ?`, model.Name).Scan(&id)
	switch {
	case err == nil:
		if !replace {
			return exists(model.Name)
		}
		_, err = tx.ExecContext(ctx,
			`UPDATE models SET uri = ?, table_ref = ?, options = ?, created_at = ? WHERE id = ?`,
			model.URI, model.Table, optionsJSON, time.Now().UTC(), id)
		if err != nil {
			return fmt.Errorf("failed to replace model %s: %w", model.Name, err)
		}
	case errors.Is(err, sql.ErrNoRows):
		_, err = tx.ExecContext(ctx,
			`INSERT INTO models (id, name, uri, table_ref, options, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), model.Name, model.URI, model.Table, optionsJSON, time.Now().UTC())
		if err != nil {
			return fmt.Errorf("failed to register model %s: %w", model.Name, err)
		}
	default:
		return fmt.Errorf("failed to check existing model: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit registration: %w", err)
	}
	return nil
}

// Lookup returns the model registered under name.
func (c *SQLite) Lookup(ctx context.Context, name string) (*Model, error) {
	row := c.db.QueryRowContext(ctx,
		`SELECT name, uri, table_ref, options, created_at FROM models WHERE name = ?`, name)

	model, err := scanModel(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up model %s: %w", name, err)
	}
	return model, nil
}

// Remove deletes the model registered under name.
func (c *SQLite) Remove(ctx context.Context, name string) error {
	result, err := c.db.ExecContext(ctx, `DELETE FROM models WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to remove model %s: %w", name, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check removal result: %w", err)
	}
	if affected == 0 {
		return notFound(name)
	}
	return nil
}

// List returns all registered models ordered by name.
func (c *SQLite) List(ctx context.Context) ([]*Model, error) {
	rows, err := c.db.QueryContext(ctx,
		`SELECT name, uri, table_ref, options, created_at FROM models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var models []*Model
	for rows.Next() {
		model, err := scanModel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, model)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate models: %w", err)
	}
	return models, nil
}

// Close closes the underlying database.
func (c *SQLite) Close() error {
	return c.db.Close()
}

// scanner abstracts *sql.Row and *sql.Rows for scanModel.
type scanner interface {
	Scan(dest ...any) error
}

// scanModel scans one catalog row.
func scanModel(s scanner) (*Model, error) {
	var (
		model       Model
		optionsJSON string
	)
	if err := s.Scan(&model.Name, &model.URI, &model.Table, &optionsJSON, &model.CreatedAt); err != nil {
		return nil, err
	}

	if optionsJSON != "" && optionsJSON != "{}" {
		if err := json.Unmarshal([]byte(optionsJSON), &model.Options); err != nil {
			return nil, fmt.Errorf("failed to decode options for %s: %w", model.Name, err)
		}
	}
	return &model, nil
}

// marshalOptions serializes the options map to JSON for storage.
func marshalOptions(options map[string]string) (string, error) {
	if len(options) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(options)
	if err != nil {
		return "", fmt.Errorf("failed to encode options: %w", err)
	}
	return string(data), nil
}
