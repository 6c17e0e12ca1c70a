// Package catalog provides the model catalog: a registry mapping model
// names to their metadata (location, table binding, options).
//
// Two implementations are provided: an in-memory catalog for ephemeral
// sessions and tests, and a SQLite-backed catalog for persistence across
// sessions. Both serialize conflicting operations on the same name.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Domain errors. Distinguishable from each other and from parse errors
// via errors.Is; callers can recover (retry with replace, check existence
// first) where a structural error would mean malformed input.
var (
	// ErrNotFound indicates a lookup or removal against a name that is
	// not registered.
	ErrNotFound = errors.New("model not found")

	// ErrExists indicates a registration without replace against a name
	// that is already registered.
	ErrExists = errors.New("model already exists")
)

// notFound wraps ErrNotFound with the offending name.
func notFound(name string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, name)
}

// exists wraps ErrExists with the offending name.
func exists(name string) error {
	return fmt.Errorf("%w: %s", ErrExists, name)
}

// Model is a catalog entry. Name is the model identity, unique within a
// catalog. URI points at the serialized model artifact; Table optionally
// binds the model to a table; Options carries registration options.
type Model struct {
	Name      string
	URI       string
	Table     string
	Options   map[string]string
	CreatedAt time.Time
}

// Clone returns a deep copy of the model.
func (m *Model) Clone() *Model {
	c := *m
	if m.Options != nil {
		c.Options = make(map[string]string, len(m.Options))
		for k, v := range m.Options {
			c.Options[k] = v
		}
	}
	return &c
}

// Catalog is the registry contract the command layer executes against.
// Implementations must make each operation atomic with respect to a
// single name: racing Register/Remove pairs on one name resolve to
// at most one winner.
type Catalog interface {
	// Register adds a model under its name. Without replace, an existing
	// name fails with ErrExists; with replace, the entry is overwritten.
	Register(ctx context.Context, model *Model, replace bool) error

	// Lookup returns the model registered under name, or ErrNotFound.
	Lookup(ctx context.Context, name string) (*Model, error)

	// Remove deletes the model registered under name, or fails with
	// ErrNotFound if no such entry existed.
	Remove(ctx context.Context, name string) error

	// List returns all registered models, ordered by name.
	List(ctx context.Context) ([]*Model, error)

	// Close releases any resources held by the catalog.
	Close() error
}
