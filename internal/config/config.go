// Package config loads project configuration for modelsql. Values come
// from modelsql.yaml, MODELSQL_-prefixed environment variables, and CLI
// flags, in increasing order of precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/modelsql/internal/adapter"
)

// Default configuration values.
const (
	DefaultCatalogPath = "modelsql.db"
	DefaultOutput      = "table"
)

// Config holds the full runtime configuration.
type Config struct {
	// CatalogPath is the SQLite file backing the model catalog.
	// ":memory:" keeps the catalog in memory for the session.
	CatalogPath string `koanf:"catalog_path"`

	// Output selects the result rendering: table, json, or csv.
	Output string `koanf:"output"`

	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`

	// Target is the host database that receives forwarded statements.
	Target *adapter.Config `koanf:"target"`
}

// Validate checks the configuration for values that cannot work.
func (c *Config) Validate() error {
	switch c.Output {
	case "table", "json", "csv":
	default:
		return fmt.Errorf("invalid output format %q: expected table, json, or csv", c.Output)
	}

	if c.Target != nil && c.Target.Type != "" {
		if !adapter.IsRegistered(strings.ToLower(c.Target.Type)) {
			return &adapter.UnknownAdapterError{
				Type:      c.Target.Type,
				Available: adapter.List(),
			}
		}
	}
	return nil
}
