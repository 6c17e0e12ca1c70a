// Package command defines logical commands: engine-neutral, executable
// representations of recognized model statements. A command is built once
// per parsed statement, is immutable, and is consumed exactly once by Run.
package command

import (
	"context"
	"sort"
	"strings"

	"github.com/leapstack-labs/modelsql/pkg/catalog"
)

// Result is the row set produced by running a command. Create and Drop
// return an empty result; Describe and Show return descriptive rows.
type Result struct {
	Columns []string
	Rows    [][]any
}

// Command is a logical operation against the model catalog. Run is
// synchronous: it returns or fails before the caller proceeds, with no
// internal retries or timeouts. Failures are catalog domain errors,
// distinguishable by kind from parse errors.
type Command interface {
	Run(ctx context.Context, cat catalog.Catalog) (*Result, error)
}

// CreateModel registers a model in the catalog.
type CreateModel struct {
	Name    string
	URI     string
	Table   string
	Replace bool
	Options map[string]string
}

// Run registers the model. Without Replace, an existing name fails with
// catalog.ErrExists; with Replace, the entry is overwritten.
func (c *CreateModel) Run(ctx context.Context, cat catalog.Catalog) (*Result, error) {
	model := &catalog.Model{
		Name:    c.Name,
		URI:     c.URI,
		Table:   c.Table,
		Options: c.Options,
	}
	if err := cat.Register(ctx, model, c.Replace); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

// DescribeModel reports a registered model's metadata.
type DescribeModel struct {
	Name string
}

// describeColumns are the columns of a DESCRIBE MODEL result.
var describeColumns = []string{"name", "uri", "table", "options", "created_at"}

// Run looks up the model and returns one descriptive row, or
// catalog.ErrNotFound if the name is not registered.
func (c *DescribeModel) Run(ctx context.Context, cat catalog.Catalog) (*Result, error) {
	model, err := cat.Lookup(ctx, c.Name)
	if err != nil {
		return nil, err
	}
	return &Result{
		Columns: describeColumns,
		Rows:    [][]any{describeRow(model)},
	}, nil
}

// DropModel removes a registered model.
type DropModel struct {
	Name string
}

// Run removes the model, or fails with catalog.ErrNotFound if no entry
// existed under the name.
func (c *DropModel) Run(ctx context.Context, cat catalog.Catalog) (*Result, error) {
	if err := cat.Remove(ctx, c.Name); err != nil {
		return nil, err
	}
	return &Result{}, nil
}

// ShowModels lists all registered models.
type ShowModels struct{}

// Run returns one descriptive row per registered model, ordered by name.
func (c *ShowModels) Run(ctx context.Context, cat catalog.Catalog) (*Result, error) {
	models, err := cat.List(ctx)
	if err != nil {
		return nil, err
	}

	result := &Result{Columns: describeColumns}
	for _, model := range models {
		result.Rows = append(result.Rows, describeRow(model))
	}
	return result, nil
}

// describeRow renders one catalog entry as a result row.
func describeRow(model *catalog.Model) []any {
	return []any{
		model.Name,
		model.URI,
		model.Table,
		formatOptions(model.Options),
		model.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
	}
}

// formatOptions renders an options map as "k=v" pairs in key order.
func formatOptions(options map[string]string) string {
	if len(options) == 0 {
		return ""
	}

	keys := make([]string, 0, len(options))
	for k := range options {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+options[k])
	}
	return strings.Join(pairs, ",")
}
