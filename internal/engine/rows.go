package engine

import (
	"database/sql"
	"fmt"

	"github.com/leapstack-labs/modelsql/pkg/command"
)

// scanRows drains a sql.Rows into an in-memory result. Forwarded
// statements are interactive, so result sets are expected to be small.
func scanRows(rows *sql.Rows) (*command.Result, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("failed to read result columns: %w", err)
	}

	result := &command.Result{Columns: columns}
	for rows.Next() {
		values := make([]any, len(columns))
		ptrs := make([]any, len(columns))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan result row: %w", err)
		}
		for i, v := range values {
			// Drivers hand back []byte for text columns; keep results printable.
			if b, ok := v.([]byte); ok {
				values[i] = string(b)
			}
		}
		result.Rows = append(result.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating result rows: %w", err)
	}
	return result, nil
}
