package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// SQLOptions holds options for the sql command.
type SQLOptions struct {
	Input string
}

// NewSQLCommand creates the sql command.
func NewSQLCommand() *cobra.Command {
	opts := &SQLOptions{}

	cmd := &cobra.Command{
		Use:   "sql [SQL]",
		Short: "Execute SQL with model statement support",
		Long: `Execute a SQL statement. Model statements (CREATE MODEL, DESCRIBE MODEL,
DROP MODEL, SHOW MODELS) run against the model catalog; any other
statement is forwarded to the configured host database.

When invoked without arguments on a terminal, enters interactive REPL mode.`,
		Example: `  # Register a model
  modelsql sql "CREATE MODEL churn USING 's3://models/churn'"

  # Inspect it
  modelsql sql "DESCRIBE MODEL churn"

  # Forwarded to the host database
  modelsql sql "SELECT count(*) FROM orders"

  # Interactive mode
  modelsql sql`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSQL(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Input, "input", "i", "", "Read SQL from file")

	return cmd
}

func runSQL(cmd *cobra.Command, args []string, opts *SQLOptions) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	var sqlText string
	switch {
	case len(args) > 0:
		sqlText = strings.Join(args, " ")
	case opts.Input != "":
		content, err := os.ReadFile(opts.Input)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}
		sqlText = string(content)
	case !isTerminal(os.Stdin):
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		sqlText = string(content)
	default:
		return runREPL(cmd, cfg, logger)
	}

	eng, err := createEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	for _, stmt := range splitStatements(sqlText) {
		res, err := eng.Execute(cmd.Context(), stmt)
		if err != nil {
			return err
		}
		if err := renderResult(cmd.OutOrStdout(), res, cfg.Output); err != nil {
			return err
		}
	}
	return nil
}

// splitStatements breaks input on semicolons, keeping quoted strings intact.
func splitStatements(input string) []string {
	var stmts []string
	var b strings.Builder
	inString := false

	for i := 0; i < len(input); i++ {
		c := input[i]
		switch {
		case c == '\'':
			inString = !inString
			b.WriteByte(c)
		case c == ';' && !inString:
			if s := strings.TrimSpace(b.String()); s != "" {
				stmts = append(stmts, s)
			}
			b.Reset()
		default:
			b.WriteByte(c)
		}
	}
	if s := strings.TrimSpace(b.String()); s != "" {
		stmts = append(stmts, s)
	}
	return stmts
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
