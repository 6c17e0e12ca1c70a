package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/leapstack-labs/modelsql/internal/config"
)

func runREPL(cmd *cobra.Command, cfg *config.Config, logger *slog.Logger) error {
	ctx := cmd.Context()

	eng, err := createEngine(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = eng.Close() }()

	historyFile := filepath.Join(filepath.Dir(cfg.CatalogPath), ".modelsql_history")

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "modelsql> ",
		HistoryFile:     historyFile,
		AutoComplete:    replCompleter(),
		InterruptPrompt: "^C",
		EOFPrompt:       ".quit",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize REPL: %w", err)
	}
	defer func() { _ = rl.Close() }()

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "modelsql REPL (catalog: %s)\n", cfg.CatalogPath)
	_, _ = fmt.Fprintln(out, "Type .help for commands, .quit to exit")
	_, _ = fmt.Fprintln(out)

	var buf strings.Builder
	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			buf.Reset()
			rl.SetPrompt("modelsql> ")
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if line == ".quit" || line == ".exit" {
				break
			}
			handleDotCommand(out, line)
			continue
		}

		// Accumulate multi-line SQL until semicolon
		buf.WriteString(line)
		if !strings.HasSuffix(line, ";") {
			buf.WriteString(" ")
			rl.SetPrompt("     ...> ")
			continue
		}
		rl.SetPrompt("modelsql> ")

		sqlText := strings.TrimSuffix(buf.String(), ";")
		buf.Reset()

		res, err := eng.Execute(ctx, sqlText)
		if err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			continue
		}
		if err := renderResult(out, res, cfg.Output); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		}
		_, _ = fmt.Fprintln(out)
	}

	return nil
}

func replCompleter() readline.AutoCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("CREATE", readline.PcItem("MODEL")),
		readline.PcItem("DESCRIBE", readline.PcItem("MODEL")),
		readline.PcItem("DROP", readline.PcItem("MODEL")),
		readline.PcItem("SHOW", readline.PcItem("MODELS")),
		readline.PcItem("SELECT"),
		readline.PcItem(".help"),
		readline.PcItem(".quit"),
	)
}

func handleDotCommand(out io.Writer, line string) {
	switch strings.ToLower(strings.Fields(line)[0]) {
	case ".help":
		_, _ = fmt.Fprintln(out, "Commands:")
		_, _ = fmt.Fprintln(out, "  .help          Show this help")
		_, _ = fmt.Fprintln(out, "  .quit, .exit   Exit the REPL")
		_, _ = fmt.Fprintln(out)
		_, _ = fmt.Fprintln(out, "Statements end with a semicolon. Model statements:")
		_, _ = fmt.Fprintln(out, "  CREATE MODEL name [USING 'uri'];")
		_, _ = fmt.Fprintln(out, "  DESCRIBE MODEL name;")
		_, _ = fmt.Fprintln(out, "  DROP MODEL name;")
		_, _ = fmt.Fprintln(out, "  SHOW MODELS;")
	default:
		_, _ = fmt.Fprintf(out, "Unknown command: %s (try .help)\n", line)
	}
}
