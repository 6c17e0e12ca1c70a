package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leapstack-labs/modelsql/pkg/command"
)

// NewModelsCommand creates the models command group.
func NewModelsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "Manage the model catalog",
		Long: `Manage the model catalog directly, without going through SQL.

These commands mirror the model statements: create, describe, drop, and
list operate on the same catalog that CREATE MODEL and friends use.`,
	}

	cmd.AddCommand(newModelsListCommand())
	cmd.AddCommand(newModelsDescribeCommand())
	cmd.AddCommand(newModelsCreateCommand())
	cmd.AddCommand(newModelsDropCommand())

	return cmd
}

func newModelsListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runModelCommand(cmd, &command.ShowModels{})
		},
	}
}

func newModelsDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe NAME",
		Short: "Show a registered model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelCommand(cmd, &command.DescribeModel{Name: args[0]})
		},
	}
}

func newModelsCreateCommand() *cobra.Command {
	var (
		uri        string
		tableRef   string
		replace    bool
		optionArgs []string
	)

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Register a model",
		Example: `  # Register a model pointing at an artifact
  modelsql models create churn --uri s3://models/churn

  # Overwrite an existing entry, with options
  modelsql models create churn --uri s3://models/churn/v2 --replace --option flavor=xgboost`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := parseOptions(optionArgs)
			if err != nil {
				return err
			}
			return runModelCommand(cmd, &command.CreateModel{
				Name:    args[0],
				URI:     uri,
				Table:   tableRef,
				Replace: replace,
				Options: options,
			})
		},
	}

	cmd.Flags().StringVar(&uri, "uri", "", "Model artifact URI")
	cmd.Flags().StringVar(&tableRef, "table", "", "Source table backing the model")
	cmd.Flags().BoolVar(&replace, "replace", false, "Overwrite an existing model with the same name")
	cmd.Flags().StringArrayVar(&optionArgs, "option", nil, "Model option as key=value (repeatable)")

	return cmd
}

func newModelsDropCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drop NAME",
		Short: "Remove a registered model",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runModelCommand(cmd, &command.DropModel{Name: args[0]})
		},
	}
}

// runModelCommand runs one catalog command and renders its result.
func runModelCommand(cmd *cobra.Command, c command.Command) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	cat, err := openCatalog(cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = cat.Close() }()

	res, err := c.Run(cmd.Context(), cat)
	if err != nil {
		return err
	}
	return renderResult(cmd.OutOrStdout(), res, cfg.Output)
}

// parseOptions turns repeated key=value flags into a map.
func parseOptions(args []string) (map[string]string, error) {
	options := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid option %q: expected key=value", arg)
		}
		options[key] = value
	}
	return options, nil
}
