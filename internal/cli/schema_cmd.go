package cli

import (
	"fmt"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Inspect the bundled JSON Schemas",
	Long:  "List or print the bundled ODPS and ODCS JSON Schemas.",
}

var schemaListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bundled schemas",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		colors := shared.NewColors()
		for _, kind := range schema.Kinds() {
			line := fmt.Sprintf("%-6s %s  %s", kind, schema.Version(kind), colors.Dim(schema.Filename(kind)))
			if cfg.SchemaDir != "" {
				line += colors.Yellow(fmt.Sprintf("  (override dir: %s)", cfg.SchemaDir))
			}
			fmt.Fprintln(out, line)
		}
		return nil
	},
}

var schemaShowCmd = &cobra.Command{
	Use:   "show <odps|odcs>",
	Short: "Print a bundled schema as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		kind, err := schema.ParseKind(args[0])
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			return NewExitError(ExitInvalidArguments)
		}
		raw, err := schema.Raw(kind, cfg.SchemaDir)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(raw))
		return nil
	},
}

func init() {
	schemaCmd.GroupID = shared.GroupConfiguration
	schemaCmd.AddCommand(schemaListCmd)
	schemaCmd.AddCommand(schemaShowCmd)
	rootCmd.AddCommand(schemaCmd)
}
