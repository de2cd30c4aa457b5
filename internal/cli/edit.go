package cli

import (
	"fmt"
	"os"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/contract"
	"github.com/opendatatools/odcheck/internal/editor"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/opendatatools/odcheck/internal/validation"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit <file>",
	Short: "Edit a contract interactively in the terminal",
	Long: `Walk the schema's declared properties and prompt for each value.
Empty input keeps the current value; array values are entered as
comma-separated lists.

The edited document is validated before saving. An invalid document is
reported and NOT written to disk.`,
	Example: `  # Edit (or create) a contract against the ODCS schema
  odcheck edit contracts/billing-data-v1.0.0.yaml

  # Edit a data product description against the ODPS schema
  odcheck edit dataproduct.yaml --schema odps`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.GroupID = shared.GroupAuthoring
	editCmd.Flags().String("schema", "odcs", "Schema to edit against (odps|odcs)")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	schemaName, _ := cmd.Flags().GetString("schema")
	kind, err := schema.ParseKind(schemaName)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return NewExitError(ExitInvalidArguments)
	}

	path := args[0]
	out := cmd.OutOrStdout()
	colors := shared.NewColors()

	raw, err := schema.Raw(kind, cfg.SchemaDir)
	if err != nil {
		return fmt.Errorf("loading %s schema: %w", kind, err)
	}
	fields, err := schema.ParseFields(raw)
	if err != nil {
		return fmt.Errorf("reading %s schema properties: %w", kind, err)
	}
	validator, err := validation.New(kind, cfg.SchemaDir)
	if err != nil {
		fmt.Fprintf(out, "%s schema error: %v\n", colors.Red(shared.MarkFail), err)
		return NewExitError(ExitSchemaError)
	}

	data := contract.Document{}
	if _, statErr := os.Stat(path); statErr == nil {
		data, err = contract.Load(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "%s loaded existing contract: %s\n", colors.Green(shared.MarkPass), path)
	} else {
		fmt.Fprintf(out, "%s no existing contract at %s, starting fresh\n", colors.Yellow(shared.MarkWarn), path)
	}

	ed := editor.New(cmd.InOrStdin(), out)
	data = ed.Run(fields, data)

	result := validator.Validate(data)
	if !result.Valid {
		printResult(out, colors, path, result)
		fmt.Fprintf(out, "%s contract is invalid, changes not saved\n", colors.Yellow(shared.MarkWarn))
		return NewExitError(ExitValidationFailed)
	}

	if err := contract.Save(path, data); err != nil {
		return err
	}
	fmt.Fprintf(out, "%s contract is valid, saved to %s\n", colors.Green(shared.MarkPass), path)
	return nil
}
