package cli

import (
	"fmt"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/opendatatools/odcheck/internal/validation"
	"github.com/spf13/cobra"
)

var contractsCmd = &cobra.Command{
	Use:   "contracts [dir]",
	Short: "Validate all ODCS contracts in a directory",
	Long: `Validate every YAML file directly under the contracts directory
against the ODCS schema, plus the basic contract structure rules. Files
are checked independently; one failure does not stop the rest.

An empty directory passes (there is nothing to be invalid).`,
	Example: `  odcheck contracts
  odcheck contracts ./contracts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runContracts,
}

func init() {
	contractsCmd.GroupID = shared.GroupValidation
	rootCmd.AddCommand(contractsCmd)
}

func runContracts(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	dir := cfg.ContractsDir
	if len(args) == 1 {
		dir = args[0]
	}

	out := cmd.OutOrStdout()
	colors := shared.NewColors()

	validator, err := validation.New(schema.KindODCS, cfg.SchemaDir)
	if err != nil {
		fmt.Fprintf(out, "%s ODCS schema error: %v\n", colors.Red(shared.MarkFail), err)
		return NewExitError(ExitSchemaError)
	}

	reports, allValid, err := validation.CheckContracts(validator, dir)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", colors.Red(shared.MarkFail), err)
		return NewExitError(ExitValidationFailed)
	}
	if len(reports) == 0 {
		fmt.Fprintf(out, "%s no contract files in %s\n", colors.Yellow(shared.MarkWarn), dir)
		return nil
	}

	for _, report := range reports {
		printContractReport(out, colors, report)
	}
	if !allValid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
