package cli

import (
	"fmt"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/contract"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/opendatatools/odcheck/internal/validation"
	"github.com/spf13/cobra"
)

var productCmd = &cobra.Command{
	Use:   "product [file]",
	Short: "Validate one ODPS data product file",
	Long: `Validate a data product description against the ODPS schema.

Defaults to the configured product file (dataproduct.yaml).`,
	Example: `  odcheck product
  odcheck product ./dataproduct.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProduct,
}

func init() {
	productCmd.GroupID = shared.GroupValidation
	rootCmd.AddCommand(productCmd)
}

func runProduct(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	path := cfg.ProductFile
	if len(args) == 1 {
		path = args[0]
	}

	out := cmd.OutOrStdout()
	colors := shared.NewColors()

	validator, err := validation.New(schema.KindODPS, cfg.SchemaDir)
	if err != nil {
		fmt.Fprintf(out, "%s ODPS schema error: %v\n", colors.Red(shared.MarkFail), err)
		return NewExitError(ExitSchemaError)
	}

	doc, err := contract.Load(path)
	if err != nil {
		fmt.Fprintf(out, "%s %s could not be checked: %v\n", colors.Red(shared.MarkFail), path, err)
		return NewExitError(ExitValidationFailed)
	}

	result := validator.Validate(doc)
	printResult(out, colors, path, result)
	if !result.Valid {
		return NewExitError(ExitValidationFailed)
	}
	return nil
}
