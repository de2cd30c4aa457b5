package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/briandowns/spinner"
	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/config"
	"github.com/opendatatools/odcheck/internal/contract"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/opendatatools/odcheck/internal/validation"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [dir]",
	Short: "Validate the data product and all contracts",
	Long: `Run the full validation: the ODPS data product file, every ODCS
contract under the contracts directory, and the file naming conventions.

The directory argument is the repository root to check (default: current
directory). Exit code 0 only when the product and every contract are
valid; naming issues are warnings and never affect the exit code.`,
	Example: `  # Validate the current repository
  odcheck validate

  # Validate another checkout
  odcheck validate ../billing-data-product`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.GroupID = shared.GroupValidation
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	base := "."
	if len(args) == 1 {
		base = args[0]
	}

	out := cmd.OutOrStdout()
	colors := shared.NewColors()
	allValid := true

	// ODPS product file
	productPath := resolvePath(base, cfg.ProductFile)
	if !validateProduct(cmd, cfg, productPath) {
		allValid = false
	}

	// ODCS contracts
	contractsDir := resolvePath(base, cfg.ContractsDir)
	if !validateContracts(cmd, cfg, contractsDir) {
		allValid = false
	}

	// Naming conventions are advisory only
	issues, err := validation.CheckNaming(base, contractsDir)
	if err != nil {
		return err
	}
	printNamingIssues(out, colors, issues)

	if !allValid {
		fmt.Fprintf(out, "\n%s validation failed, fix the issues above\n", colors.Red(shared.MarkFail))
		return NewExitError(ExitValidationFailed)
	}
	fmt.Fprintf(out, "\n%s all validations passed\n", colors.Green(shared.MarkPass))
	return nil
}

// validateProduct checks the ODPS product file and prints the outcome.
func validateProduct(cmd *cobra.Command, cfg *config.Configuration, productPath string) bool {
	out := cmd.OutOrStdout()
	colors := shared.NewColors()

	validator, err := validation.New(schema.KindODPS, cfg.SchemaDir)
	if err != nil {
		fmt.Fprintf(out, "%s ODPS schema error: %v\n", colors.Red(shared.MarkFail), err)
		return false
	}

	doc, err := contract.Load(productPath)
	if err != nil {
		fmt.Fprintf(out, "%s %s could not be checked: %v\n", colors.Red(shared.MarkFail), productPath, err)
		return false
	}

	result := validator.Validate(doc)
	printResult(out, colors, productPath, result)
	return result.Valid
}

// validateContracts checks every contract under contractsDir and prints
// the per-file outcomes. A spinner runs during the batch on a TTY.
func validateContracts(cmd *cobra.Command, cfg *config.Configuration, contractsDir string) bool {
	out := cmd.OutOrStdout()
	colors := shared.NewColors()

	validator, err := validation.New(schema.KindODCS, cfg.SchemaDir)
	if err != nil {
		fmt.Fprintf(out, "%s ODCS schema error: %v\n", colors.Red(shared.MarkFail), err)
		return false
	}

	files, err := validation.ContractFiles(contractsDir)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", colors.Red(shared.MarkFail), err)
		return false
	}
	if len(files) == 0 {
		fmt.Fprintf(out, "%s no contract files in %s\n", colors.Yellow(shared.MarkWarn), contractsDir)
		return true
	}

	var sp *spinner.Spinner
	if cfg.ShowProgress && shared.IsTTY() {
		sp = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		sp.Writer = os.Stderr
		sp.Start()
	}

	reports := make([]validation.ContractReport, 0, len(files))
	for _, path := range files {
		if sp != nil {
			sp.Suffix = " validating " + filepath.Base(path)
		}
		reports = append(reports, validation.CheckContract(validator, path))
	}
	if sp != nil {
		sp.Stop()
	}

	allValid := true
	for _, report := range reports {
		printContractReport(out, colors, report)
		if !report.Valid() {
			allValid = false
		}
	}
	return allValid
}

// resolvePath joins a configured relative path onto the base directory.
func resolvePath(base, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}
