package cli

import (
	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/validation"
	"github.com/spf13/cobra"
)

var namingCmd = &cobra.Command{
	Use:   "naming [dir]",
	Short: "Check file naming conventions",
	Long: `Check the repository file naming conventions: contract files must
follow 'name-with-dashes-vX.Y.Z.yaml' and root-level YAML files must be
all-lowercase.

Violations are warnings; this command always exits 0.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNaming,
}

func init() {
	namingCmd.GroupID = shared.GroupValidation
	rootCmd.AddCommand(namingCmd)
}

func runNaming(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	base := "."
	if len(args) == 1 {
		base = args[0]
	}

	issues, err := validation.CheckNaming(base, resolvePath(base, cfg.ContractsDir))
	if err != nil {
		return err
	}
	printNamingIssues(cmd.OutOrStdout(), shared.NewColors(), issues)
	return nil
}
