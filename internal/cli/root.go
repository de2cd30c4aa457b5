// Package cli provides the Cobra-based CLI commands for odcheck: schema
// validation of ODPS/ODCS documents (validate, product, contracts,
// naming), contract authoring (edit, serve), and utilities (schema, init,
// version).
package cli

import (
	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/config"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupValidation    = shared.GroupValidation
	GroupAuthoring     = shared.GroupAuthoring
	GroupConfiguration = shared.GroupConfiguration
)

var rootCmd = &cobra.Command{
	Use:   "odcheck",
	Short: "ODPS/ODCS data product and contract validation",
	Long: `odcheck validates data product descriptions (ODPS) and data
contracts (ODCS) against their JSON Schemas, and helps author contracts
interactively in the terminal or a local web form.`,
	Example: `  # Validate dataproduct.yaml and all contracts in the current repo
  odcheck validate

  # Validate a single contract directory
  odcheck contracts ./contracts

  # Edit a contract interactively, validating before save
  odcheck edit contracts/billing-data-v1.0.0.yaml

  # Author a contract in the browser
  odcheck serve`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddGroup(&cobra.Group{ID: GroupValidation, Title: "Validation:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupAuthoring, Title: "Authoring:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})

	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	rootCmd.PersistentFlags().StringP("config", "c", ".odcheck/config.json", "Path to config file")
	rootCmd.PersistentFlags().String("schema-dir", "", "Directory with schema overrides (odps-schema-v4.0.json, odcs-schema-v3.0.json)")
}

// loadConfig loads the configuration honoring the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Configuration, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("schema-dir") {
		cfg.SchemaDir, _ = cmd.Flags().GetString("schema-dir")
	}
	return cfg, nil
}
