package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize odcheck configuration",
	Long: `Write a starter configuration file with the default settings.

If the config already exists, it is left unchanged (use --force to
overwrite). With --product, a skeleton dataproduct.yaml is written too
when none exists.

Configuration precedence (highest to lowest):
  1. Environment variables (ODCHECK_*)
  2. Project config (.odcheck/config.json)
  3. User config (~/.odcheck/config.json)
  4. Built-in defaults`,
	Example: `  odcheck init
  odcheck init --product
  odcheck init --force`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	initCmd.GroupID = shared.GroupConfiguration
	initCmd.Flags().BoolP("force", "f", false, "Overwrite existing config with defaults")
	initCmd.Flags().Bool("product", false, "Also write a skeleton dataproduct.yaml")
	rootCmd.AddCommand(initCmd)
}

// productSkeleton is the starter ODPS document written by --product. It
// deliberately fails validation until the placeholders are filled in.
const productSkeleton = `schema: https://opendataproducts.org/v4.0/schema/odps.yaml
version: "4.0"
product:
  productID: ""
  name: ""
  description: ""
  visibility: private
  status: draft
  type: dataset
  tags: []
`

func runInit(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	withProduct, _ := cmd.Flags().GetBool("product")
	configPath, _ := cmd.Flags().GetString("config")

	out := cmd.OutOrStdout()
	colors := shared.NewColors()

	if _, err := os.Stat(configPath); err == nil && !force {
		fmt.Fprintf(out, "%s config already exists at %s (use --force to overwrite)\n",
			colors.Yellow(shared.MarkWarn), configPath)
	} else {
		if err := writeDefaultConfig(configPath); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s config written to %s\n", colors.Green(shared.MarkPass), configPath)
	}

	if withProduct {
		if _, err := os.Stat("dataproduct.yaml"); err == nil {
			fmt.Fprintf(out, "%s dataproduct.yaml already exists, leaving it unchanged\n",
				colors.Yellow(shared.MarkWarn))
		} else {
			if err := os.WriteFile("dataproduct.yaml", []byte(productSkeleton), 0o644); err != nil {
				return fmt.Errorf("writing dataproduct.yaml: %w", err)
			}
			fmt.Fprintf(out, "%s skeleton dataproduct.yaml written\n", colors.Green(shared.MarkPass))
		}
	}
	return nil
}

// writeDefaultConfig writes the built-in defaults as an indented JSON config.
func writeDefaultConfig(path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}
	data, err := json.MarshalIndent(config.GetDefaults(), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding default config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}
