package cli

import (
	"fmt"
	"runtime"

	"github.com/opendatatools/odcheck/internal/build"
	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display version information",
	Long:  "Display version, commit, build date, and Go version information for odcheck",
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "odcheck version %s\n", build.Version)
		fmt.Fprintf(out, "Built from commit: %s\n", build.Commit)
		fmt.Fprintf(out, "Build date: %s\n", build.BuildDate)
		fmt.Fprintf(out, "Go version: %s\n", runtime.Version())
	},
}

func init() {
	versionCmd.GroupID = shared.GroupConfiguration
	rootCmd.AddCommand(versionCmd)
}
