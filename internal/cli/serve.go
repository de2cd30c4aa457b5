package cli

import (
	"fmt"

	"github.com/opendatatools/odcheck/internal/cli/shared"
	"github.com/opendatatools/odcheck/internal/schema"
	"github.com/opendatatools/odcheck/internal/web"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web contract editor",
	Long: `Start a local web server with a form-based contract editor. The
form is rendered from the schema's declared properties, nested object
schemas become nested fieldsets, and a valid contract can be downloaded
as JSON.`,
	Example: `  # Edit ODCS contracts in the browser
  odcheck serve

  # Use the ODPS schema on another port
  odcheck serve --schema odps --addr localhost:9000`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.GroupID = shared.GroupAuthoring
	serveCmd.Flags().String("schema", "odcs", "Schema to edit against (odps|odcs)")
	serveCmd.Flags().String("addr", "", "Listen address (default from config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
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

	addr := cfg.ListenAddr
	if flagAddr, _ := cmd.Flags().GetString("addr"); flagAddr != "" {
		addr = flagAddr
	}

	server, err := web.NewServer(kind, cfg.SchemaDir)
	if err != nil {
		return fmt.Errorf("starting editor: %w", err)
	}

	colors := shared.NewColors()
	fmt.Fprintf(cmd.OutOrStdout(), "%s contract editor listening on %s\n",
		colors.Green(shared.MarkPass), colors.Bold("http://"+addr))
	return server.Start(addr)
}
