package main

import (
	"fmt"
	"os"

	"github.com/opendatatools/odcheck/internal/cli"
	"github.com/opendatatools/odcheck/internal/cli/shared"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Exit-code errors already reported their details to the user.
		if !shared.IsExitError(err) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}
