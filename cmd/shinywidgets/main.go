package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shinywidgets",
		Short: "Input widgets and pop-up dialogs for server-driven web apps",
		Long: `shinyWidgets renders decorated form input widgets on the server and
drives SweetAlert2 pop-up dialogs over a websocket session.

The serve command runs a demo gallery exercising every widget and every
dialog relay.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
