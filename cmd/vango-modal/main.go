// Command vango-modal serves and renders the modal dialog widget.
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

const banner = `
  ╦  ╦┌─┐┌┐┌┌─┐┌─┐  ┌┬┐┌─┐┌┬┐┌─┐┬
  ╚╗╔╝├─┤││││ ┬│ │  ││││ │ ││├─┤│
   ╚╝ ┴ ┴┘└┘└─┘└─┘  ┴ ┴└─┘─┴┘┴ ┴┴─┘
`

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "vango-modal",
		Short: "Server-rendered modal dialog widget",
		Long: `vango-modal renders a dialog overlay on the server.

Commands:
  • serve   run the interactive showcase over HTTP and WebSocket
  • render  print the widget's HTML for a size and position
  • version print build information`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		versionCmd(),
	)
	return rootCmd
}

// printBanner prints the ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}
