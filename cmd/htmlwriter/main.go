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
		Use:   "htmlwriter",
		Short: "Render HTML tags from CSS-selector-like shorthand",
		Long: `htmlwriter renders HTML markup from compact selector expressions.

A selector expression names one element: an optional tag (default div),
an optional #id, any number of .class fragments, and optional bracketed
[key=value] attributes.

Examples:
  htmlwriter tag 'div#main.card' --content 'Hello'
  htmlwriter open 'a.button[href=/x]'
  htmlwriter close 'div#main.card'
  htmlwriter serve --addr :8780`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		tagCmd(),
		openCmd(),
		closeCmd(),
		serveCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
