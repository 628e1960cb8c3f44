package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "magemock",
	Short: "magemock is an in-memory mock of the Magento 2 REST API",
	Long: `magemock serves the subset of the Magento 2 REST API that integration
tests exercise: admin tokens, products and their media galleries, attributes,
stock items, categories, and order fulfillment (ship, invoice, cancel).

State lives in memory and can be seeded from YAML or JSON fixture files.
Configuration can be provided via flags, MAGEMOCK_* environment variables,
or a configuration file.`,
	SilenceUsage:  true,
	SilenceErrors: true, // We handle errors in Execute()
}

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
