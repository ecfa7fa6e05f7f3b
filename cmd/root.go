// Package cmd provides the command-line interface for the logfire CLI.
// It implements subcommands for running dashboard queries and managing the
// stored token, using the Cobra framework with pterm terminal output.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "logfire",
	Short:         "Run Logfire dashboard queries from the terminal",
	Long:          `logfire is a command-line client for the Logfire "Explore" query API. It runs SQL queries against your Logfire data and renders the results as tables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("logfire %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}
