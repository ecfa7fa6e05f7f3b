package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/WillDaSilva/logfire/internal/runenv"
)

// envCmd prints the detected execution context, mainly useful when debugging
// why queries or display behave differently between hosts.
var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Show the detected execution environment",
	RunE: func(cmd *cobra.Command, args []string) error {
		env := runenv.Detect()
		fmt.Printf("environment: %s\n", env.Kind())
		fmt.Printf("sandboxed:   %v\n", env.Sandboxed)
		fmt.Printf("notebook:    %v\n", env.Notebook)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(envCmd)
}
