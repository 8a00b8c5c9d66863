// internal/commands/run.go
package commands

import "github.com/spf13/cobra"

// runCmd groups the experiment run modes.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a comprehension experiment",
}

func init() {
	rootCmd.AddCommand(runCmd)
}
