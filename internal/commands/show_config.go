// internal/commands/show_config.go
package commands

import (
	"github.com/k0kubun/pp"
	"github.com/spf13/cobra"
)

// showConfigCmd dumps the resolved experiment configuration.
var showConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the resolved experiment configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := pp.Println(GetConfig())
		return err
	},
}

func init() {
	rootCmd.AddCommand(showConfigCmd)
}
