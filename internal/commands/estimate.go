// internal/commands/estimate.go
package commands

import (
	"fmt"

	"github.com/k0kubun/pp"
	"github.com/mwiater/personasweep/internal/catalog"
	"github.com/mwiater/personasweep/internal/results"
	"github.com/spf13/cobra"
)

// estimateCmd prints the cost projection for the configured sweep without
// issuing any requests.
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Show the projected query count, token usage, and cost for the configured sweep",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		totalQueries, err := sweepQueryCount(cfg.PersonaVariations, cfg.DischargeSummaryIDs, cfg.QuestionIDs, cfg.MaxPersonas, catalog.Default())
		if err != nil {
			return err
		}

		est := results.EstimateCost(totalQueries, cfg.Model)
		if DebugEnabled() {
			_, _ = pp.Println(est)
		}
		fmt.Println(est.Banner())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(estimateCmd)
}
