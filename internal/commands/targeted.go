// internal/commands/targeted.go
package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mwiater/personasweep/internal/catalog"
	"github.com/mwiater/personasweep/internal/executor"
	"github.com/mwiater/personasweep/internal/experiment"
	"github.com/mwiater/personasweep/internal/results"
	"github.com/spf13/cobra"
)

var targetedCasesFile string

// runTargetedCmd executes an explicit list of (persona, summary, question)
// triples instead of the full sweep. The case count is already explicit, so
// no cost confirmation gate applies.
var runTargetedCmd = &cobra.Command{
	Use:   "targeted",
	Short: "Run an explicit list of persona/summary/question cases",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()

		cases, err := loadCases(targetedCasesFile)
		if err != nil {
			return err
		}

		apiKey, err := executor.APIKeyFromEnv()
		if err != nil {
			return err
		}

		runner := &experiment.Runner{
			Catalog: catalog.Default(),
			Exec:    executor.New(*cfg, apiKey),
			Opts: experiment.Options{
				Model:                cfg.Model,
				Temperature:          cfg.SamplingTemperature(),
				MaxTokens:            cfg.CompletionMaxTokens(),
				ReasoningInstruction: cfg.ReasoningInstruction,
			},
		}

		report, err := runner.RunTargeted(cmd.Context(), cases)
		if err != nil {
			return err
		}

		outputPath := cfg.OutputPath()
		if err := results.Save(report.Records, outputPath); err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(results.Summary(report.Records, report.TotalTokens, outputPath))

		return nil
	},
}

func init() {
	runCmd.AddCommand(runTargetedCmd)
	runTargetedCmd.Flags().StringVar(&targetedCasesFile, "cases", "", "JSON file with an array of {persona, discharge_summary_id, question_id} cases")
	_ = runTargetedCmd.MarkFlagRequired("cases")
}

// loadCases reads the targeted case list. An empty list is a configuration
// error: the run would do nothing.
func loadCases(path string) ([]experiment.Case, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read cases file %q: %w", path, err)
	}

	var cases []experiment.Case
	if err := json.Unmarshal(raw, &cases); err != nil {
		return nil, fmt.Errorf("could not parse cases file %q: %w", path, err)
	}
	if len(cases) == 0 {
		return nil, fmt.Errorf("cases file %q contains no cases", path)
	}

	return cases, nil
}
