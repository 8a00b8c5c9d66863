// internal/commands/sweep.go
package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/mwiater/personasweep/internal/catalog"
	"github.com/mwiater/personasweep/internal/executor"
	"github.com/mwiater/personasweep/internal/experiment"
	"github.com/mwiater/personasweep/internal/persona"
	"github.com/mwiater/personasweep/internal/results"
	"github.com/spf13/cobra"
)

// runSweepCmd performs the full cartesian sweep defined by the config file.
var runSweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the full persona × summary × question sweep from the config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := GetConfig()
		cat := catalog.Default()
		spec := persona.Spec(cfg.PersonaVariations)

		totalQueries, err := sweepQueryCount(cfg.PersonaVariations, cfg.DischargeSummaryIDs, cfg.QuestionIDs, cfg.MaxPersonas, cat)
		if err != nil {
			return err
		}

		est := results.EstimateCost(totalQueries, cfg.Model)
		fmt.Println(est.Banner())

		if est.ExceedsThreshold() {
			ok, err := confirm(cmd.InOrStdin(), fmt.Sprintf("\nEstimated cost is $%.2f. Continue? (yes/no): ", est.EstimatedCostUSD))
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Experiment cancelled.")
				return nil
			}
		}

		apiKey, err := executor.APIKeyFromEnv()
		if err != nil {
			return err
		}

		runner := &experiment.Runner{
			Catalog: cat,
			Exec:    executor.New(*cfg, apiKey),
			Opts: experiment.Options{
				Model:                cfg.Model,
				Temperature:          cfg.SamplingTemperature(),
				MaxTokens:            cfg.CompletionMaxTokens(),
				MaxPersonas:          cfg.MaxPersonas,
				ReasoningInstruction: cfg.ReasoningInstruction,
			},
		}

		fmt.Println("\nStarting experiment...")
		report, err := runner.RunSweep(cmd.Context(), spec, cfg.DischargeSummaryIDs, cfg.QuestionIDs)
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
	runCmd.AddCommand(runSweepCmd)
}

// sweepQueryCount computes how many requests a sweep will issue, honoring
// the persona limit and the catalog defaults for empty id lists.
func sweepQueryCount(variations map[string][]string, documentIDs, questionIDs []string, maxPersonas int, cat *catalog.Catalog) (int, error) {
	personaCount, err := persona.Count(persona.Spec(variations))
	if err != nil {
		return 0, err
	}
	if maxPersonas > 0 && personaCount > maxPersonas {
		personaCount = maxPersonas
	}

	numDocuments := len(documentIDs)
	if numDocuments == 0 {
		numDocuments = len(cat.DocumentIDs())
	}
	numQuestions := len(questionIDs)
	if numQuestions == 0 {
		numQuestions = len(cat.QuestionIDs())
	}

	return personaCount * numDocuments * numQuestions, nil
}

// confirm asks the operator a yes/no question. Only "yes" and "y"
// (case-insensitive) proceed.
func confirm(in io.Reader, promptText string) (bool, error) {
	fmt.Print(promptText)
	reader := bufio.NewReader(in)
	answer, err := reader.ReadString('\n')
	if err != nil && answer == "" {
		return false, fmt.Errorf("could not read confirmation: %w", err)
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "yes" || answer == "y", nil
}
