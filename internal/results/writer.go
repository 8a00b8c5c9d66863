// internal/results/writer.go
package results

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Save serializes the records to path as a single indented JSON array. There
// is no partial-write recovery: a failure here is fatal to the run.
func Save(records []Record, path string) error {
	if records == nil {
		records = []Record{}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating results file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(records); err != nil {
		return fmt.Errorf("error writing results to file: %w", err)
	}

	return nil
}

// Summary renders the post-run banner: where the results landed and how the
// queries broke down.
func Summary(records []Record, totalTokens int, path string) string {
	successful := 0
	for _, r := range records {
		if r.Succeeded() {
			successful++
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	rule := strings.Repeat("=", 80)
	lines := []string{
		rule,
		headerStyle.Render("SUMMARY"),
		rule,
		lineStyle.Render(fmt.Sprintf("Results saved to: %s", path)),
		lineStyle.Render(fmt.Sprintf("Successful queries: %d/%d", successful, len(records))),
		lineStyle.Render(fmt.Sprintf("Total tokens used: %d", totalTokens)),
		rule,
	}
	return strings.Join(lines, "\n")
}
