// internal/results/estimate.go
package results

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// avgTokensPerQuery is the fixed planning constant for estimates:
// roughly 400 prompt tokens plus 200 response tokens.
const avgTokensPerQuery = 600

// CostThresholdUSD is the projected cost above which the operator must
// confirm before a sweep proceeds.
const CostThresholdUSD = 10.0

// costsPerThousandTokens is input pricing in USD per 1k tokens. Output
// pricing runs higher; the single figure is a deliberate rough average.
var costsPerThousandTokens = map[string]float64{
	"gpt-4":         0.03,
	"gpt-4-turbo":   0.01,
	"gpt-3.5-turbo": 0.001,
}

// defaultCostPerThousand is used for models absent from the table.
const defaultCostPerThousand = 0.03

// Estimate is a purely informational pre-run cost projection.
type Estimate struct {
	TotalQueries     int
	EstimatedTokens  int
	EstimatedCostUSD float64
	Model            string
}

// ExceedsThreshold reports whether the projection is high enough to require
// operator confirmation.
func (e Estimate) ExceedsThreshold() bool {
	return e.EstimatedCostUSD > CostThresholdUSD
}

// EstimateCost projects token usage and cost for a run of totalQueries
// requests against the given model, using the fixed price table and the
// average-tokens-per-query constant. It never blocks execution by itself.
func EstimateCost(totalQueries int, model string) Estimate {
	costPerThousand, ok := costsPerThousandTokens[model]
	if !ok {
		costPerThousand = defaultCostPerThousand
	}

	totalTokens := totalQueries * avgTokensPerQuery
	cost := float64(totalTokens) / 1000 * costPerThousand

	return Estimate{
		TotalQueries:     totalQueries,
		EstimatedTokens:  totalTokens,
		EstimatedCostUSD: math.Round(cost*100) / 100,
		Model:            model,
	}
}

// Banner renders the cost-estimate block shown before a sweep starts.
func (e Estimate) Banner() string {
	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	lineStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("255"))

	rule := strings.Repeat("=", 80)
	lines := []string{
		rule,
		headerStyle.Render("COST ESTIMATE"),
		rule,
		lineStyle.Render(fmt.Sprintf("Total queries: %d", e.TotalQueries)),
		lineStyle.Render(fmt.Sprintf("Estimated tokens: %d", e.EstimatedTokens)),
		lineStyle.Render(fmt.Sprintf("Estimated cost: $%.2f USD", e.EstimatedCostUSD)),
		lineStyle.Render(fmt.Sprintf("Model: %s", e.Model)),
		rule,
	}
	return strings.Join(lines, "\n")
}
