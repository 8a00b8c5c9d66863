// internal/experiment/experiment.go
// Package experiment drives the two run modes over the catalog, persona
// enumerator, prompt builder, and query executor. Execution is strictly
// sequential: one outcome fully resolves before the next request is issued.
package experiment

import (
	"context"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/mwiater/personasweep/internal/catalog"
	"github.com/mwiater/personasweep/internal/executor"
	"github.com/mwiater/personasweep/internal/logging"
	"github.com/mwiater/personasweep/internal/persona"
	"github.com/mwiater/personasweep/internal/prompt"
	"github.com/mwiater/personasweep/internal/results"
	"github.com/mwiater/personasweep/internal/util"
)

// Executor issues one request per prompt. *executor.Client satisfies this;
// tests substitute a fake.
type Executor interface {
	Execute(ctx context.Context, userPrompt, model string, temperature float64, maxTokens int) (executor.Outcome, error)
}

// Options holds the per-run knobs shared by both entry points.
type Options struct {
	Model                string
	Temperature          float64
	MaxTokens            int
	MaxPersonas          int
	ReasoningInstruction string
}

// Case is one explicit (persona, document, question) triple for a targeted run.
type Case struct {
	Persona            persona.Record `json:"persona"`
	DischargeSummaryID string         `json:"discharge_summary_id"`
	QuestionID         string         `json:"question_id"`
}

// Report is the orchestrator's return value: the ordered result records and
// the token total accumulated across successful queries. Keeping the total
// here, rather than smuggled on any record, keeps the record shape clean.
type Report struct {
	Records     []results.Record
	TotalTokens int
}

// Runner wires the catalog and executor together for a run.
type Runner struct {
	Catalog *catalog.Catalog
	Exec    Executor
	Opts    Options
}

// RunSweep executes the full cartesian sweep: every enumerated persona
// against every selected document and question, persona outermost, question
// innermost. Empty id lists default to the whole catalog. Configuration
// problems (missing persona keys, unknown ids) fail before any request.
func (r *Runner) RunSweep(ctx context.Context, spec persona.Spec, documentIDs, questionIDs []string) (Report, error) {
	if len(documentIDs) == 0 {
		documentIDs = r.Catalog.DocumentIDs()
	}
	if len(questionIDs) == 0 {
		questionIDs = r.Catalog.QuestionIDs()
	}

	personas, truncated, err := persona.Enumerate(spec, r.Opts.MaxPersonas)
	if err != nil {
		return Report{}, err
	}
	if truncated {
		total, _ := persona.Count(spec)
		logging.LogEvent("Limiting to first %d of %d persona combinations", len(personas), total)
	}

	documents, err := r.resolveTexts(documentIDs, r.Catalog.Document)
	if err != nil {
		return Report{}, err
	}
	questions, err := r.resolveTexts(questionIDs, r.Catalog.Question)
	if err != nil {
		return Report{}, err
	}

	totalQueries := len(personas) * len(documentIDs) * len(questionIDs)
	logging.LogEvent("Sweep: %d personas x %d summaries (%s) x %d questions (%s) = %d queries with model %s",
		len(personas), len(documentIDs), strings.Join(documentIDs, ", "),
		len(questionIDs), strings.Join(questionIDs, ", "), totalQueries, r.Opts.Model)

	report := Report{Records: make([]results.Record, 0, totalQueries)}
	queryCount := 0
	for _, p := range personas {
		for _, dsID := range documentIDs {
			for _, qID := range questionIDs {
				queryCount++
				record := r.step(ctx, p, dsID, documents[dsID], qID, questions[qID], queryCount, totalQueries)
				if record.Succeeded() {
					report.TotalTokens += record.Success.Tokens
				}
				report.Records = append(report.Records, record)
			}
		}
	}

	return report, nil
}

// RunTargeted executes an explicit ordered list of triples, in list order,
// with the same build+execute+record step as a sweep.
func (r *Runner) RunTargeted(ctx context.Context, cases []Case) (Report, error) {
	// Resolve every referenced text up front so an unknown id aborts the run
	// before the first request instead of partway through.
	documents := make(map[string]string, len(cases))
	questions := make(map[string]string, len(cases))
	for _, c := range cases {
		if _, ok := documents[c.DischargeSummaryID]; !ok {
			text, err := r.Catalog.Document(c.DischargeSummaryID)
			if err != nil {
				return Report{}, err
			}
			documents[c.DischargeSummaryID] = text
		}
		if _, ok := questions[c.QuestionID]; !ok {
			text, err := r.Catalog.Question(c.QuestionID)
			if err != nil {
				return Report{}, err
			}
			questions[c.QuestionID] = text
		}
	}

	total := len(cases)
	logging.LogEvent("Running %d specific test cases...", total)

	report := Report{Records: make([]results.Record, 0, total)}
	for i, c := range cases {
		record := r.step(ctx, c.Persona, c.DischargeSummaryID, documents[c.DischargeSummaryID],
			c.QuestionID, questions[c.QuestionID], i+1, total)
		if record.Succeeded() {
			report.TotalTokens += record.Success.Tokens
		}
		report.Records = append(report.Records, record)
	}

	return report, nil
}

// step builds the prompt for one triple, issues the query, and normalizes
// the outcome into a record. An execution failure is recorded, not returned:
// the run continues with the next triple.
func (r *Runner) step(ctx context.Context, p persona.Record, dsID, documentText, qID, questionText string, n, total int) results.Record {
	userPrompt := prompt.Build(p, documentText, questionText, r.Opts.ReasoningInstruction)

	fmt.Printf("\n[%d/%d] %s | %s | %+v\n", n, total, dsID, qID, p)

	outcome, err := r.Exec.Execute(ctx, userPrompt, r.Opts.Model, r.Opts.Temperature, r.Opts.MaxTokens)
	if err != nil {
		fmt.Printf("  %s Error: %v\n", color.RedString("✗"), err)
		return results.NewFailure(p, dsID, qID, r.Opts.Model, err.Error())
	}

	fmt.Printf("  %s %s\n", color.GreenString("✓"), util.TruncateRunes(outcome.Response, 80))
	return results.NewSuccess(p, dsID, qID, results.Success{
		Text:   outcome.Response,
		Model:  outcome.Model,
		Tokens: outcome.TotalTokens,
	})
}

func (r *Runner) resolveTexts(ids []string, lookup func(string) (string, error)) (map[string]string, error) {
	texts := make(map[string]string, len(ids))
	for _, id := range ids {
		text, err := lookup(id)
		if err != nil {
			return nil, err
		}
		texts[id] = text
	}
	return texts, nil
}
