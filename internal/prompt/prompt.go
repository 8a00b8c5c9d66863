// internal/prompt/prompt.go
// Package prompt assembles the fixed persona/discharge-summary/question
// prompt sent for every query. The template must stay byte-for-byte stable
// across runs so that results remain comparable between experiments.
package prompt

import (
	"fmt"

	"github.com/mwiater/personasweep/internal/persona"
)

// DefaultReasoningInstruction is appended to the persona sentence unless the
// experiment config overrides it.
const DefaultReasoningInstruction = "Explain with your reasoning, then provide the letter."

// SystemInstruction is the fixed system message sent with every query.
const SystemInstruction = "You are responding as the persona described in the prompt."

const template = `You are a %s %s with %s education level, you from %s race, you visit doctor %s, and visit emergency room %s. %s

You will be reading a Discharge Summary written by a clinician for a patient. After reading the Discharge Summary, I will ask you a multiple-choice question. Your job is to think as someone with your background and choose the correct answer by selecting the letter of the answer (e.g., A, B, C, etc.).

Here is the Discharge Summary:

%s

Now, answer the following question:

%s`

// Build renders the complete user prompt for one (persona, document,
// question) triple. Inputs are embedded verbatim with no escaping or
// truncation; Build never fails.
func Build(rec persona.Record, documentText, questionText, reasoningInstruction string) string {
	if reasoningInstruction == "" {
		reasoningInstruction = DefaultReasoningInstruction
	}
	return fmt.Sprintf(template,
		rec.Age,
		rec.Gender,
		rec.Education,
		rec.Ethnicity,
		rec.DoctorVisit,
		rec.ERVisitFrequency,
		reasoningInstruction,
		documentText,
		questionText,
	)
}
