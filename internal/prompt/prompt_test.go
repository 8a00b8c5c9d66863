// internal/prompt/prompt_test.go
package prompt

import (
	"strings"
	"testing"

	"github.com/mwiater/personasweep/internal/persona"
)

var testRecord = persona.Record{
	Age:              "25",
	Gender:           "female",
	Education:        "high",
	Ethnicity:        "Asian",
	DoctorVisit:      "monthly",
	ERVisitFrequency: "never",
}

// TestBuildTemplate verifies the exact prompt text produced for a known
// persona, document, and question. The template must stay byte-for-byte
// stable across runs so experiment results remain comparable.
func TestBuildTemplate(t *testing.T) {
	got := Build(testRecord, "Take your medication.", "Q text\nA. Yes\nB. No", "")

	want := `You are a 25 female with high education level, you from Asian race, you visit doctor monthly, and visit emergency room never. Explain with your reasoning, then provide the letter.

You will be reading a Discharge Summary written by a clinician for a patient. After reading the Discharge Summary, I will ask you a multiple-choice question. Your job is to think as someone with your background and choose the correct answer by selecting the letter of the answer (e.g., A, B, C, etc.).

Here is the Discharge Summary:

Take your medication.

Now, answer the following question:

Q text
A. Yes
B. No`

	if got != want {
		t.Fatalf("prompt mismatch:\n--- got ---\n%s\n--- want ---\n%s", got, want)
	}
}

// TestBuildDeterministic verifies that identical inputs always produce
// byte-identical prompt text.
func TestBuildDeterministic(t *testing.T) {
	first := Build(testRecord, "doc", "question", "Answer briefly.")
	second := Build(testRecord, "doc", "question", "Answer briefly.")
	if first != second {
		t.Fatal("Build is not deterministic for identical inputs")
	}
}

// TestBuildReasoningOverride verifies that a custom reasoning instruction
// replaces the default and that the default appears otherwise.
func TestBuildReasoningOverride(t *testing.T) {
	withDefault := Build(testRecord, "doc", "question", "")
	if !strings.Contains(withDefault, DefaultReasoningInstruction) {
		t.Fatal("default reasoning instruction missing from prompt")
	}

	custom := "Answer with the letter only."
	withCustom := Build(testRecord, "doc", "question", custom)
	if !strings.Contains(withCustom, custom) {
		t.Fatal("custom reasoning instruction missing from prompt")
	}
	if strings.Contains(withCustom, DefaultReasoningInstruction) {
		t.Fatal("default reasoning instruction should be replaced by the override")
	}
}

// TestBuildVerbatimInputs verifies that document and question text are
// embedded without escaping or truncation.
func TestBuildVerbatimInputs(t *testing.T) {
	doc := "line one\n\"quoted\" & <tagged>\nline three"
	got := Build(testRecord, doc, "q", "")
	if !strings.Contains(got, doc) {
		t.Fatal("document text was not embedded verbatim")
	}
}
