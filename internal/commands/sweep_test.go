// internal/commands/sweep_test.go
package commands

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mwiater/personasweep/internal/catalog"
)

func testVariations() map[string][]string {
	return map[string][]string{
		"age":                {"25", "65"},
		"gender":             {"male", "female"},
		"education":          {"high"},
		"ethnicity":          {"White"},
		"doctor_visit":       {"monthly"},
		"er_visit_frequency": {"yearly"},
	}
}

// TestSweepQueryCount verifies the query projection used for the cost
// estimate: persona limit applied, catalog defaults for empty id lists.
func TestSweepQueryCount(t *testing.T) {
	cat := catalog.Default()

	count, err := sweepQueryCount(testVariations(), []string{"DS1"}, []string{"Q1", "Q2"}, 0, cat)
	if err != nil {
		t.Fatalf("sweepQueryCount returned error: %v", err)
	}
	if count != 4*1*2 {
		t.Fatalf("expected 8 queries, got %d", count)
	}

	count, err = sweepQueryCount(testVariations(), nil, nil, 0, cat)
	if err != nil {
		t.Fatalf("sweepQueryCount returned error: %v", err)
	}
	if count != 4*4*10 {
		t.Fatalf("expected 160 queries with catalog defaults, got %d", count)
	}

	count, err = sweepQueryCount(testVariations(), []string{"DS1"}, []string{"Q1"}, 3, cat)
	if err != nil {
		t.Fatalf("sweepQueryCount returned error: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected persona limit to cap queries at 3, got %d", count)
	}

	variations := testVariations()
	delete(variations, "age")
	if _, err := sweepQueryCount(variations, nil, nil, 0, cat); err == nil {
		t.Fatal("sweepQueryCount with missing persona key should have failed")
	}
}

// TestConfirm verifies that only affirmative answers proceed.
func TestConfirm(t *testing.T) {
	tests := []struct {
		answer string
		want   bool
	}{
		{"yes\n", true},
		{"y\n", true},
		{"YES\n", true},
		{"no\n", false},
		{"n\n", false},
		{"\n", false},
		{"sure\n", false},
	}
	for _, tc := range tests {
		got, err := confirm(strings.NewReader(tc.answer), "Continue? ")
		if err != nil {
			t.Fatalf("confirm(%q) returned error: %v", tc.answer, err)
		}
		if got != tc.want {
			t.Fatalf("confirm(%q) = %t, want %t", tc.answer, got, tc.want)
		}
	}
}

// TestLoadCases verifies the targeted case file parsing and its error paths.
func TestLoadCases(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cases.json")
	content := `[
		{
			"persona": {"age": "25", "gender": "female", "education": "high", "ethnicity": "Asian", "doctor_visit": "monthly", "er_visit_frequency": "never"},
			"discharge_summary_id": "DS1",
			"question_id": "Q1"
		},
		{
			"persona": {"age": "65", "gender": "male", "education": "low", "ethnicity": "White", "doctor_visit": "never", "er_visit_frequency": "monthly"},
			"discharge_summary_id": "DS2",
			"question_id": "Q10"
		}
	]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cases, err := loadCases(path)
	if err != nil {
		t.Fatalf("loadCases returned error: %v", err)
	}
	if len(cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(cases))
	}
	if cases[0].Persona.Age != "25" || cases[0].DischargeSummaryID != "DS1" || cases[0].QuestionID != "Q1" {
		t.Fatalf("first case not parsed in order: %+v", cases[0])
	}
	if cases[1].Persona.ERVisitFrequency != "monthly" {
		t.Fatalf("nested persona attributes not parsed: %+v", cases[1])
	}

	empty := filepath.Join(dir, "empty.json")
	if err := os.WriteFile(empty, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := loadCases(empty); err == nil {
		t.Fatal("loadCases with an empty list should have failed")
	}

	if _, err := loadCases(filepath.Join(dir, "missing.json")); err == nil {
		t.Fatal("loadCases with a missing file should have failed")
	}
}
