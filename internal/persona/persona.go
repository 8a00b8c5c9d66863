// internal/persona/persona.go
// Package persona expands an attribute specification into the full set of
// synthetic patient profiles used for an experiment run.
package persona

import (
	"fmt"
	"strings"
)

// AttributeKeys lists the six required persona attributes in product order:
// the first key varies slowest during enumeration, the last varies fastest.
var AttributeKeys = []string{
	"age",
	"gender",
	"education",
	"ethnicity",
	"doctor_visit",
	"er_visit_frequency",
}

// Spec maps each attribute name to its ordered list of candidate values.
// All six keys in AttributeKeys are required.
type Spec map[string][]string

// Record is one concrete persona: a single value assigned to each attribute.
type Record struct {
	Age              string `json:"age"`
	Gender           string `json:"gender"`
	Education        string `json:"education"`
	Ethnicity        string `json:"ethnicity"`
	DoctorVisit      string `json:"doctor_visit"`
	ERVisitFrequency string `json:"er_visit_frequency"`
}

// MissingKeysError reports which required attribute keys are absent from a
// Spec. It always names every missing key, not just the first.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required persona keys: %s", strings.Join(e.Keys, ", "))
}

// validate returns a MissingKeysError if any required key is absent.
func validate(spec Spec) error {
	var missing []string
	for _, key := range AttributeKeys {
		if _, ok := spec[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return &MissingKeysError{Keys: missing}
	}
	return nil
}

// Count returns the untruncated cartesian-product size for the spec without
// materializing any records. Used for pre-run cost estimates.
func Count(spec Spec) (int, error) {
	if err := validate(spec); err != nil {
		return 0, err
	}
	total := 1
	for _, key := range AttributeKeys {
		total *= len(spec[key])
	}
	return total, nil
}

// Enumerate computes the cartesian product over the six attribute lists in
// AttributeKeys order. If limit is positive and the product size exceeds it,
// only the first limit records of the product are returned and the second
// return value is true. The truncation is a deterministic prefix, not a
// sample.
func Enumerate(spec Spec, limit int) ([]Record, bool, error) {
	if err := validate(spec); err != nil {
		return nil, false, err
	}

	total := 1
	for _, key := range AttributeKeys {
		total *= len(spec[key])
	}

	want := total
	truncated := false
	if limit > 0 && total > limit {
		want = limit
		truncated = true
	}

	records := make([]Record, 0, want)
	for _, age := range spec["age"] {
		for _, gender := range spec["gender"] {
			for _, education := range spec["education"] {
				for _, ethnicity := range spec["ethnicity"] {
					for _, doctorVisit := range spec["doctor_visit"] {
						for _, erVisit := range spec["er_visit_frequency"] {
							if len(records) == want {
								return records, truncated, nil
							}
							records = append(records, Record{
								Age:              age,
								Gender:           gender,
								Education:        education,
								Ethnicity:        ethnicity,
								DoctorVisit:      doctorVisit,
								ERVisitFrequency: erVisit,
							})
						}
					}
				}
			}
		}
	}
	return records, truncated, nil
}
