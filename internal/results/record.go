// internal/results/record.go
// Package results defines the per-query result record, the results file
// writer, and the pre-run cost estimator.
package results

import (
	"encoding/json"
	"time"

	"github.com/mwiater/personasweep/internal/persona"
)

// Success holds the payload of a completed query. Tokens is transient run
// bookkeeping: it is accumulated into the run total and never serialized.
type Success struct {
	Text   string
	Model  string
	Tokens int
}

// Failure holds the error description of a query that did not complete.
type Failure struct {
	Message string
}

// Record is one query outcome. Exactly one of Success or Failure is set;
// NewSuccess and NewFailure are the only constructors, so a record can never
// carry both a response and an error.
type Record struct {
	Persona            persona.Record
	DischargeSummaryID string
	QuestionID         string
	Timestamp          time.Time

	Success *Success
	Failure *Failure

	// Model is the model the query was issued against. For successes it is
	// the model name echoed by the API; for failures, the requested one.
	Model string
}

// NewSuccess builds a success record stamped with the current time.
func NewSuccess(rec persona.Record, dsID, qID string, s Success) Record {
	return Record{
		Persona:            rec,
		DischargeSummaryID: dsID,
		QuestionID:         qID,
		Timestamp:          time.Now(),
		Success:            &s,
		Model:              s.Model,
	}
}

// NewFailure builds a failure record stamped with the current time.
func NewFailure(rec persona.Record, dsID, qID, model, message string) Record {
	return Record{
		Persona:            rec,
		DischargeSummaryID: dsID,
		QuestionID:         qID,
		Timestamp:          time.Now(),
		Failure:            &Failure{Message: message},
		Model:              model,
	}
}

// Succeeded reports whether the record carries a response.
func (r Record) Succeeded() bool {
	return r.Success != nil
}

// recordJSON is the flat on-disk shape of a record. Token counts are
// deliberately absent. Response and Error are pointers so that key presence
// tracks the variant, not field emptiness: an empty completion is still a
// success and serializes with a response key.
type recordJSON struct {
	Response           *string        `json:"response,omitempty"`
	Error              *string        `json:"error,omitempty"`
	Model              string         `json:"model"`
	Persona            persona.Record `json:"persona"`
	DischargeSummaryID string         `json:"discharge_summary_id"`
	QuestionID         string         `json:"question_id"`
	Timestamp          string         `json:"timestamp"`
}

// MarshalJSON emits the flat result shape: a response key on success, an
// error key on failure, never both.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		Model:              r.Model,
		Persona:            r.Persona,
		DischargeSummaryID: r.DischargeSummaryID,
		QuestionID:         r.QuestionID,
		Timestamp:          r.Timestamp.Format(time.RFC3339),
	}
	if r.Success != nil {
		out.Response = &r.Success.Text
	} else if r.Failure != nil {
		out.Error = &r.Failure.Message
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores a record from its flat shape. The presence of the
// error key marks a failure; otherwise the record is a success.
func (r *Record) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	ts, err := time.Parse(time.RFC3339, in.Timestamp)
	if err != nil {
		return err
	}
	*r = Record{
		Persona:            in.Persona,
		DischargeSummaryID: in.DischargeSummaryID,
		QuestionID:         in.QuestionID,
		Timestamp:          ts,
		Model:              in.Model,
	}
	if in.Error != nil {
		r.Failure = &Failure{Message: *in.Error}
	} else {
		var text string
		if in.Response != nil {
			text = *in.Response
		}
		r.Success = &Success{Text: text, Model: in.Model}
	}
	return nil
}
