// internal/catalog/catalog.go
// Package catalog holds the immutable discharge-summary and question
// reference data used to assemble comprehension prompts.
package catalog

import (
	"fmt"
	"sort"
	"strconv"
)

// NotFoundError reports a lookup of an id that is not present in the catalog.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found in catalog", e.Kind, e.ID)
}

// Catalog is a read-only mapping from identifiers to discharge-summary and
// question texts. It is constructed once at startup and never mutated.
type Catalog struct {
	documents map[string]string
	questions map[string]string
}

// New builds a Catalog from the given document and question maps. The maps
// are copied so later changes by the caller cannot leak into the catalog.
func New(documents, questions map[string]string) *Catalog {
	c := &Catalog{
		documents: make(map[string]string, len(documents)),
		questions: make(map[string]string, len(questions)),
	}
	for id, text := range documents {
		c.documents[id] = text
	}
	for id, text := range questions {
		c.questions[id] = text
	}
	return c
}

// Default returns the built-in catalog of discharge summaries and
// multiple-choice comprehension questions used by the study.
func Default() *Catalog {
	return New(defaultDocuments, defaultQuestions)
}

// Document returns the text of the discharge summary with the given id.
func (c *Catalog) Document(id string) (string, error) {
	text, ok := c.documents[id]
	if !ok {
		return "", &NotFoundError{Kind: "discharge summary", ID: id}
	}
	return text, nil
}

// Question returns the text of the question with the given id, including its
// labeled answer choices.
func (c *Catalog) Question(id string) (string, error) {
	text, ok := c.questions[id]
	if !ok {
		return "", &NotFoundError{Kind: "question", ID: id}
	}
	return text, nil
}

// DocumentIDs returns all discharge-summary ids in natural order.
func (c *Catalog) DocumentIDs() []string {
	return sortedKeys(c.documents)
}

// QuestionIDs returns all question ids in natural order, so Q10 follows Q9
// rather than Q1.
func (c *Catalog) QuestionIDs() []string {
	return sortedKeys(c.questions)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return naturalLess(keys[i], keys[j]) })
	return keys
}

// naturalLess orders ids with a shared alphabetic prefix by their numeric
// suffix, falling back to a lexical comparison.
func naturalLess(a, b string) bool {
	pa, na, aok := splitID(a)
	pb, nb, bok := splitID(b)
	if aok && bok && pa == pb {
		return na < nb
	}
	return a < b
}

func splitID(id string) (prefix string, n int, ok bool) {
	i := len(id)
	for i > 0 && id[i-1] >= '0' && id[i-1] <= '9' {
		i--
	}
	if i == len(id) {
		return id, 0, false
	}
	n, err := strconv.Atoi(id[i:])
	if err != nil {
		return id, 0, false
	}
	return id[:i], n, true
}
