// internal/appconfig/schema.go
package appconfig

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// configSchema describes the required shape of the experiment config file.
// Every persona attribute must be present with at least one candidate value;
// catching a malformed config here keeps bad runs from reaching the API.
var configSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"persona_variations": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"age":                attributeValuesSchema,
				"gender":             attributeValuesSchema,
				"education":          attributeValuesSchema,
				"ethnicity":          attributeValuesSchema,
				"doctor_visit":       attributeValuesSchema,
				"er_visit_frequency": attributeValuesSchema,
			},
			"required": []string{"age", "gender", "education", "ethnicity", "doctor_visit", "er_visit_frequency"},
		},
		"discharge_summary_ids": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"question_ids": map[string]any{
			"type":  "array",
			"items": map[string]any{"type": "string"},
		},
		"model":                 map[string]any{"type": "string", "minLength": 1},
		"temperature":           map[string]any{"type": "number"},
		"max_tokens":            map[string]any{"type": "integer", "minimum": 1},
		"max_personas":          map[string]any{"type": "integer", "minimum": 1},
		"output_file":           map[string]any{"type": "string"},
		"reasoning_instruction": map[string]any{"type": "string"},
		"api_base_url":          map[string]any{"type": "string"},
		"timeout":               map[string]any{"type": "integer", "minimum": 1},
		"logFile":               map[string]any{"type": "string"},
		"debug":                 map[string]any{"type": "boolean"},
	},
	"required": []string{"persona_variations", "model"},
}

var attributeValuesSchema = map[string]any{
	"type":     "array",
	"items":    map[string]any{"type": "string"},
	"minItems": 1,
}

// validateSchema checks raw config JSON against configSchema and reports
// every violation, not just the first.
func validateSchema(raw []byte) error {
	schemaLoader := gojsonschema.NewGoLoader(configSchema)
	documentLoader := gojsonschema.NewBytesLoader(raw)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	var errs []string
	for _, desc := range result.Errors() {
		errs = append(errs, desc.String())
	}
	return fmt.Errorf("invalid experiment config: %s", strings.Join(errs, ", "))
}
