package analysis

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/esgsentinel/sentinel/constants"
)

// BuildResultJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the analysis response contract. It pins the
// invariants consumers rely on: percentage bounds, the confidence range,
// 1-based evidence pages and the global evidence cap.
func BuildResultJSONSchema() map[string]any {
	pct := map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0}
	count := map[string]any{"type": "integer", "minimum": 0}

	evidenceItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"keyword": map[string]any{"type": "string", "minLength": 1},
			"page":    map[string]any{"type": "integer", "minimum": 1},
			"snippet": map[string]any{"type": "string"},
		},
		"required": []string{"keyword", "page", "snippet"},
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"explainability": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"matched_keywords": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"evidence": map[string]any{
						"type":     "array",
						"items":    evidenceItem,
						"maxItems": constants.EvidenceCap,
					},
				},
				"required": []string{"matched_keywords", "evidence"},
			},
			"sustainability_targets": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string", "minLength": 1},
			},
			"scoring": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"confidence":        map[string]any{"type": "integer", "minimum": 0, "maximum": 100},
					"coverage_pct":      pct,
					"parse_success_pct": pct,
					"pages_total":       count,
					"pages_failed":      count,
					"pages_with_text":   count,
					"targets_detected":  count,
					"keyword_hits":      count,
					"fallback_mode":     map[string]any{"type": "boolean"},
					"text_extracted":    map[string]any{"type": "boolean"},
				},
				"required": []string{
					"confidence", "coverage_pct", "parse_success_pct",
					"pages_total", "pages_failed", "pages_with_text",
					"targets_detected", "keyword_hits", "fallback_mode",
					"text_extracted",
				},
			},
			"ratchet_config": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"step_bps":               map[string]any{"type": "number"},
					"verification_frequency": map[string]any{"type": "string"},
					"max_steps":              count,
				},
				"required": []string{"step_bps", "verification_frequency", "max_steps"},
			},
			"pricing_assumptions": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"notional": map[string]any{"type": "integer"},
					"currency": map[string]any{"type": "string", "minLength": 3, "maxLength": 3},
				},
				"required": []string{"notional", "currency"},
			},
			"extraction_warnings": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"pages_failed": count,
					"text_length":  count,
					"note":         map[string]any{"type": "string"},
				},
				"required": []string{"pages_failed", "text_length", "note"},
			},
			"document_metadata": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"source_filename": map[string]any{"type": "string"},
					"facility_type":   map[string]any{"type": "string"},
					"governing_law":   map[string]any{"type": "string"},
					"lma_standard":    map[string]any{"type": "string"},
				},
				"required": []string{"source_filename"},
			},
		},
		"required": []string{
			"explainability", "document_metadata", "sustainability_targets",
			"ratchet_config", "pricing_assumptions", "extraction_warnings",
			"scoring",
		},
	}
}

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func resultSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		raw, err := json.Marshal(BuildResultJSONSchema())
		if err != nil {
			schemaErr = err
			return
		}
		compiledSchema, schemaErr = jsonschema.CompileString("analysis-result.json", string(raw))
	})
	return compiledSchema, schemaErr
}

// ValidateResult checks an assembled Result against the response
// contract schema. A violation indicates a bug in the assembler, not
// bad input, so callers log it rather than failing the request.
func ValidateResult(res Result) error {
	sch, err := resultSchema()
	if err != nil {
		return fmt.Errorf("compile result schema: %w", err)
	}
	raw, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("marshal result: %w", err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return sch.Validate(v)
}
