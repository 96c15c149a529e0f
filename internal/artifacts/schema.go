package artifacts

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

var stringArray = map[string]any{
	"type":  "array",
	"items": map[string]any{"type": "string"},
}

// Artifact schemas. Loads validate against these before unmarshaling so a
// hand-edited file fails with a pointed message instead of a zero value.
var schemas = map[string]map[string]any{
	"skills": {
		"type":                 "object",
		"required":             []any{"normalized_skills"},
		"additionalProperties": false,
		"properties": map[string]any{
			"normalized_skills": stringArray,
		},
	},
	"test": {
		"type":                 "object",
		"required":             []any{"questions"},
		"additionalProperties": false,
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []any{"question", "options", "correct_answer"},
					"properties": map[string]any{
						"question": map[string]any{"type": "string", "minLength": 1},
						"options": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 2,
							"maxItems": 4,
						},
						"correct_answer": map[string]any{"type": "string"},
						"source_skill":   map[string]any{"type": "string"},
					},
				},
			},
		},
	},
	"evaluation": {
		"type":     "object",
		"required": []any{"level", "score", "total_questions"},
		"properties": map[string]any{
			"level":           map[string]any{"enum": []any{"Beginner", "Intermediate", "Advanced"}},
			"score":           map[string]any{"type": "integer", "minimum": 0},
			"total_questions": map[string]any{"type": "integer", "minimum": 0},
			"strengths":       stringArray,
			"weak_areas":      stringArray,
		},
	},
	"domains": {
		"type":     "object",
		"required": []any{"domains"},
		"properties": map[string]any{
			"domains": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
		},
	},
}

// validate checks raw JSON against the named artifact schema.
func validate(name string, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := compiledSchema(name)
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

// compiledSchema returns a cached compiled schema or compiles and caches it.
func compiledSchema(name string) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	def, ok := schemas[name]
	if !ok {
		return nil, fmt.Errorf("unknown artifact schema %q", name)
	}

	// The jsonschema library expects a parsed JSON value (any), not raw bytes.
	// Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
