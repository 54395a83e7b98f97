package llm

import "github.com/docufill/docpipe/internal/extract"

// BuildFieldsJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map, one property per requested field. We pass this to the model
// as a structured output constraint and also use it locally to validate.
// Nothing is required at the top level: the model omits fields it cannot
// read rather than inventing them.
func BuildFieldsJSONSchema(fields []extract.FieldTemplate) map[string]any {
	props := map[string]any{}
	for _, f := range fields {
		props[f.Name] = map[string]any{
			"type":                 "object",
			"additionalProperties": false,
			"properties": map[string]any{
				"value":      valueSchema(f.Kind),
				"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			},
			"required": []string{"value"},
		}
	}
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func valueSchema(kind extract.Kind) map[string]any {
	switch kind {
	case extract.KindDate:
		return map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`}
	case extract.KindEmail:
		return map[string]any{"type": "string", "pattern": `^[^@\s]+@[^@\s]+\.[^@\s]+$`}
	case extract.KindNumber:
		return map[string]any{"type": "string", "pattern": `^-?\d+(\.\d+)?$`}
	case extract.KindIDNum:
		return map[string]any{"type": "string", "minLength": 4, "maxLength": 32}
	default:
		return map[string]any{"type": "string", "minLength": 1}
	}
}
