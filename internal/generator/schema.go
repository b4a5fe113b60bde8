package generator

import "github.com/sahajm/quizdeck/internal/llm"

// itemProperties returns the per-item JSON schema properties for a kind.
func itemProperties(kind Kind) (map[string]any, []any) {
	switch kind {
	case KindMultipleChoice:
		return map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "The question prompt shown to the learner",
			},
			"options": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options, one of which is correct",
			},
			"correct_index": map[string]any{
				"type":        "integer",
				"minimum":     0,
				"maximum":     3,
				"description": "Zero-based index of the correct option",
			},
		}, []any{"question", "options", "correct_index"}

	case KindTrueFalse:
		return map[string]any{
			"statement": map[string]any{
				"type":        "string",
				"description": "A factual statement the learner judges",
			},
			"is_true": map[string]any{
				"type":        "boolean",
				"description": "Whether the statement is true",
			},
		}, []any{"statement", "is_true"}

	case KindMatching:
		return map[string]any{
			"term": map[string]any{
				"type":        "string",
				"description": "A term from the topic",
			},
			"definition": map[string]any{
				"type":        "string",
				"description": "The definition matching the term",
			},
		}, []any{"term", "definition"}

	default: // fill-blank and timed share a shape
		return map[string]any{
			"question": map[string]any{
				"type":        "string",
				"description": "A question answered with a single short word or phrase",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer, one short word or phrase",
			},
		}, []any{"question", "answer"}
	}
}

// SchemaFor builds the structured-output schema for a generation request.
func SchemaFor(kind Kind) *llm.Schema {
	props, required := itemProperties(kind)
	return &llm.Schema{
		Name:        "quiz-items-" + string(kind),
		Description: "A batch of generated quiz items",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type":                 "object",
						"properties":           props,
						"required":             required,
						"additionalProperties": false,
					},
				},
			},
			"required":             []any{"items"},
			"additionalProperties": false,
		},
	}
}
