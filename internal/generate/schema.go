package generate

import "github.com/bacdz/eduai/internal/llm"

// QuizSchema is the strict contract for quiz generation: exactly ten
// questions, four options each, with a valid answer index and explanation.
var QuizSchema = &llm.Schema{
	Name:        "quiz",
	Description: "A ten-question multiple-choice quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Quiz title in Arabic",
			},
			"questions": map[string]any{
				"type":     "array",
				"minItems": 10,
				"maxItems": 10,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type": "string",
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": 4,
							"maxItems": 4,
							"items":    map[string]any{"type": "string"},
						},
						"correctAnswerIndex": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is correct",
						},
					},
					"required":             []any{"question", "options", "correctAnswerIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "questions"},
		"additionalProperties": false,
	},
}

// ExamSchema is the contract for full-semester exam generation.
var ExamSchema = &llm.Schema{
	Name:        "semester-exam",
	Description: "A complete exam paper with its model answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"examText": map[string]any{
				"type":        "string",
				"description": "The full exam paper covering the semester's lessons",
			},
			"solutionText": map[string]any{
				"type":        "string",
				"description": "The detailed marking scheme with point allocations",
			},
		},
		"required":             []any{"examText", "solutionText"},
		"additionalProperties": false,
	},
}

// SuggestionsSchema is the contract for follow-up question suggestions.
var SuggestionsSchema = &llm.Schema{
	Name:        "suggestions",
	Description: "Three short follow-up questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"suggestions": map[string]any{
				"type":     "array",
				"minItems": 3,
				"maxItems": 3,
				"items":    map[string]any{"type": "string"},
			},
		},
		"required":             []any{"suggestions"},
		"additionalProperties": false,
	},
}
