package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func quizLikeSchema() *Schema {
	return &Schema{
		Name:        "test-quiz",
		Description: "A short quiz",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":     "array",
					"minItems": 2,
					"maxItems": 2,
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"question": map[string]any{"type": "string"},
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
						},
						"required": []any{"question", "options", "correctAnswerIndex"},
					},
				},
			},
			"required": []any{"questions"},
		},
	}
}

func validQuizJSON() json.RawMessage {
	return json.RawMessage(`{
		"questions": [
			{"question": "Q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0},
			{"question": "Q2", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 3}
		]
	}`)
}

func TestValidateResponse_Conforming(t *testing.T) {
	if err := validateResponse(quizLikeSchema(), validQuizJSON()); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_NilSchemaSkipsValidation(t *testing.T) {
	raw := json.RawMessage(`this is plain prose, not JSON`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected no error with nil schema, got: %v", err)
	}
}

func TestValidateResponse_NotJSON(t *testing.T) {
	err := validateResponse(quizLikeSchema(), json.RawMessage(`oops`))
	assertInvalidResponse(t, err)
}

func TestValidateResponse_EmptyContent(t *testing.T) {
	err := validateResponse(quizLikeSchema(), json.RawMessage(``))
	assertInvalidResponse(t, err)
}

func TestValidateResponse_WrongQuestionCount(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "Q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 0}
		]
	}`)
	err := validateResponse(quizLikeSchema(), raw)
	assertInvalidResponse(t, err)
}

func TestValidateResponse_AnswerIndexOutOfRange(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "Q1", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 4},
			{"question": "Q2", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 1}
		]
	}`)
	err := validateResponse(quizLikeSchema(), raw)
	assertInvalidResponse(t, err)
}

func TestValidateResponse_MissingRequiredField(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "Q1", "options": ["a", "b", "c", "d"]},
			{"question": "Q2", "options": ["a", "b", "c", "d"], "correctAnswerIndex": 1}
		]
	}`)
	err := validateResponse(quizLikeSchema(), raw)
	assertInvalidResponse(t, err)
}

func TestValidateResponse_CachedSchemaReused(t *testing.T) {
	schema := quizLikeSchema()
	for range 3 {
		if err := validateResponse(schema, validQuizJSON()); err != nil {
			t.Fatalf("unexpected error on repeat validation: %v", err)
		}
	}
}

func assertInvalidResponse(t *testing.T, err error) {
	t.Helper()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}
