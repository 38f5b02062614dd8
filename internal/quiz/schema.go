package quiz

import "github.com/abhisek/quizgen/internal/llm"

// QuestionSchema is the JSON schema one generated question must satisfy
// when schema validation is enabled.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A multiple-choice question with labelled options and the labels of the correct answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{
				"type":        "string",
				"minLength":   1,
				"description": "The question text shown to the student",
			},
			"options": map[string]any{
				"type":     "array",
				"minItems": 2,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"label":  map[string]any{"type": "string", "minLength": 1},
						"option": map[string]any{"type": "string"},
					},
					"required": []any{"label", "option"},
				},
				"description": "The choices, each with a short label such as \"a\"",
			},
			"correctAnswers": map[string]any{
				"type":        "array",
				"minItems":    1,
				"items":       map[string]any{"type": "string"},
				"description": "Labels of every correct option",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Why the correct answers are correct",
			},
		},
		"required": []any{"question", "options", "correctAnswers", "explanation"},
	},
}

// QuestionSetSchema wraps QuestionSchema in the {"questions": [...]} envelope
// the prompt asks for. It is sent to providers that accept a response schema.
var QuestionSetSchema = &llm.Schema{
	Name:        "quiz-question-set",
	Description: "A set of multiple-choice quiz questions",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":  "array",
				"items": QuestionSchema.Definition,
			},
		},
		"required": []any{"questions"},
	},
}
