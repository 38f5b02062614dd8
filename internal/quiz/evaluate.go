package quiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"slices"
	"strconv"
)

// Evaluate grades answers against questions. The result has one entry per
// question, in the same order. A nil answers map means nothing was answered.
func Evaluate(questions []Question, answers Answers) []GradingResult {
	results := make([]GradingResult, len(questions))
	for i, q := range questions {
		submitted := answers[strconv.Itoa(i+1)]
		label, isLabel := submitted.(string)
		userAnswer := submitted
		if !answered(submitted) {
			userAnswer = NotAnswered
		}
		results[i] = GradingResult{
			Question:       q.member("question"),
			CorrectAnswers: q.member("correctAnswers"),
			UserAnswer:     userAnswer,
			IsCorrect:      isLabel && slices.Contains(q.CorrectAnswers, label),
			Explanation:    q.member("explanation"),
		}
	}
	return results
}

// EvaluateJSON grades raw, untrusted JSON. questions must be a JSON array;
// anything else, including null or a missing value, returns ErrInvalidInput.
// answers may be missing or null, otherwise it must be a JSON object.
func EvaluateJSON(questions, answers json.RawMessage) ([]GradingResult, error) {
	qs, err := DecodeQuestions(questions)
	if err != nil {
		return nil, err
	}

	var ans Answers
	if a := bytes.TrimSpace(answers); len(a) > 0 && !bytes.Equal(a, []byte("null")) {
		if a[0] != '{' {
			return nil, fmt.Errorf("%w: userAnswers must be an object", ErrInvalidInput)
		}
		if err := json.Unmarshal(a, &ans); err != nil {
			return nil, fmt.Errorf("%w: userAnswers: %v", ErrInvalidInput, err)
		}
	}

	return Evaluate(qs, ans), nil
}

// DecodeQuestions decodes a JSON array of questions. Any other JSON value
// returns ErrInvalidInput. Elements are never rejected for their shape.
func DecodeQuestions(data json.RawMessage) ([]Question, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] != '[' {
		return nil, fmt.Errorf("%w: questions must be an array", ErrInvalidInput)
	}
	var qs []Question
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("%w: questions: %v", ErrInvalidInput, err)
	}
	return qs, nil
}

// Summarize totals the graded results.
func Summarize(results []GradingResult) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if a, ok := r.UserAnswer.(string); !ok || a != NotAnswered {
			s.Answered++
		}
		if r.IsCorrect {
			s.Correct++
		}
	}
	if s.Total > 0 {
		s.Score = math.Round(float64(s.Correct)*10000/float64(s.Total)) / 100
	}
	return s
}
