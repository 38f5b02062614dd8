package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/quizgen/internal/store"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestEvaluateCommand(t *testing.T) {
	questions := writeTemp(t, "questions.json", `{"questions": [
		{"question": "Q1", "options": [{"label": "a", "option": "x"}, {"label": "b", "option": "y"}], "correctAnswers": ["a"], "explanation": "E1"},
		{"question": "Q2", "correctAnswers": ["b"]}
	]}`)
	answers := writeTemp(t, "answers.json", `{"1": "a"}`)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"evaluate", "--questions", questions, "--answers", answers})
	require.NoError(t, rootCmd.Execute())

	var got struct {
		Evaluation []struct {
			Question   string `json:"question"`
			UserAnswer string `json:"userAnswer"`
			IsCorrect  bool   `json:"isCorrect"`
		} `json:"evaluation"`
		Summary struct {
			Total   int     `json:"total"`
			Correct int     `json:"correct"`
			Score   float64 `json:"score"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got.Evaluation, 2)
	assert.True(t, got.Evaluation[0].IsCorrect)
	assert.Equal(t, "Not answered", got.Evaluation[1].UserAnswer)
	assert.Equal(t, 2, got.Summary.Total)
	assert.Equal(t, 1, got.Summary.Correct)
	assert.Equal(t, 50.0, got.Summary.Score)
}

func TestReadQuestionsFile(t *testing.T) {
	t.Run("bare array", func(t *testing.T) {
		p := writeTemp(t, "q.json", `[{"question": "Q1"}]`)
		data, err := readQuestionsFile(nil, p)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"question": "Q1"}]`, string(data))
	})

	t.Run("envelope", func(t *testing.T) {
		p := writeTemp(t, "q.json", `{"questions": [{"question": "Q1"}]}`)
		data, err := readQuestionsFile(nil, p)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"question": "Q1"}]`, string(data))
	})

	t.Run("stdin", func(t *testing.T) {
		data, err := readQuestionsFile(strings.NewReader(`[]`), "-")
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := readQuestionsFile(nil, filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestWriteJSON_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.json")
	require.NoError(t, writeJSON(nil, p, map[string]int{"n": 1}))

	data, err := os.ReadFile(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"n": 1}`, string(data))
}

func testEvent() store.LLMEvent {
	return store.LLMEvent{
		ID:        7,
		Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		LLMRequestEventData: store.LLMRequestEventData{
			GenerationID: "gen-1",
			Provider:     "gemini",
			Model:        "gemini-2.5-flash",
			Operation:    store.OperationGenerate,
			Purpose:      "question-gen",
			InputTokens:  1000,
			OutputTokens: 2000,
			LatencyMs:    1500,
			Success:      true,
		},
	}
}

func TestPrintEvents(t *testing.T) {
	var buf bytes.Buffer
	printEvents(&buf, nil)
	assert.Contains(t, buf.String(), "No LLM events found.")

	buf.Reset()
	printEvents(&buf, []store.LLMEvent{testEvent()})
	assert.Contains(t, buf.String(), "gemini-2.5-flash")
	assert.Contains(t, buf.String(), "question-gen")
	assert.Contains(t, buf.String(), "✓")
}

func TestPrintEvent(t *testing.T) {
	e := testEvent()
	e.Success = false
	e.ErrorMessage = "rate limited"

	var buf bytes.Buffer
	printEvent(&buf, &e)
	out := buf.String()
	assert.Contains(t, out, "Generation:  gen-1")
	assert.Contains(t, out, "Operation:   generate")
	assert.Contains(t, out, "Est. cost:")
	assert.Contains(t, out, "Error:       rate limited")
}

func TestPrintUsage(t *testing.T) {
	var buf bytes.Buffer
	printUsage(&buf, nil, nil)
	assert.Contains(t, buf.String(), "No LLM usage recorded yet.")

	buf.Reset()
	printUsage(&buf,
		[]store.PurposeUsage{{Purpose: "question-gen", Calls: 2, InputTokens: 1_000_000, OutputTokens: 1_000_000, AvgLatencyMs: 900}},
		[]store.ModelUsage{
			{Model: "gemini-2.5-flash", Calls: 1, InputTokens: 1_000_000, OutputTokens: 1_000_000},
			{Model: "homegrown-model", Calls: 1},
		},
	)
	out := buf.String()
	assert.Contains(t, out, "$2.80")
	assert.Contains(t, out, "TOTAL (partial)")
	assert.Contains(t, out, "Pricing unavailable for: homegrown-model")
}

func TestFormatCost(t *testing.T) {
	assert.Equal(t, "$0.0012", formatCost(0.0012))
	assert.Equal(t, "$1.50", formatCost(1.5))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
}
