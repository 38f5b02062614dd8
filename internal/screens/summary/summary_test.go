package summary

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
)

func testResults() []quiz.GradingResult {
	return []quiz.GradingResult{
		{Question: json.RawMessage(`"Capital of France?"`), CorrectAnswers: json.RawMessage(`["a"]`), UserAnswer: "a", IsCorrect: true, Explanation: json.RawMessage(`"Paris is the capital."`)},
		{Question: json.RawMessage(`"2+2?"`), CorrectAnswers: json.RawMessage(`["b"]`), UserAnswer: "c"},
		{Question: json.RawMessage(`"Largest ocean?"`), CorrectAnswers: json.RawMessage(`["d"]`), UserAnswer: quiz.NotAnswered},
	}
}

func TestSummaryScreen_Totals(t *testing.T) {
	s := New("Geography", "Capitals", testResults())
	sum := s.Summary()
	if sum.Total != 3 || sum.Answered != 2 || sum.Correct != 1 {
		t.Errorf("summary = %+v, want total 3, answered 2, correct 1", sum)
	}
	if s.Status() != "33%" {
		t.Errorf("Status() = %q, want %q", s.Status(), "33%")
	}
}

func TestSummaryScreen_View(t *testing.T) {
	s := New("Geography", "Capitals", testResults())
	view := s.View(100, 40)

	for _, want := range []string{"1 / 3 correct", "Capital of France?", "Paris is the capital.", quiz.NotAnswered} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ViewOffTypeResults(t *testing.T) {
	results := []quiz.GradingResult{
		{Question: json.RawMessage(`{"text":"Q"}`), CorrectAnswers: json.RawMessage(`"a"`), UserAnswer: json.Number("2"), Explanation: json.RawMessage(`{"why":"w"}`)},
	}
	view := New("Math", "Sums", results).View(120, 40)

	for _, want := range []string{`{"text":"Q"}`, "your answer: 2", "correct: a", `{"why":"w"}`} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSummaryScreen_ScrollClamped(t *testing.T) {
	s := New("Geography", "Capitals", testResults())
	for range 100 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	view := s.View(100, 8)
	if view == "" {
		t.Fatal("expected a non-empty view after scrolling past the end")
	}

	for range 200 {
		s.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	if s.offset != 0 {
		t.Errorf("offset = %d after scrolling up, want 0", s.offset)
	}
}

func TestSummaryScreen_EnterPops(t *testing.T) {
	s := New("Geography", "Capitals", testResults())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on Enter")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New("Geography", "Capitals", nil)
	if len(s.KeyHints()) != 3 {
		t.Errorf("KeyHints length = %d, want 3", len(s.KeyHints()))
	}
}
