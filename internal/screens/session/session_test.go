package session

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screens/summary"
)

// fakeGenerator implements Generator for testing.
type fakeGenerator struct {
	questions []quiz.Question
	err       error
	calls     int
	purpose   string
	ctx       context.Context
}

func (f *fakeGenerator) GenerateTopic(ctx context.Context, subject, chapter string) ([]quiz.Question, error) {
	f.calls++
	f.purpose = llm.PurposeFrom(ctx)
	f.ctx = ctx
	return f.questions, f.err
}

func ptr(s string) *string { return &s }

func testQuestions() []quiz.Question {
	opts := []quiz.Option{{Label: "a", Option: "one"}, {Label: "b", Option: "two"}, {Label: "c", Option: "three"}}
	return []quiz.Question{
		{Question: ptr("First?"), Options: opts, CorrectAnswers: []string{"a"}},
		{Question: ptr("Second?"), Options: opts, CorrectAnswers: []string{"b"}},
		{Question: ptr("Third?"), Options: opts, CorrectAnswers: []string{"c"}},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// started returns a session that has already received its questions.
func started(t *testing.T, gen *fakeGenerator) *SessionScreen {
	t.Helper()
	s := New(gen, "Math", "Fractions")
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected Init to return a generation command")
	}
	s.Update(cmd())
	return s
}

func finishMsg(t *testing.T, cmd tea.Cmd) *summary.SummaryScreen {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatal("expected ReplaceScreenMsg")
	}
	sum, ok := msg.Screen.(*summary.SummaryScreen)
	if !ok {
		t.Fatalf("replaced with %T, want *summary.SummaryScreen", msg.Screen)
	}
	return sum
}

func TestSessionScreen_GeneratesWithPlayPurpose(t *testing.T) {
	gen := &fakeGenerator{questions: testQuestions()}
	s := started(t, gen)

	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if gen.purpose != Purpose {
		t.Errorf("purpose = %q, want %q", gen.purpose, Purpose)
	}
	if s.loading {
		t.Error("expected loading to be false after questions arrive")
	}
	if !strings.Contains(s.View(100, 30), "First?") {
		t.Error("expected first question in view")
	}
}

func TestSessionScreen_LoadingView(t *testing.T) {
	s := New(&fakeGenerator{}, "Math", "Fractions")
	s.Init()
	if !strings.Contains(s.View(100, 30), "Generating questions") {
		t.Error("expected loading message")
	}
	if hints := s.KeyHints(); len(hints) != 1 {
		t.Errorf("loading KeyHints length = %d, want 1", len(hints))
	}
}

func TestSessionScreen_AnswerAllAndFinish(t *testing.T) {
	s := started(t, &fakeGenerator{questions: testQuestions()})

	s.Update(keyPress('a'))                       // correct
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})  // cursor to b
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}) // correct
	_, cmd := s.Update(keyPress('b'))             // wrong

	sum := finishMsg(t, cmd).Summary()
	if sum.Total != 3 || sum.Answered != 3 || sum.Correct != 2 {
		t.Errorf("summary = %+v, want 3 answered, 2 correct", sum)
	}
}

func TestSessionScreen_SkipLeavesUnanswered(t *testing.T) {
	s := started(t, &fakeGenerator{questions: testQuestions()})

	s.Update(keyPress('s'))
	s.Update(keyPress('b'))
	_, cmd := s.Update(keyPress('s'))

	sum := finishMsg(t, cmd).Summary()
	if sum.Answered != 1 || sum.Correct != 1 {
		t.Errorf("summary = %+v, want 1 answered, 1 correct", sum)
	}
	if _, ok := s.answers["1"]; ok {
		t.Error("skipped question must not be recorded")
	}
	if s.answers["2"] != "b" {
		t.Errorf("answers[2] = %q, want b", s.answers["2"])
	}
}

func TestSessionScreen_FinishEarly(t *testing.T) {
	s := started(t, &fakeGenerator{questions: testQuestions()})

	s.Update(keyPress('a'))
	_, cmd := s.Update(keyPress('f'))

	sum := finishMsg(t, cmd).Summary()
	if sum.Total != 3 || sum.Answered != 1 {
		t.Errorf("summary = %+v, want total 3, answered 1", sum)
	}
}

func TestSessionScreen_ErrorAndRetry(t *testing.T) {
	gen := &fakeGenerator{err: &quiz.ModelUnavailableError{
		Model:           "gemini-nope",
		AvailableModels: []string{"gemini-2.5-flash"},
		Err:             &llm.ErrModelNotFound{Model: "gemini-nope"},
	}}
	s := started(t, gen)

	view := s.View(100, 30)
	if !strings.Contains(view, "Could not generate questions") {
		t.Error("expected error view")
	}
	if !strings.Contains(view, "gemini-2.5-flash") {
		t.Error("expected available models in error view")
	}

	gen.err = nil
	gen.questions = testQuestions()
	_, cmd := s.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected retry command")
	}
	s.Update(cmd())

	if gen.calls != 2 {
		t.Errorf("generator calls = %d, want 2", gen.calls)
	}
	if s.err != nil {
		t.Errorf("unexpected error after retry: %v", s.err)
	}
}

func TestSessionScreen_EmptyQuestionSet(t *testing.T) {
	s := started(t, &fakeGenerator{questions: []quiz.Question{}})
	if s.err == nil {
		t.Fatal("expected an error for an empty question set")
	}
}

func TestSessionScreen_KeysIgnoredWhileLoading(t *testing.T) {
	s := New(&fakeGenerator{err: errors.New("unused")}, "Math", "Fractions")
	s.Init()
	_, cmd := s.Update(keyPress('f'))
	if cmd != nil {
		t.Error("expected no command while loading")
	}
}

func TestSessionScreen_PopCancelsGeneration(t *testing.T) {
	gen := &fakeGenerator{questions: testQuestions()}
	s := New(gen, "Math", "Fractions")
	r := router.New(summary.New("Math", "Fractions", nil))

	cmd := r.Push(s)
	cmd() // generation ran, result not delivered yet
	if gen.ctx == nil {
		t.Fatal("expected the generator to receive a context")
	}
	if gen.ctx.Err() != nil {
		t.Fatal("context cancelled before the screen was left")
	}

	r.Update(router.PopScreenMsg{})
	if !errors.Is(gen.ctx.Err(), context.Canceled) {
		t.Errorf("ctx.Err() = %v, want context.Canceled", gen.ctx.Err())
	}
}

func TestSessionScreen_RetryCancelsPreviousContext(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("boom")}
	s := New(gen, "Math", "Fractions")

	first := s.Init()
	first()
	firstCtx := gen.ctx

	s.Init()()
	if !errors.Is(firstCtx.Err(), context.Canceled) {
		t.Errorf("first ctx.Err() = %v, want context.Canceled", firstCtx.Err())
	}
	if gen.ctx.Err() != nil {
		t.Error("current generation must stay live")
	}
}
