package session

import (
	"context"
	"errors"
	"strconv"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/llm"
	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/summary"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
)

// Purpose tags LLM calls made from the terminal quiz.
const Purpose = "play"

// Generator produces a question set for a topic.
type Generator interface {
	GenerateTopic(ctx context.Context, subject, chapter string) ([]quiz.Question, error)
}

// SessionScreen generates a question set and walks the user through it.
type SessionScreen struct {
	generator Generator
	subject   string
	chapter   string

	questions []quiz.Question
	answers   quiz.Answers
	current   int
	choice    components.MultiChoice

	loading bool
	err     error
	cancel  context.CancelFunc // stops the in-flight generation
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.StatusProvider = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)

// New creates a session for subject/chapter. Generation starts in Init.
func New(generator Generator, subject, chapter string) *SessionScreen {
	return &SessionScreen{
		generator: generator,
		subject:   subject,
		chapter:   chapter,
		answers:   quiz.Answers{},
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	s.loading = true
	s.err = nil
	return s.generate()
}

func (s *SessionScreen) Title() string {
	return s.subject + " · " + s.chapter
}

func (s *SessionScreen) Status() string {
	if len(s.questions) == 0 {
		return ""
	}
	return strconv.Itoa(len(s.answers)) + " answered"
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.loading:
		return []layout.KeyHint{{Key: "Esc", Description: "Cancel"}}
	case s.err != nil:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Answer"},
		{Key: "S", Description: "Skip"},
		{Key: "F", Description: "Finish"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SessionScreen) generate() tea.Cmd {
	s.Close()
	ctx, cancel := context.WithCancel(llm.WithPurpose(context.Background(), Purpose))
	s.cancel = cancel

	gen, subject, chapter := s.generator, s.subject, s.chapter
	return func() tea.Msg {
		qs, err := gen.GenerateTopic(ctx, subject, chapter)
		return questionsReadyMsg{Questions: qs, Err: err}
	}
}

// Close cancels generation still in flight.
func (s *SessionScreen) Close() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsReadyMsg:
		return s.handleReady(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *SessionScreen) handleReady(msg questionsReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	s.Close()
	if msg.Err != nil {
		s.err = msg.Err
		return s, nil
	}
	if len(msg.Questions) == 0 {
		s.err = errors.New("the model returned no questions")
		return s, nil
	}
	s.questions = msg.Questions
	s.current = 0
	s.choice = components.NewMultiChoice(s.questions[0])
	return s, nil
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading {
		return s, nil
	}
	if s.err != nil {
		if msg.String() == "r" {
			return s, s.Init()
		}
		return s, nil
	}

	switch msg.String() {
	case "s", "right":
		return s.advance()
	case "f":
		return s, s.finish()
	}

	s.choice, _ = s.choice.Update(msg)
	if s.choice.Submitted() {
		s.answers[strconv.Itoa(s.current+1)] = s.choice.Chosen
		return s.advance()
	}
	return s, nil
}

// advance moves to the next question, or to the results after the last.
func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	if s.current+1 >= len(s.questions) {
		return s, s.finish()
	}
	s.current++
	s.choice = components.NewMultiChoice(s.questions[s.current])
	return s, nil
}

func (s *SessionScreen) finish() tea.Cmd {
	results := quiz.Evaluate(s.questions, s.answers)
	next := summary.New(s.subject, s.chapter, results)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}
