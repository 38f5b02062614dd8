package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// SummaryScreen shows the graded quiz with explanations.
type SummaryScreen struct {
	subject string
	chapter string
	results []quiz.GradingResult
	summary quiz.Summary
	offset  int // first visible line of the results list
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)
var _ screen.StatusProvider = (*SummaryScreen)(nil)

// New creates a SummaryScreen for graded results.
func New(subject, chapter string, results []quiz.GradingResult) *SummaryScreen {
	return &SummaryScreen{
		subject: subject,
		chapter: chapter,
		results: results,
		summary: quiz.Summarize(results),
	}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Results"
}

func (s *SummaryScreen) Status() string {
	return fmt.Sprintf("%.0f%%", s.summary.Score)
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Enter", Description: "New quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Summary returns the totals shown on the screen.
func (s *SummaryScreen) Summary() quiz.Summary {
	return s.summary
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "enter":
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary

	var head strings.Builder
	head.WriteString(theme.Title.Render(fmt.Sprintf("%s: %s", s.subject, s.chapter)))
	head.WriteString("\n")
	head.WriteString(theme.Score.Render(fmt.Sprintf("%d / %d correct", sum.Correct, sum.Total)))
	head.WriteString(theme.Subtitle.Render(fmt.Sprintf("   %d answered   score %.2f%%", sum.Answered, sum.Score)))
	head.WriteString("\n\n")

	lines := s.resultLines(max(width-8, 20))
	visible := max(height-lipgloss.Height(head.String())-1, 1)
	maxOffset := max(len(lines)-visible, 0)
	if s.offset > maxOffset {
		s.offset = maxOffset
	}
	end := min(s.offset+visible, len(lines))

	body := head.String() + strings.Join(lines[s.offset:end], "\n")
	return lipgloss.NewStyle().PaddingLeft(4).Render(body)
}

// resultLines renders every result as wrapped lines so the view can scroll.
func (s *SummaryScreen) resultLines(width int) []string {
	wrap := lipgloss.NewStyle().Width(width)

	var lines []string
	for i, r := range s.results {
		mark := theme.Incorrect.Render("✗")
		if r.IsCorrect {
			mark = theme.Correct.Render("✓")
		}
		block := fmt.Sprintf("%s %d. %s\n", mark, i+1, theme.Body.Bold(true).Render(r.QuestionText()))
		block += theme.Subtitle.Render(fmt.Sprintf("   your answer: %s   correct: %s", r.UserAnswerText(), strings.Join(r.CorrectLabels(), ", ")))
		if ex := r.ExplanationText(); ex != "" {
			block += "\n" + theme.Hint.Render("   "+ex)
		}
		lines = append(lines, strings.Split(wrap.Render(block), "\n")...)
		lines = append(lines, "")
	}
	return lines
}
