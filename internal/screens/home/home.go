package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/router"
	"github.com/abhisek/quizgen/internal/screen"
	"github.com/abhisek/quizgen/internal/screens/session"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/layout"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

const (
	fieldSubject = iota
	fieldChapter
)

// HomeScreen asks for the subject and chapter of the next quiz.
type HomeScreen struct {
	generator session.Generator
	fields    [2]components.TextInput
	focus     int
	errMsg    string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. subject and chapter prefill the fields.
func New(generator session.Generator, subject, chapter string) *HomeScreen {
	s := &HomeScreen{generator: generator}
	s.fields[fieldSubject] = components.NewTextInput("Subject", "e.g. Physics", 120)
	s.fields[fieldChapter] = components.NewTextInput("Chapter", "e.g. Laws of Motion", 120)
	s.fields[fieldSubject].Model.SetValue(subject)
	s.fields[fieldChapter].Model.SetValue(chapter)
	return s
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.setFocus(s.focus)
}

func (s *HomeScreen) Title() string {
	return "New Quiz"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Topic returns the trimmed subject and chapter.
func (s *HomeScreen) Topic() (subject, chapter string) {
	return s.fields[fieldSubject].Value(), s.fields[fieldChapter].Value()
}

func (s *HomeScreen) setFocus(i int) tea.Cmd {
	s.focus = i
	var cmd tea.Cmd
	for j := range s.fields {
		if j == i {
			cmd = s.fields[j].Focus()
		} else {
			s.fields[j].Blur()
		}
	}
	return cmd
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus((s.focus + 1) % len(s.fields))
		case "shift+tab", "up":
			return s, s.setFocus((s.focus + len(s.fields) - 1) % len(s.fields))
		case "enter":
			return s.submit()
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

func (s *HomeScreen) submit() (screen.Screen, tea.Cmd) {
	subject, chapter := s.Topic()
	switch {
	case subject == "":
		s.errMsg = "Subject is required"
		return s, s.setFocus(fieldSubject)
	case chapter == "":
		if s.focus == fieldSubject {
			s.errMsg = ""
		} else {
			s.errMsg = "Chapter is required"
		}
		return s, s.setFocus(fieldChapter)
	}

	s.errMsg = ""
	next := session.New(s.generator, subject, chapter)
	return s, func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *HomeScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Generate a quiz"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Pick a subject and chapter. Questions are written by the configured model."))
	b.WriteString("\n\n")
	for _, f := range s.fields {
		b.WriteString(f.View())
		b.WriteString("\n\n")
	}
	if s.errMsg != "" {
		b.WriteString(theme.ErrorText.Render(s.errMsg))
	}

	return lipgloss.NewStyle().
		Width(width).
		Padding(1, 4).
		Render(b.String())
}
