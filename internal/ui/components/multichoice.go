package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

// MultiChoice lets the user pick one labelled option of a question.
type MultiChoice struct {
	Question string
	Options  []quiz.Option
	Cursor   int
	Chosen   string // label of the picked option; empty until submitted
}

// NewMultiChoice creates a selector for q. Options without a label are
// given their letter position ("a", "b", ...).
func NewMultiChoice(q quiz.Question) MultiChoice {
	text := ""
	if q.Question != nil {
		text = *q.Question
	}
	opts := make([]quiz.Option, len(q.Options))
	for i, o := range q.Options {
		if o.Label == "" {
			o.Label = string(rune('a' + i%26))
		}
		opts[i] = o
	}
	return MultiChoice{Question: text, Options: opts}
}

// Submitted reports whether an option was picked.
func (m MultiChoice) Submitted() bool {
	return m.Chosen != ""
}

// Update handles arrow/vi navigation, Enter to pick, and picking by
// typing an option's label.
func (m MultiChoice) Update(msg tea.Msg) (MultiChoice, tea.Cmd) {
	if m.Submitted() || len(m.Options) == 0 {
		return m, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if m.Cursor > 0 {
			m.Cursor--
		}
	case "down", "j":
		if m.Cursor < len(m.Options)-1 {
			m.Cursor++
		}
	case "enter":
		m.Chosen = m.Options[m.Cursor].Label
	default:
		for i, o := range m.Options {
			if strings.EqualFold(o.Label, key) {
				m.Cursor = i
				m.Chosen = o.Label
				break
			}
		}
	}

	return m, nil
}

// View renders the question and its options.
func (m MultiChoice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(m.Question))
	b.WriteString("\n\n")

	if len(m.Options) == 0 {
		b.WriteString(theme.Hint.Render("(no options)"))
		return b.String()
	}

	for i, opt := range m.Options {
		prefix := "  "
		if i == m.Cursor && !m.Submitted() {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s)  %s", prefix, opt.Label, opt.Option)

		switch {
		case m.Submitted() && opt.Label == m.Chosen:
			b.WriteString(theme.Selected.Render(line))
		case m.Submitted():
			b.WriteString(theme.Hint.Render(line))
		case i == m.Cursor:
			b.WriteString(theme.Selected.Render(line))
		default:
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}
