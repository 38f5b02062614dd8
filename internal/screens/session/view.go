package session

import (
	"errors"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/quiz"
	"github.com/abhisek/quizgen/internal/ui/components"
	"github.com/abhisek/quizgen/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	switch {
	case s.loading:
		return renderCentered(width, theme.Hint.Render("Generating questions..."))
	case s.err != nil:
		return renderError(width, s.err)
	case len(s.questions) == 0:
		return ""
	}

	var b strings.Builder
	bar := components.ProgressBar{Current: s.current + 1, Total: len(s.questions), Width: width - 4}
	b.WriteString("  " + bar.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().
		Width(max(width-8, 0)).
		PaddingLeft(4).
		Render(s.choice.View())
	b.WriteString(body)

	return b.String()
}

func renderCentered(width int, content string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("\n\n" + content)
}

func renderError(width int, err error) string {
	var b strings.Builder
	b.WriteString(theme.ErrorText.Render("Could not generate questions"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(err.Error()))

	var mu *quiz.ModelUnavailableError
	if errors.As(err, &mu) && len(mu.AvailableModels) > 0 {
		b.WriteString("\n\n")
		b.WriteString(theme.Subtitle.Render(fmt.Sprintf("Available models: %s", strings.Join(mu.AvailableModels, ", "))))
	}
	return renderCentered(width, b.String())
}
