package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/quizgen/internal/ui/theme"
)

// ProgressBar shows how far through the quiz the user is.
type ProgressBar struct {
	Current int
	Total   int
	Width   int
}

// View renders "n/total" followed by a bar filling the rest of Width.
func (p ProgressBar) View() string {
	counter := fmt.Sprintf("%d/%d  ", p.Current, p.Total)

	barWidth := p.Width - lipgloss.Width(counter)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Current / p.Total
	}
	filled = max(0, min(filled, barWidth))

	return theme.Subtitle.Render(counter) +
		lipgloss.NewStyle().Background(theme.Secondary).Render(strings.Repeat(" ", filled)) +
		lipgloss.NewStyle().Background(theme.Border).Render(strings.Repeat(" ", barWidth-filled))
}
