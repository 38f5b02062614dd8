package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizgen/internal/ui/layout"
)

// Screen is one page of the terminal quiz.
type Screen interface {
	Init() tea.Cmd

	// Update handles messages and returns the updated screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body (header and footer excluded).
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that supply their own footer
// key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Closer is implemented by screens that hold in-flight work. The router
// calls Close when the screen leaves the stack.
type Closer interface {
	Close()
}

// StatusProvider is implemented by screens that show a short status string
// (progress, score) on the right of the header.
type StatusProvider interface {
	Status() string
}
