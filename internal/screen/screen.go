package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/bacdz/eduai/internal/ui/layout"
)

// Screen is one navigation step's view. Screens render purely from shared
// session state and report transitions by mutating it.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface for custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
