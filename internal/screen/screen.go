package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/sahajm/quizdeck/internal/ui/layout"
)

// Screen is one full-window view managed by the router. Screens own
// their content area only; the app shell draws the header and footer
// around whatever View returns.
type Screen interface {
	Init() tea.Cmd

	// Update handles a message and returns the screen to keep on the
	// stack, which may be the receiver or a replacement.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	View(width, height int) string

	// Title labels the screen in the header bar.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer hints with
// its own. Screens that don't implement it get the global defaults.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
