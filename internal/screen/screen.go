// Package screen declares what the app shell needs from each drill screen.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mathdrill/internal/ui/layout"
)

// Screen is one page of the tutor: home, drill, skill map, history or
// summary. The shell draws the header and footer around View.
type Screen interface {
	// Init runs once when the screen is opened.
	Init() tea.Cmd

	// Update returns the screen to keep on the stack, usually itself.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the body within width x height.
	View(width, height int) string

	// Title labels the screen in the header.
	Title() string
}

// KeyHintProvider lets a screen list its own keys in the footer.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider lets a screen override the header's session tally.
type StatusProvider interface {
	Status() string
}
