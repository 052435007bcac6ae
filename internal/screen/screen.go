// Package screen holds the interface every full-window view implements,
// plus the optional capabilities the app shell looks for.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kakezan/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the body between the header and the footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider replaces the shell's default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider adds text at the right of the header, e.g. the drill
// tally or the dan being played.
type StatusProvider interface {
	Status() string
}

// Closer releases what the screen owns, such as a playback engine, when
// the screen leaves the stack or the program exits.
type Closer interface {
	Close()
}

// EscapeHandler screens get Esc while HandlesEscape is true instead of
// being popped. Listening uses it to step back to the dan picker.
type EscapeHandler interface {
	HandlesEscape() bool
}
