package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rebatedor/internal/core"
)

// KeyMap defines the key bindings of the game screen.
type KeyMap struct {
	Start      key.Binding
	Pause      key.Binding
	Fullscreen key.Binding
	Restart    key.Binding
	Left       key.Binding
	Right      key.Binding
	Quit       key.Binding
}

// ShortHelp returns bindings for the footer line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.Pause, k.Restart, k.Fullscreen, k.Quit}
}

// FullHelp returns all bindings grouped by column.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Pause, k.Restart},
		{k.Left, k.Right},
		{k.Fullscreen, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. The mouse drives the paddle;
// the arrow keys nudge a virtual pointer for terminals without mouse support.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("click/s", "start"),
		),
		Pause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "fullscreen"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "paddle left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "paddle right"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
// Paddle keys are not actions; see Nudge.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Fullscreen):
		return core.ActionFullscreen
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}

// Nudge returns the horizontal direction a paddle key pushes the virtual
// pointer: -1, +1, or 0 for other keys.
func (k KeyMap) Nudge(msg tea.KeyMsg) int {
	switch {
	case key.Matches(msg, k.Left):
		return -1
	case key.Matches(msg, k.Right):
		return 1
	}
	return 0
}
