// Package tui is the terminal host: it runs the Bubble Tea loop, maps keys
// and mouse events to input frames, and draws the game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const fallbackTickRate = 60

// TickMsg asks the model to run one simulation step with the staged input frame.
type TickMsg time.Time

// tickCmd schedules the next TickMsg. Rates of zero or less run at 60 Hz.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = fallbackTickRate
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
