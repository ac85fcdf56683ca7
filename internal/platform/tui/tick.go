// Package tui runs games in the terminal with Bubble Tea. It owns the tick
// loop, maps keys and mouse presses to core input, and converts the game's
// screen buffer to styled output.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game step.
type TickMsg time.Time

func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
