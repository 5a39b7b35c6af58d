// Package tui runs the snake game in a Bubble Tea program, either on the
// local terminal or per SSH session. It maps keys to game commands, paces
// ticks from the game's current speed and turns game events into sounds.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd schedules the next tick after the given interval.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
