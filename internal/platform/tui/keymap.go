package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// KeyMap defines the key bindings for the game.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Pause   key.Binding
	Restart key.Binding
	Menu    key.Binding
	Quit    key.Binding
}

// ShortHelp returns the bindings shown in the footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Menu, k.Cancel, k.Quit}
}

// FullHelp returns all bindings grouped by purpose.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Confirm, k.Cancel, k.Pause},
		{k.Restart, k.Menu, k.Quit},
	}
}

// DefaultKeyMap returns arrows, WASD and vim-style bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d/l", "right"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "start"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "exit"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SetState enables only the bindings that mean something in s,
// so the help footer stays relevant.
func (k *KeyMap) SetState(s snake.State) {
	playing := s == snake.StatePlaying
	k.Up.SetEnabled(playing)
	k.Down.SetEnabled(playing)
	k.Left.SetEnabled(playing)
	k.Right.SetEnabled(playing)

	k.Confirm.SetEnabled(s == snake.StateMenu)
	k.Cancel.SetEnabled(s == snake.StateMenu)
	k.Pause.SetEnabled(playing || s == snake.StatePaused)
	k.Restart.SetEnabled(s == snake.StateGameOver)
	k.Menu.SetEnabled(s == snake.StateGameOver)
}

// Command translates a key press into a game command.
// Disabled bindings never match.
func (k KeyMap) Command(msg tea.KeyMsg) core.Command {
	switch {
	case key.Matches(msg, k.Up):
		return core.CmdUp
	case key.Matches(msg, k.Down):
		return core.CmdDown
	case key.Matches(msg, k.Left):
		return core.CmdLeft
	case key.Matches(msg, k.Right):
		return core.CmdRight
	case key.Matches(msg, k.Confirm):
		return core.CmdConfirm
	case key.Matches(msg, k.Cancel):
		return core.CmdCancel
	case key.Matches(msg, k.Pause):
		return core.CmdPause
	case key.Matches(msg, k.Restart):
		return core.CmdRestart
	case key.Matches(msg, k.Menu):
		return core.CmdMenu
	}
	return core.CmdNone
}
