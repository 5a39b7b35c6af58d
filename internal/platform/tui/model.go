package tui

import (
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/audio"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
)

// helpHeight is the number of rows reserved below the game for the key help.
const helpHeight = 1

// Model is the Bubble Tea model driving one snake game.
type Model struct {
	game     *snake.Game
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	player   audio.Player
	logger   *log.Logger
	quitting bool
}

// NewModel creates a model for game sized to the given terminal.
// A nil player or logger is replaced by a silent one.
func NewModel(game *snake.Game, cfg core.RuntimeConfig, player audio.Player, logger *log.Logger) Model {
	if player == nil {
		player = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := DefaultKeyMap()
	keys.SetState(game.State())

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH-helpHeight),
		keys:   keys,
		help:   h,
		player: player,
		logger: logger,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.game.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	cmd := m.keys.Command(msg)
	if cmd == core.CmdNone {
		return m, nil
	}

	m.apply(m.game.Handle(cmd))
	if m.game.Terminated() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize keeps the round intact; the renderer shows a notice when
// the board no longer fits.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, msg.Height-helpHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the game and schedules the next tick at the
// current speed.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.apply(m.game.Tick())
	return m, tickCmd(m.game.TickInterval())
}

// apply reacts to the outcome of a command or tick.
func (m *Model) apply(res snake.StepResult) {
	for _, ev := range res.Events {
		m.onEvent(ev)
	}
	m.keys.SetState(res.State)
	m.player.SetMusic(res.State == snake.StatePlaying)
}

func (m *Model) onEvent(ev snake.Event) {
	switch ev {
	case snake.EventRoundStarted:
		m.player.Play(audio.SoundStart)
		m.logger.Info("round started", "grid", m.game.Grid(), "best", m.game.Best())
	case snake.EventAte:
		m.player.Play(audio.SoundEat)
		m.logger.Debug("ate food", "score", m.game.Score())
	case snake.EventAteBonus:
		m.player.Play(audio.SoundBonus)
		m.logger.Debug("ate bonus", "score", m.game.Score())
	case snake.EventBonusAppeared:
		m.player.Play(audio.SoundBonusAppeared)
		m.logger.Debug("bonus appeared")
	case snake.EventBonusExpired:
		m.logger.Debug("bonus expired")
	case snake.EventGameOver:
		m.player.Play(audio.SoundGameOver)
		snap := m.game.Snapshot()
		m.logger.Info("round over",
			"score", snap.Score,
			"length", len(snap.Snake),
			"cause", snap.Cause,
			"ticks", snap.Tick,
		)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.RenderWith(m.game.Snapshot(), m.screen, snake.Options{ReservedRows: helpHeight})
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Game returns the game driven by the model.
func (m Model) Game() *snake.Game {
	return m.game
}

// Quitting reports whether the model asked the program to exit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program on the local terminal and blocks until
// the player quits.
func Run(game *snake.Game, cfg core.RuntimeConfig, player audio.Player, logger *log.Logger) error {
	model := NewModel(game, cfg, player, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
