// Package snake implements the snake game rules: the body, food and bonus
// spawning, and the Menu/Playing/Paused/GameOver state machine.
// It has no knowledge of terminals, keys or sound; the platform feeds it
// commands and ticks and reads snapshots back.
package snake

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// State is the game's top-level mode.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// EndCause records why a round ended.
type EndCause int

const (
	CauseNone EndCause = iota
	CauseWall
	CauseSelf
	CauseSpawnExhausted
)

func (c EndCause) String() string {
	switch c {
	case CauseWall:
		return "wall"
	case CauseSelf:
		return "self"
	case CauseSpawnExhausted:
		return "board_full"
	default:
		return "none"
	}
}

// Event is something that happened during a command or tick.
// The platform uses events to trigger sounds and log lines.
type Event int

const (
	EventRoundStarted Event = iota
	EventAte
	EventAteBonus
	EventBonusAppeared
	EventBonusExpired
	EventGameOver
)

func (e Event) String() string {
	switch e {
	case EventRoundStarted:
		return "round_started"
	case EventAte:
		return "ate"
	case EventAteBonus:
		return "ate_bonus"
	case EventBonusAppeared:
		return "bonus_appeared"
	case EventBonusExpired:
		return "bonus_expired"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// StepResult is returned by Handle and Tick.
type StepResult struct {
	State  State
	Events []Event
}

// Has reports whether e occurred.
func (r StepResult) Has(e Event) bool {
	for _, got := range r.Events {
		if got == e {
			return true
		}
	}
	return false
}

// round holds everything that only exists while a game is in progress.
// It is created on entering Playing, kept through Paused, frozen in
// GameOver and dropped on returning to the Menu.
type round struct {
	body    *Body
	heading core.Direction // direction of the last move
	next    core.Direction // direction the next move will take
	food    core.Cell
	bonus   Bonus
	score   int
	ticks   uint64
	cause   EndCause
}

// Game is the snake state machine.
type Game struct {
	rules   config.Config
	grid    core.Grid
	speed   config.SpeedCurve
	rng     *rand.Rand
	spawner *Spawner

	state      State
	round      *round
	best       int
	terminated bool
}

// New creates a game in the Menu state.
func New(rules config.Config, seed int64) *Game {
	rng := rand.New(rand.NewSource(seed))
	grid := core.Grid{Width: rules.Grid.Width, Height: rules.Grid.Height}
	return &Game{
		rules:   rules,
		grid:    grid,
		speed:   config.NewSpeedCurve(rules.Speed),
		rng:     rng,
		spawner: NewSpawner(grid, rng),
		state:   StateMenu,
	}
}

// State returns the current mode.
func (g *Game) State() State {
	return g.state
}

// Terminated reports whether the player left from the menu.
func (g *Game) Terminated() bool {
	return g.terminated
}

// Grid returns the playfield dimensions.
func (g *Game) Grid() core.Grid {
	return g.grid
}

// Score returns the current round's score, or 0 in the menu.
func (g *Game) Score() int {
	if g.round == nil {
		return 0
	}
	return g.round.score
}

// Best returns the highest score reached since the game was created.
func (g *Game) Best() int {
	return g.best
}

// Direction returns the direction the next move will take.
func (g *Game) Direction() core.Direction {
	if g.round == nil {
		return core.DirRight
	}
	return g.round.next
}

// TickInterval returns how long the platform should wait before the next tick.
// The movement rate rises with score while playing.
func (g *Game) TickInterval() time.Duration {
	if g.state == StatePlaying && g.round != nil {
		return g.speed.Interval(g.round.score)
	}
	return g.speed.Interval(0)
}

// MovesPerSecond returns the current movement rate.
func (g *Game) MovesPerSecond() int {
	return g.speed.MovesPerSecond(g.Score())
}

// Handle applies a player command. Commands that mean nothing in the
// current state are ignored.
func (g *Game) Handle(cmd core.Command) StepResult {
	var events []Event

	switch g.state {
	case StateMenu:
		switch cmd {
		case core.CmdConfirm:
			events = g.startRound()
		case core.CmdCancel:
			g.terminated = true
		}

	case StatePlaying:
		if dir, ok := cmd.Direction(); ok {
			g.steer(dir)
		} else if cmd == core.CmdPause {
			g.state = StatePaused
		}

	case StatePaused:
		if cmd == core.CmdPause {
			g.state = StatePlaying
		}

	case StateGameOver:
		switch cmd {
		case core.CmdRestart:
			events = g.startRound()
		case core.CmdMenu:
			g.state = StateMenu
			g.round = nil
		}
	}

	return StepResult{State: g.state, Events: events}
}

// steer queues a turn unless it would reverse straight into the neck.
func (g *Game) steer(dir core.Direction) {
	if dir == g.round.heading.Opposite() {
		return
	}
	g.round.next = dir
}

// startRound resets the per-round data and enters Playing.
func (g *Game) startRound() []Event {
	dir := core.Directions[g.rng.Intn(len(core.Directions))]
	r := &round{
		body:    NewBody(g.grid.Center()),
		heading: dir,
		next:    dir,
		bonus:   NewBonus(g.rules.Bonus.CooldownTicks, g.rules.Bonus.DurationTicks),
	}
	g.round = r
	g.state = StatePlaying

	food, err := g.spawner.Spawn(r.body.Occupied())
	if err != nil {
		return []Event{EventRoundStarted, g.endRound(CauseSpawnExhausted)}
	}
	r.food = food
	return []Event{EventRoundStarted}
}

// endRound freezes the round in GameOver.
func (g *Game) endRound(cause EndCause) Event {
	g.state = StateGameOver
	g.round.cause = cause
	return EventGameOver
}

// Tick advances the game by one movement step. Outside Playing it does nothing.
func (g *Game) Tick() StepResult {
	if g.state != StatePlaying || g.round == nil {
		return StepResult{State: g.state}
	}

	r := g.round
	r.ticks++
	r.heading = r.next

	var events []Event

	newHead := r.body.Advance(r.heading)
	if g.grid.OutOfBounds(newHead) {
		return StepResult{State: g.state, Events: append(events, g.endRound(CauseWall))}
	}
	if r.body.WillCollide(newHead) {
		return StepResult{State: g.state, Events: append(events, g.endRound(CauseSelf))}
	}

	grew := newHead == r.food
	r.body.CommitMove(newHead, grew)

	if grew {
		g.addScore(g.rules.Scoring.FoodValue)
		events = append(events, EventAte)

		food, err := g.spawner.Spawn(g.foodExclusions())
		if err != nil {
			return StepResult{State: g.state, Events: append(events, g.endRound(CauseSpawnExhausted))}
		}
		r.food = food
	}

	if g.rules.Bonus.Enabled {
		phase, err := r.bonus.Tick(g.spawnBonus)
		if err != nil {
			return StepResult{State: g.state, Events: append(events, g.endRound(CauseSpawnExhausted))}
		}
		switch phase {
		case BonusAppeared:
			events = append(events, EventBonusAppeared)
		case BonusExpired:
			events = append(events, EventBonusExpired)
		}

		if r.bonus.Eat(newHead) {
			g.addScore(g.rules.Scoring.BonusValue)
			events = append(events, EventAteBonus)
		}
	}

	return StepResult{State: g.state, Events: events}
}

func (g *Game) addScore(points int) {
	g.round.score += points
	g.best = max(g.best, g.round.score)
}

// foodExclusions returns the snake cells plus a visible bonus.
func (g *Game) foodExclusions() map[core.Cell]struct{} {
	occupied := g.round.body.Occupied()
	if g.round.bonus.Visible() {
		occupied[g.round.bonus.Cell()] = struct{}{}
	}
	return occupied
}

func (g *Game) spawnBonus() (core.Cell, error) {
	occupied := g.round.body.Occupied()
	occupied[g.round.food] = struct{}{}
	return g.spawner.Spawn(occupied)
}
