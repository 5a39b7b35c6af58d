package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// BonusView is the read-only bonus state.
type BonusView struct {
	Cell      core.Cell
	Visible   bool
	Remaining int // Ticks left while visible
}

// Snapshot captures everything a renderer needs. Slices are copies, so a
// snapshot stays valid after the game moves on.
type Snapshot struct {
	State          State
	Grid           core.Grid
	Snake          []core.Cell // Head first; empty in the menu
	Food           core.Cell
	Bonus          BonusView
	Score          int
	Best           int
	Dir            core.Direction
	Tick           uint64
	MovesPerSecond int
	Cause          EndCause
}

// Head returns the head cell and whether there is a snake.
func (s Snapshot) Head() (core.Cell, bool) {
	if len(s.Snake) == 0 {
		return core.Cell{}, false
	}
	return s.Snake[0], true
}

// InRound reports whether the snapshot carries round data.
func (s Snapshot) InRound() bool {
	return s.State != StateMenu
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		State:          g.state,
		Grid:           g.grid,
		Best:           g.best,
		Dir:            g.Direction(),
		MovesPerSecond: g.MovesPerSecond(),
	}

	r := g.round
	if r == nil {
		return snap
	}

	snap.Snake = r.body.Cells()
	snap.Food = r.food
	snap.Score = r.score
	snap.Tick = r.ticks
	snap.Cause = r.cause
	snap.Bonus = BonusView{
		Cell:      r.bonus.Cell(),
		Visible:   r.bonus.Visible(),
		Remaining: r.bonus.Remaining(),
	}
	return snap
}
