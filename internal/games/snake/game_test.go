package snake

import (
	"testing"
	"time"

	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
)

// testRules returns default rules on a custom grid with the bonus off,
// so tests control every spawn.
func testRules(w, h int) config.Config {
	rules := config.Default()
	rules.Grid = config.GridConfig{Width: w, Height: h}
	rules.Bonus.Enabled = false
	return rules
}

// startedGame returns a game already in Playing.
func startedGame(t *testing.T, rules config.Config, seed int64) *Game {
	t.Helper()
	g := New(rules, seed)
	res := g.Handle(core.CmdConfirm)
	if res.State != StatePlaying {
		t.Fatalf("Confirm from menu should start playing, got %v", res.State)
	}
	return g
}

// place overrides the round layout.
func place(g *Game, dir core.Direction, food core.Cell, headFirst ...core.Cell) {
	g.round.body = NewBodyFrom(headFirst...)
	g.round.heading = dir
	g.round.next = dir
	g.round.food = food
}

func TestNewGameStartsInMenu(t *testing.T) {
	g := New(config.Default(), 1)

	if g.State() != StateMenu {
		t.Errorf("State() = %v, expected menu", g.State())
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
	snap := g.Snapshot()
	if snap.InRound() || len(snap.Snake) != 0 {
		t.Error("menu snapshot should carry no round data")
	}
}

func TestMenuConfirmStartsRound(t *testing.T) {
	rules := testRules(11, 9)
	g := New(rules, 5)
	res := g.Handle(core.CmdConfirm)

	if !res.Has(EventRoundStarted) {
		t.Error("starting a round should emit EventRoundStarted")
	}
	snap := g.Snapshot()
	if len(snap.Snake) != 1 {
		t.Fatalf("snake length = %d, expected 1", len(snap.Snake))
	}
	if snap.Snake[0] != g.Grid().Center() {
		t.Errorf("snake starts at %v, expected grid center %v", snap.Snake[0], g.Grid().Center())
	}
	if snap.Food == snap.Snake[0] {
		t.Error("food must not spawn on the snake")
	}
	if snap.Score != 0 {
		t.Errorf("Score = %d, expected 0", snap.Score)
	}
}

func TestMenuCancelTerminates(t *testing.T) {
	g := New(config.Default(), 1)
	g.Handle(core.CmdCancel)

	if !g.Terminated() {
		t.Error("Cancel in the menu should terminate")
	}
}

func TestIrrelevantCommandsAreNoOps(t *testing.T) {
	g := New(config.Default(), 1)
	for _, cmd := range []core.Command{core.CmdUp, core.CmdPause, core.CmdRestart, core.CmdMenu} {
		if res := g.Handle(cmd); res.State != StateMenu || len(res.Events) != 0 {
			t.Errorf("%v in menu changed state to %v", cmd, res.State)
		}
	}
	if g.Terminated() {
		t.Error("only Cancel should terminate from the menu")
	}

	g = startedGame(t, testRules(10, 10), 1)
	for _, cmd := range []core.Command{core.CmdConfirm, core.CmdCancel, core.CmdRestart, core.CmdMenu} {
		if res := g.Handle(cmd); res.State != StatePlaying {
			t.Errorf("%v while playing changed state to %v", cmd, res.State)
		}
	}
}

// Direction=Right, a request for Left while playing leaves Right in place.
func TestNoImmediateReversal(t *testing.T) {
	g := startedGame(t, testRules(10, 10), 42)
	place(g, core.DirRight, core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5})

	g.Handle(core.CmdLeft)
	if g.Direction() != core.DirRight {
		t.Errorf("Direction() = %v, expected right after a reversal request", g.Direction())
	}

	g.Handle(core.CmdDown)
	if g.Direction() != core.DirDown {
		t.Errorf("Direction() = %v, expected down", g.Direction())
	}
}

// Two quick turns between ticks must not add up to a reversal.
func TestNoReversalThroughQueuedTurns(t *testing.T) {
	g := startedGame(t, testRules(10, 10), 42)
	place(g, core.DirRight, core.Cell{X: 0, Y: 0}, core.Cell{X: 5, Y: 5}, core.Cell{X: 4, Y: 5})

	g.Handle(core.CmdUp)
	g.Handle(core.CmdLeft)
	if g.Direction() != core.DirUp {
		t.Errorf("Direction() = %v, expected up", g.Direction())
	}

	g.Tick()
	if g.State() != StatePlaying {
		t.Fatalf("snake should survive the turn, state = %v", g.State())
	}
	if head, _ := g.Snapshot().Head(); head != (core.Cell{X: 5, Y: 4}) {
		t.Errorf("head = %v, expected (5, 4)", head)
	}
}

// 4x4 grid, snake at (2,2) heading right, food at (3,2).
func TestEatFoodScenario(t *testing.T) {
	rules := testRules(4, 4)
	g := startedGame(t, rules, 3)
	place(g, core.DirRight, core.Cell{X: 3, Y: 2}, core.Cell{X: 2, Y: 2})

	res := g.Tick()

	if !res.Has(EventAte) {
		t.Error("eating should emit EventAte")
	}
	snap := g.Snapshot()
	expected := []core.Cell{{X: 3, Y: 2}, {X: 2, Y: 2}}
	if len(snap.Snake) != len(expected) {
		t.Fatalf("Snake = %v, expected %v", snap.Snake, expected)
	}
	for i := range expected {
		if snap.Snake[i] != expected[i] {
			t.Errorf("Snake[%d] = %v, expected %v", i, snap.Snake[i], expected[i])
		}
	}
	if snap.Score != rules.Scoring.FoodValue {
		t.Errorf("Score = %d, expected %d", snap.Score, rules.Scoring.FoodValue)
	}
	for _, c := range expected {
		if snap.Food == c {
			t.Errorf("new food %v spawned on the snake", snap.Food)
		}
	}
	if g.Grid().OutOfBounds(snap.Food) {
		t.Errorf("new food %v is out of bounds", snap.Food)
	}
}

func TestGrowthProperty(t *testing.T) {
	rules := testRules(20, 20)
	rules.Scoring.FoodValue = 3
	g := startedGame(t, rules, 9)
	place(g, core.DirDown, core.Cell{X: 6, Y: 8},
		core.Cell{X: 6, Y: 7}, core.Cell{X: 6, Y: 6}, core.Cell{X: 6, Y: 5})

	lenBefore, scoreBefore := 3, g.Score()
	g.Tick()

	if got := len(g.Snapshot().Snake); got != lenBefore+1 {
		t.Errorf("length = %d, expected %d", got, lenBefore+1)
	}
	if g.Score() != scoreBefore+3 {
		t.Errorf("Score() = %d, expected %d", g.Score(), scoreBefore+3)
	}
}

func TestMoveWithoutFoodKeepsLength(t *testing.T) {
	g := startedGame(t, testRules(20, 20), 9)
	place(g, core.DirLeft, core.Cell{X: 0, Y: 0},
		core.Cell{X: 10, Y: 10}, core.Cell{X: 11, Y: 10}, core.Cell{X: 12, Y: 10})

	for _, dir := range []core.Command{core.CmdLeft, core.CmdUp, core.CmdRight, core.CmdUp} {
		g.Handle(dir)
		g.Tick()
		if n := len(g.Snapshot().Snake); n != 3 {
			t.Fatalf("after %v length = %d, expected 3", dir, n)
		}
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d, expected 0", g.Score())
	}
}

// Length-4 snake pressed against the top wall: moving up ends the round
// and leaves the snake exactly as it was before the move.
func TestWallCollisionFreezesSnake(t *testing.T) {
	g := startedGame(t, testRules(4, 6), 11)
	body := []core.Cell{{X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: 2}, {X: 1, Y: 3}}
	place(g, core.DirUp, core.Cell{X: 3, Y: 5}, body...)

	res := g.Tick()

	if res.State != StateGameOver || !res.Has(EventGameOver) {
		t.Fatalf("expected game over, got %v %v", res.State, res.Events)
	}
	snap := g.Snapshot()
	if snap.Cause != CauseWall {
		t.Errorf("Cause = %v, expected wall", snap.Cause)
	}
	if len(snap.Snake) != len(body) {
		t.Fatalf("Snake = %v, expected %v", snap.Snake, body)
	}
	for i := range body {
		if snap.Snake[i] != body[i] {
			t.Errorf("Snake[%d] = %v, expected %v", i, snap.Snake[i], body[i])
		}
	}
}

func TestSelfCollision(t *testing.T) {
	g := startedGame(t, testRules(20, 20), 111)
	// Head at (5,5); moving right enters (6,5) which is part of the body.
	place(g, core.DirRight, core.Cell{X: 0, Y: 0},
		core.Cell{X: 5, Y: 5}, core.Cell{X: 5, Y: 6}, core.Cell{X: 6, Y: 6},
		core.Cell{X: 6, Y: 5}, core.Cell{X: 6, Y: 4})

	g.Tick()

	if g.State() != StateGameOver {
		t.Fatal("game should be over after self collision")
	}
	if g.Snapshot().Cause != CauseSelf {
		t.Errorf("Cause = %v, expected self", g.Snapshot().Cause)
	}
}

// The tail cell still counts as an obstacle on the tick it would be vacated.
func TestChasingTailCollides(t *testing.T) {
	g := startedGame(t, testRules(10, 10), 5)
	place(g, core.DirDown, core.Cell{X: 9, Y: 9},
		core.Cell{X: 1, Y: 1}, core.Cell{X: 2, Y: 1}, core.Cell{X: 2, Y: 2}, core.Cell{X: 1, Y: 2})

	g.Tick()

	if g.State() != StateGameOver {
		t.Error("moving into the tail cell should end the round")
	}
}

func TestPauseToggle(t *testing.T) {
	g := startedGame(t, testRules(10, 10), 7)
	place(g, core.DirRight, core.Cell{X: 0, Y: 0}, core.Cell{X: 3, Y: 3})

	if res := g.Handle(core.CmdPause); res.State != StatePaused {
		t.Fatalf("Pause should enter paused, got %v", res.State)
	}

	before := g.Snapshot()
	g.Tick()
	g.Handle(core.CmdDown)
	after := g.Snapshot()

	if after.Snake[0] != before.Snake[0] || after.Tick != before.Tick {
		t.Error("ticks while paused should not move the snake")
	}
	if g.Direction() != core.DirRight {
		t.Error("directional input while paused should be ignored")
	}

	if res := g.Handle(core.CmdPause); res.State != StatePlaying {
		t.Fatalf("Pause again should resume, got %v", res.State)
	}
	g.Tick()
	if head, _ := g.Snapshot().Head(); head != (core.Cell{X: 4, Y: 3}) {
		t.Errorf("head = %v, expected (4, 3) after resuming", head)
	}
}

func TestGameOverRestartResets(t *testing.T) {
	g := startedGame(t, testRules(10, 10), 21)
	place(g, core.DirUp, core.Cell{X: 5, Y: 0}, core.Cell{X: 5, Y: 1})
	g.Tick() // eat at (5,0)
	g.round.food = core.Cell{X: 9, Y: 9}
	g.Handle(core.CmdUp)
	g.Tick() // hits the top wall

	if g.State() != StateGameOver {
		t.Fatalf("expected game over, got %v", g.State())
	}
	if g.Score() == 0 || g.Best() != g.Score() {
		t.Fatalf("Score() = %d Best() = %d before restart", g.Score(), g.Best())
	}
	best := g.Best()

	res := g.Handle(core.CmdRestart)
	if res.State != StatePlaying || !res.Has(EventRoundStarted) {
		t.Fatalf("Restart should start a new round, got %v", res.State)
	}
	if g.Score() != 0 {
		t.Errorf("Score() = %d after restart, expected 0", g.Score())
	}
	if g.Best() != best {
		t.Errorf("Best() = %d, expected %d to survive the restart", g.Best(), best)
	}
	if n := len(g.Snapshot().Snake); n != 1 {
		t.Errorf("snake length = %d after restart, expected 1", n)
	}
}

func TestGameOverMenuDropsRound(t *testing.T) {
	g := startedGame(t, testRules(10, 10), 21)
	place(g, core.DirLeft, core.Cell{X: 9, Y: 9}, core.Cell{X: 0, Y: 4})
	g.Tick()

	if g.State() != StateGameOver {
		t.Fatalf("expected game over, got %v", g.State())
	}
	g.Handle(core.CmdMenu)

	if g.State() != StateMenu {
		t.Fatalf("State() = %v, expected menu", g.State())
	}
	if g.Snapshot().InRound() {
		t.Error("menu should not expose the old round")
	}

	g.Handle(core.CmdConfirm)
	if g.State() != StatePlaying {
		t.Errorf("Confirm from menu after a round should play again, got %v", g.State())
	}
}

func TestSpawnExhaustedEndsRound(t *testing.T) {
	g := startedGame(t, testRules(2, 2), 1)
	place(g, core.DirDown, core.Cell{X: 1, Y: 1},
		core.Cell{X: 1, Y: 0}, core.Cell{X: 0, Y: 0}, core.Cell{X: 0, Y: 1})

	res := g.Tick()

	if res.State != StateGameOver {
		t.Fatalf("filling the board should end the round, got %v", res.State)
	}
	if !res.Has(EventAte) {
		t.Error("the last food should still be eaten")
	}
	if g.Snapshot().Cause != CauseSpawnExhausted {
		t.Errorf("Cause = %v, expected board_full", g.Snapshot().Cause)
	}
}

// The food fills the last free cell, leaving nowhere for the bonus.
func TestBonusSpawnExhaustedEndsRound(t *testing.T) {
	rules := testRules(2, 2)
	rules.Bonus = config.BonusConfig{Enabled: true, CooldownTicks: 1, DurationTicks: 5}
	g := startedGame(t, rules, 1)
	place(g, core.DirDown, core.Cell{X: 0, Y: 1}, core.Cell{X: 0, Y: 0}, core.Cell{X: 1, Y: 0})

	res := g.Tick()

	if !res.Has(EventAte) {
		t.Error("the food should be eaten before the bonus timer fires")
	}
	if res.State != StateGameOver || !res.Has(EventGameOver) {
		t.Fatalf("expected game over, got %v %v", res.State, res.Events)
	}
	if res.Has(EventBonusAppeared) {
		t.Error("bonus cannot appear on a full board")
	}
	snap := g.Snapshot()
	if snap.Cause != CauseSpawnExhausted {
		t.Errorf("Cause = %v, expected board_full", snap.Cause)
	}
	if snap.Food != (core.Cell{X: 1, Y: 1}) {
		t.Errorf("Food = %v, expected the last free cell (1, 1)", snap.Food)
	}
	if len(snap.Snake) != 3 {
		t.Errorf("snake length = %d, expected 3", len(snap.Snake))
	}
}

func TestBonusEatenInGame(t *testing.T) {
	rules := testRules(10, 10)
	rules.Bonus = config.BonusConfig{Enabled: true, CooldownTicks: 1, DurationTicks: 20}
	g := startedGame(t, rules, 4)
	place(g, core.DirRight, core.Cell{X: 9, Y: 9}, core.Cell{X: 0, Y: 5})

	res := g.Tick()
	if !res.Has(EventBonusAppeared) {
		t.Fatal("bonus should appear after a one-tick cooldown")
	}
	bonus := g.Snapshot().Bonus
	if !bonus.Visible {
		t.Fatal("bonus should be visible")
	}
	if g.round.body.Contains(bonus.Cell) || bonus.Cell == g.round.food {
		t.Fatalf("bonus %v spawned on the snake or food", bonus.Cell)
	}

	// Put the bonus right in front of the head.
	head, _ := g.Snapshot().Head()
	g.round.bonus.cell = head.Add(core.DirRight.Offset())

	res = g.Tick()
	if !res.Has(EventAteBonus) {
		t.Fatalf("expected EventAteBonus, got %v", res.Events)
	}
	if g.Score() != rules.Scoring.BonusValue {
		t.Errorf("Score() = %d, expected %d", g.Score(), rules.Scoring.BonusValue)
	}
	if g.Snapshot().Bonus.Visible {
		t.Error("eaten bonus should be hidden immediately")
	}
	if n := len(g.Snapshot().Snake); n != 1 {
		t.Errorf("bonus should not grow the snake, length = %d", n)
	}
}

func TestBonusPeriodicInGame(t *testing.T) {
	rules := testRules(30, 30)
	rules.Bonus = config.BonusConfig{Enabled: true, CooldownTicks: 4, DurationTicks: 3}
	g := startedGame(t, rules, 8)
	// Snake circles in the middle; food parked in a corner.
	place(g, core.DirRight, core.Cell{X: 0, Y: 0}, core.Cell{X: 10, Y: 10})
	turns := []core.Command{core.CmdDown, core.CmdLeft, core.CmdUp, core.CmdRight}

	var appeared []uint64
	for i := 0; i < 40; i++ {
		g.Handle(turns[i%len(turns)])
		res := g.Tick()
		if res.State != StatePlaying {
			t.Fatalf("tick %d: unexpected state %v", i, res.State)
		}
		if res.Has(EventAteBonus) {
			t.Skip("snake happened to eat the bonus")
		}
		if res.Has(EventBonusAppeared) {
			appeared = append(appeared, g.Snapshot().Tick)
		}
	}

	if len(appeared) < 2 {
		t.Fatalf("expected repeated appearances, got %v", appeared)
	}
	for i := 1; i < len(appeared); i++ {
		if gap := appeared[i] - appeared[i-1]; gap != 7 {
			t.Errorf("gap = %d ticks, expected cooldown+duration = 7", gap)
		}
	}
}

func TestTickIntervalSpeedsUp(t *testing.T) {
	rules := testRules(20, 20)
	rules.Speed = config.SpeedConfig{Base: 5, ScorePerStep: 5, Max: 20, Progression: true}
	g := startedGame(t, rules, 1)

	if g.TickInterval() != 200*time.Millisecond {
		t.Errorf("TickInterval() = %v, expected 200ms at score 0", g.TickInterval())
	}

	g.round.score = 10
	if g.TickInterval() != time.Second/7 {
		t.Errorf("TickInterval() = %v, expected 1/7s at score 10", g.TickInterval())
	}

	g.Handle(core.CmdPause)
	if g.TickInterval() != 200*time.Millisecond {
		t.Errorf("paused TickInterval() = %v, expected the base rate", g.TickInterval())
	}
}

func TestDeterminism(t *testing.T) {
	rules := config.Default()

	run := func() Snapshot {
		g := New(rules, 12345)
		g.Handle(core.CmdConfirm)
		cmds := []core.Command{core.CmdUp, core.CmdLeft, core.CmdDown, core.CmdRight}
		for i := 0; i < 60; i++ {
			if i%7 == 0 {
				g.Handle(cmds[(i/7)%len(cmds)])
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Tick != s2.Tick || s1.Score != s2.Score || s1.Food != s2.Food || s1.Dir != s2.Dir {
		t.Errorf("snapshots diverged: %+v vs %+v", s1, s2)
	}
	if len(s1.Snake) != len(s2.Snake) {
		t.Fatalf("snake lengths diverged: %d vs %d", len(s1.Snake), len(s2.Snake))
	}
	for i := range s1.Snake {
		if s1.Snake[i] != s2.Snake[i] {
			t.Fatalf("snake diverged at segment %d", i)
		}
	}
}
