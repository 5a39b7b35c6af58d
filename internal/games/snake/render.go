package snake

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/snake-arcade/internal/core"
)

const (
	hudHeight = 1 // Status line; the board border sits right below it

	glyphHead  = 'O'
	glyphBody  = 'o'
	glyphFood  = '*'
	glyphBonus = '$'

	// bonusBlinkTicks is when a visible bonus starts blinking before it expires.
	bonusBlinkTicks = 10
)

var titleArt = []string{
	" ___  _  _    _    _  __ ___ ",
	"/ __|| \\| |  /_\\  | |/ /| __|",
	"\\__ \\| .` | / _ \\ | ' < | _| ",
	"|___/|_|\\_|/_/ \\_\\|_|\\_\\|___|",
}

// Layout describes where the board sits on the screen.
type Layout struct {
	Board    core.Rect // Border rectangle, one cell larger than the grid on each side
	TooSmall bool
}

// ComputeLayout centers the board below the HUD.
func ComputeLayout(grid core.Grid, screenW, screenH int) Layout {
	boardW := grid.Width + 2
	boardH := grid.Height + 2
	if screenW < boardW || screenH < boardH+hudHeight {
		return Layout{TooSmall: true}
	}
	x := (screenW - boardW) / 2
	return Layout{Board: core.NewRect(x, hudHeight, boardW, boardH)}
}

// MinScreenSize returns the terminal size needed to show grid when the
// platform keeps reserved rows for itself below the game screen.
func MinScreenSize(grid core.Grid, reserved int) (int, int) {
	return grid.Width + 2, grid.Height + 2 + hudHeight + reserved
}

// Options tunes rendering for the hosting platform.
type Options struct {
	// ReservedRows is how many terminal rows the platform draws below the
	// game screen. Only used to report the size needed.
	ReservedRows int
}

// CellToScreen converts a grid cell to screen coordinates.
func (l Layout) CellToScreen(c core.Cell) (int, int) {
	return l.Board.X + 1 + c.X, l.Board.Y + 1 + c.Y
}

// Render draws a snapshot into the screen buffer.
func Render(snap Snapshot, dst *core.Screen) {
	RenderWith(snap, dst, Options{})
}

// RenderWith draws a snapshot into the screen buffer using opts.
func RenderWith(snap Snapshot, dst *core.Screen, opts Options) {
	dst.Clear()

	if snap.State == StateMenu {
		renderMenu(snap, dst)
		return
	}

	renderHUD(snap, dst)

	layout := ComputeLayout(snap.Grid, dst.Width(), dst.Height())
	if layout.TooSmall {
		w, h := MinScreenSize(snap.Grid, opts.ReservedRows)
		renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", w, h))
		return
	}

	dst.DrawBox(layout.Board, core.ColorGray)
	renderFood(snap, layout, dst)
	renderSnake(snap, layout, dst)

	switch snap.State {
	case StatePaused:
		renderOverlay(dst, "Paused", "Press P to continue")
	case StateGameOver:
		renderOverlay(dst,
			fmt.Sprintf("Game Over - Score: %d", snap.Score),
			causeMessage(snap.Cause),
			"R: Restart   M: Menu")
	}
}

// renderHUD draws the top status bar.
func renderHUD(snap Snapshot, dst *core.Screen) {
	hud := fmt.Sprintf(" SNAKE  Score: %d  Best: %d  Speed: %d/s  Length: %d",
		snap.Score, snap.Best, snap.MovesPerSecond, len(snap.Snake))
	if snap.Bonus.Visible {
		hud += fmt.Sprintf("  Bonus: %d", snap.Bonus.Remaining)
	}
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
}

func renderFood(snap Snapshot, layout Layout, dst *core.Screen) {
	x, y := layout.CellToScreen(snap.Food)
	dst.SetColored(x, y, glyphFood, core.ColorRed)

	if !snap.Bonus.Visible {
		return
	}
	// Blink during the last ticks so the player sees it is about to vanish
	if snap.Bonus.Remaining <= bonusBlinkTicks && snap.Bonus.Remaining%2 == 0 {
		return
	}
	bx, by := layout.CellToScreen(snap.Bonus.Cell)
	dst.SetColored(bx, by, glyphBonus, core.ColorBrightYellow)
}

// renderSnake draws body first so the head wins on overlap.
func renderSnake(snap Snapshot, layout Layout, dst *core.Screen) {
	bodyColor := core.ColorGreen
	if snap.State == StateGameOver {
		bodyColor = core.ColorGray
	}
	for i := len(snap.Snake) - 1; i >= 1; i-- {
		x, y := layout.CellToScreen(snap.Snake[i])
		dst.SetColored(x, y, glyphBody, bodyColor)
	}
	if head, ok := snap.Head(); ok {
		x, y := layout.CellToScreen(head)
		dst.SetColored(x, y, glyphHead, core.ColorBrightGreen)
	}
}

func renderMenu(snap Snapshot, dst *core.Screen) {
	top := core.Clamp((dst.Height()-len(titleArt)-8)/2, 0, dst.Height())
	for i, line := range titleArt {
		dst.DrawTextCentered(top+i, line, core.ColorBrightGreen)
	}
	artW := utf8.RuneCountInString(titleArt[0])
	dst.DrawHLine((dst.Width()-artW)/2, top+len(titleArt), artW, '─', core.ColorGray)

	y := top + len(titleArt) + 2
	dst.DrawTextCentered(y, fmt.Sprintf("Grid %dx%d", snap.Grid.Width, snap.Grid.Height), core.ColorGray)
	if snap.Best > 0 {
		dst.DrawTextCentered(y+1, fmt.Sprintf("Best this session: %d", snap.Best), core.ColorYellow)
	}
	dst.DrawTextCentered(y+3, "Enter: Start   Esc: Quit", core.ColorWhite)
	dst.DrawTextCentered(y+4, fmt.Sprintf("Eat %c to grow, grab %c before it vanishes", glyphFood, glyphBonus), core.ColorGray)
}

func causeMessage(c EndCause) string {
	switch c {
	case CauseWall:
		return "You hit the wall"
	case CauseSelf:
		return "You bit yourself"
	case CauseSpawnExhausted:
		return "The board is full"
	default:
		return ""
	}
}

// renderOverlay draws a centered box with one line per message.
func renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawBox(box, core.ColorWhite)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i*2, l, core.ColorBrightYellow)
	}
}

// Render draws the current state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	Render(g.Snapshot(), dst)
}
