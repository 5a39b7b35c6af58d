package snake

import "github.com/vovakirdan/snake-arcade/internal/core"

// BonusPhase reports what happened to the bonus during one tick.
type BonusPhase int

const (
	BonusUnchanged BonusPhase = iota
	BonusAppeared
	BonusExpired
)

// Bonus is the transient high-value food item.
// While hidden only the cooldown runs; while visible only the duration runs.
type Bonus struct {
	cell      core.Cell
	visible   bool
	cooldown  int
	remaining int

	cooldownTicks int
	durationTicks int
}

// NewBonus creates a hidden bonus with a full cooldown.
func NewBonus(cooldownTicks, durationTicks int) Bonus {
	return Bonus{
		cooldown:      cooldownTicks,
		cooldownTicks: cooldownTicks,
		durationTicks: durationTicks,
	}
}

// Visible reports whether the bonus is on the board.
func (b *Bonus) Visible() bool {
	return b.visible
}

// Cell returns the bonus position. Only meaningful while visible.
func (b *Bonus) Cell() core.Cell {
	return b.cell
}

// Remaining returns the ticks left before a visible bonus disappears.
func (b *Bonus) Remaining() int {
	if !b.visible {
		return 0
	}
	return b.remaining
}

// Cooldown returns the ticks left before a hidden bonus appears.
func (b *Bonus) Cooldown() int {
	if b.visible {
		return 0
	}
	return b.cooldown
}

// Tick advances the timers by one movement tick. When the cooldown runs out
// spawn is asked for a position; a spawn error is returned unchanged and the
// bonus stays hidden with a fresh cooldown.
func (b *Bonus) Tick(spawn func() (core.Cell, error)) (BonusPhase, error) {
	if b.visible {
		b.remaining--
		if b.remaining <= 0 {
			b.hide()
			return BonusExpired, nil
		}
		return BonusUnchanged, nil
	}

	b.cooldown--
	if b.cooldown > 0 {
		return BonusUnchanged, nil
	}

	cell, err := spawn()
	if err != nil {
		b.cooldown = b.cooldownTicks
		return BonusUnchanged, err
	}
	b.cell = cell
	b.visible = true
	b.remaining = b.durationTicks
	return BonusAppeared, nil
}

// Eat hides a visible bonus at once, independent of its duration.
// It reports whether there was a bonus at c to eat.
func (b *Bonus) Eat(c core.Cell) bool {
	if !b.visible || b.cell != c {
		return false
	}
	b.hide()
	return true
}

func (b *Bonus) hide() {
	b.visible = false
	b.remaining = 0
	b.cooldown = b.cooldownTicks
}
