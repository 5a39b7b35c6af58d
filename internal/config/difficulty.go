package config

import (
	"fmt"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Base = 4
		cfg.Speed.ScorePerStep = 8
		cfg.Speed.Max = 12
		cfg.Speed.Progression = true
	case DifficultyNormal:
		cfg.Speed.Base = 5
		cfg.Speed.ScorePerStep = 5
		cfg.Speed.Max = 20
		cfg.Speed.Progression = true
	case DifficultyHard:
		cfg.Speed.Base = 8
		cfg.Speed.ScorePerStep = 3
		cfg.Speed.Max = 30
		cfg.Speed.Progression = true
	case DifficultyFixed:
		cfg.Speed.Progression = false
	}
	if cfg.Speed.Max < cfg.Speed.Base {
		cfg.Speed.Max = cfg.Speed.Base
	}
}

// SpeedCurve maps score to movement rate with a step function.
type SpeedCurve struct {
	cfg SpeedConfig
}

// NewSpeedCurve creates a speed curve from config.
func NewSpeedCurve(cfg SpeedConfig) SpeedCurve {
	return SpeedCurve{cfg: cfg}
}

// MovesPerSecond returns the movement rate for the given score.
// It never decreases as score grows and is capped at Max.
func (s SpeedCurve) MovesPerSecond(score int) int {
	base := max(s.cfg.Base, 1)
	if !s.cfg.Progression || s.cfg.ScorePerStep <= 0 || score <= 0 {
		return base
	}
	rate := base + score/s.cfg.ScorePerStep
	return min(rate, max(s.cfg.Max, base))
}

// Interval returns the time between movement ticks for the given score.
func (s SpeedCurve) Interval(score int) time.Duration {
	return time.Second / time.Duration(s.MovesPerSecond(score))
}
