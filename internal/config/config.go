// Package config provides YAML-based game configuration loading and
// difficulty management for the snake game.
package config

import (
	"errors"
	"fmt"
)

// Config contains all tunable rules for the snake game.
type Config struct {
	Grid    GridConfig    `yaml:"grid"`
	Scoring ScoringConfig `yaml:"scoring"`
	Bonus   BonusConfig   `yaml:"bonus"`
	Speed   SpeedConfig   `yaml:"speed"`
	Audio   AudioConfig   `yaml:"audio"`
}

// GridConfig defines the playfield size in cells.
type GridConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines points granted per item.
type ScoringConfig struct {
	FoodValue  int `yaml:"food_value"`
	BonusValue int `yaml:"bonus_value"`
}

// BonusConfig defines the bonus food timers, in movement ticks.
type BonusConfig struct {
	Enabled       bool `yaml:"enabled"`
	CooldownTicks int  `yaml:"cooldown_ticks"` // Ticks hidden before the bonus appears
	DurationTicks int  `yaml:"duration_ticks"` // Ticks the bonus stays visible
}

// SpeedConfig defines the movement rate step function.
type SpeedConfig struct {
	Base         int  `yaml:"base"`           // Moves per second at score 0
	ScorePerStep int  `yaml:"score_per_step"` // Score needed for each +1 move/s
	Max          int  `yaml:"max"`            // Upper bound on moves per second
	Progression  bool `yaml:"progression"`    // false keeps the base rate forever
}

// AudioConfig defines sound playback settings for the local terminal.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Music   bool    `yaml:"music"`  // Loop a background tune while playing
	Volume  float64 `yaml:"volume"` // 0.0 (silent) to 1.0
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	var errs []error

	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		errs = append(errs, fmt.Errorf("grid must be at least 2x2, got %dx%d", c.Grid.Width, c.Grid.Height))
	}
	if c.Scoring.FoodValue < 0 || c.Scoring.BonusValue < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if c.Bonus.Enabled && (c.Bonus.CooldownTicks < 1 || c.Bonus.DurationTicks < 1) {
		errs = append(errs, fmt.Errorf("bonus timers must be positive, got cooldown=%d duration=%d",
			c.Bonus.CooldownTicks, c.Bonus.DurationTicks))
	}
	if c.Speed.Base < 1 {
		errs = append(errs, fmt.Errorf("speed.base must be at least 1, got %d", c.Speed.Base))
	}
	if c.Speed.Max < c.Speed.Base {
		errs = append(errs, fmt.Errorf("speed.max (%d) must not be below speed.base (%d)", c.Speed.Max, c.Speed.Base))
	}
	if c.Speed.Progression && c.Speed.ScorePerStep < 1 {
		errs = append(errs, fmt.Errorf("speed.score_per_step must be at least 1, got %d", c.Speed.ScorePerStep))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	return errors.Join(errs...)
}
