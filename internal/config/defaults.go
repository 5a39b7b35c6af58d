package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the hardcoded default configuration.
// It mirrors defaults/snake.yaml and is used if the embedded file fails to parse.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  40,
			Height: 20,
		},
		Scoring: ScoringConfig{
			FoodValue:  1,
			BonusValue: 5,
		},
		Bonus: BonusConfig{
			Enabled:       true,
			CooldownTicks: 50,
			DurationTicks: 30,
		},
		Speed: SpeedConfig{
			Base:         5,
			ScorePerStep: 5,
			Max:          20,
			Progression:  true,
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   false,
			Volume:  0.5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
