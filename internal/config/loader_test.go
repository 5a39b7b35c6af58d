package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, expected %+v", cfg, Default())
	}
}

func TestParsePartialOverridesDefaults(t *testing.T) {
	cfg, err := Parse([]byte("grid:\n  width: 12\nscoring:\n  bonus_value: 9\n"))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	if cfg.Grid.Width != 12 {
		t.Errorf("Grid.Width = %d, expected 12", cfg.Grid.Width)
	}
	if cfg.Grid.Height != Default().Grid.Height {
		t.Errorf("Grid.Height = %d, expected default %d", cfg.Grid.Height, Default().Grid.Height)
	}
	if cfg.Scoring.BonusValue != 9 {
		t.Errorf("Scoring.BonusValue = %d, expected 9", cfg.Scoring.BonusValue)
	}
	if cfg.Scoring.FoodValue != Default().Scoring.FoodValue {
		t.Errorf("Scoring.FoodValue should keep its default")
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"tiny grid", "grid:\n  width: 1\n", "grid must be at least"},
		{"zero speed", "speed:\n  base: 0\n", "speed.base"},
		{"max below base", "speed:\n  base: 10\n  max: 5\n", "speed.max"},
		{"bad bonus", "bonus:\n  cooldown_ticks: 0\n", "bonus timers"},
		{"loud", "audio:\n  volume: 2\n", "audio.volume"},
		{"malformed", "grid: [", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if err == nil {
				t.Fatal("Parse() should fail")
			}
			if tc.want != "" && !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 10\n  height: 8\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Grid.Width != 10 || cfg.Grid.Height != 8 {
		t.Errorf("Grid = %+v, expected 10x8", cfg.Grid)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, expected defaults", cfg)
	}
}

func TestLoadLocalConfigDir(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(LocalConfigPath, []byte("scoring:\n  food_value: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Scoring.FoodValue != 3 {
		t.Errorf("FoodValue = %d, expected 3 from %s", cfg.Scoring.FoodValue, LocalConfigPath)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(Default())
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if !strings.Contains(string(data), "score_per_step") {
		t.Errorf("marshalled YAML should use snake_case keys:\n%s", data)
	}
}
