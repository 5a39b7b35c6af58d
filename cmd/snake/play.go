package main

import (
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/snake-arcade/internal/audio"
	"github.com/vovakirdan/snake-arcade/internal/config"
	"github.com/vovakirdan/snake-arcade/internal/core"
	"github.com/vovakirdan/snake-arcade/internal/games/snake"
	"github.com/vovakirdan/snake-arcade/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD/HJKL - Steer
  Enter/Space      - Start from the menu
  Esc              - Leave from the menu
  P                - Pause / resume
  R                - Restart (after game over)
  M                - Back to menu (after game over)
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Starts slow, speeds up gently
  normal - The classic curve: 5 moves/s plus one every 5 points
  hard   - Starts fast, speeds up quickly
  fixed  - No speed-up, stays at the config's base speed

Examples:
  snake play
  snake play --difficulty easy
  snake play --config ./my-snake.yaml --log-file snake.log --debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	rules, err := loadRules()
	if err != nil {
		return err
	}

	// The TUI owns the terminal, so logs only go to a file.
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		return err
	}
	defer closeLog()

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	player := openAudio(audio.Open, rules.Audio, logger, os.Stderr)
	defer player.Close()

	logger.Info("starting", "seed", cfg.Seed, "grid", rules.Grid, "difficulty", flagDifficulty)
	return tui.Run(snake.New(rules, cfg.Seed), cfg, player, logger)
}

// openAudio falls back to a silent player when the device cannot be opened.
// Without --log-file the warning also goes to stderr, since the TUI is about
// to take over the terminal.
func openAudio(open func(config.AudioConfig) (audio.Player, error), cfg config.AudioConfig, logger *log.Logger, stderr io.Writer) audio.Player {
	player, err := open(cfg)
	if err == nil {
		return player
	}
	logger.Warn("audio unavailable, playing silently", "error", err)
	if flagLogFile == "" {
		log.New(stderr).Warn("audio unavailable, playing silently", "error", err)
	}
	if player == nil {
		player = audio.Nop{}
	}
	return player
}
