// snake is a terminal Snake game.
//
// Usage:
//
//	snake                    - Play in this terminal (same as "snake play")
//	snake play               - Play in this terminal
//	snake serve              - Start an SSH server, one game per connection
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>          - Custom config YAML
//	--difficulty <preset>    - easy, normal, hard or fixed
//	--seed <value>           - RNG seed for reproducible games
//	--mute                   - Disable sound
//	--log-file <path>        - Write logs to a file
//	--debug                  - Log bonus and food events too
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagSeed       int64
	flagMute       bool
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Snake is the classic arcade game for the terminal.

Steer the snake to the food, grow longer, and grab the bonus before it
vanishes. Hitting a wall or your own body ends the round. The snake
speeds up as your score rises.

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  snake
  snake --difficulty hard
  snake play --seed 42 --mute
  snake serve --ssh :2222
  snake config --difficulty easy`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
