package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

// loadRules loads the config and applies the global flags to it.
func loadRules() (config.Config, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.Config{}, err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if flagMute {
		cfg.Audio.Enabled = false
	}
	return cfg, nil
}

// newLogger builds a logger writing to the --log-file, or to fallback when
// no file was given. The returned close func releases the file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	out := fallback
	closeFn := func() error { return nil }

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
