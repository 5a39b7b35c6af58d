// Package audio synthesises the game's sound effects with beep and plays
// them through the system speaker.
package audio

import (
	"github.com/vovakirdan/snake-arcade/internal/config"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundEat Sound = iota
	SoundBonus
	SoundBonusAppeared
	SoundGameOver
	SoundStart
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundBonus:
		return "bonus"
	case SoundBonusAppeared:
		return "bonus_appeared"
	case SoundGameOver:
		return "game_over"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// Player plays sound effects and optional background music.
type Player interface {
	Play(s Sound)
	// SetMusic starts or pauses the background loop.
	SetMusic(on bool)
	Close() error
}

// Nop is a silent player.
type Nop struct{}

func (Nop) Play(Sound)    {}
func (Nop) SetMusic(bool) {}
func (Nop) Close() error  { return nil }

// Open returns a speaker-backed player, or Nop when audio is disabled.
// When the speaker cannot be opened the error is returned together with
// a Nop player so callers can log it and keep going.
func Open(cfg config.AudioConfig) (Player, error) {
	if !cfg.Enabled || cfg.Volume <= 0 {
		return Nop{}, nil
	}
	sp, err := NewSpeaker(cfg)
	if err != nil {
		return Nop{}, err
	}
	return sp, nil
}
