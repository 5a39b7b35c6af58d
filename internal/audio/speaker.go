package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/snake-arcade/internal/config"
)

const (
	sampleRate   = beep.SampleRate(44100)
	bufferLength = 50 * time.Millisecond

	// musicLevel keeps the loop under the effects.
	musicLevel = 0.35
)

// Speaker plays effects on the default output device.
// The beep speaker is process-wide, so only one Speaker should be open.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	music  *beep.Ctrl
	volume float64
	closed bool
}

// NewSpeaker initialises the output device and starts the mixer.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(bufferLength)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		volume: cfg.Volume,
	}
	if cfg.Music {
		s.music = &beep.Ctrl{Streamer: Music(sampleRate, cfg.Volume*musicLevel), Paused: true}
		s.mixer.Add(s.music)
	}
	speaker.Play(s.mixer)
	return s, nil
}

// Play queues an effect; it mixes with anything already playing.
func (s *Speaker) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	st := Effect(snd, sampleRate, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

func (s *Speaker) SetMusic(on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.music == nil {
		return
	}

	speaker.Lock()
	s.music.Paused = !on
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (s *Speaker) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	speaker.Clear()
	speaker.Close()
	return nil
}
