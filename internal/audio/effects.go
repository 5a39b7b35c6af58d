package audio

import (
	"time"

	"github.com/gopxl/beep"
)

const (
	eatDuration      = 60 * time.Millisecond
	bonusNote        = 70 * time.Millisecond
	appearedDuration = 90 * time.Millisecond
	gameOverNote     = 180 * time.Millisecond
	startNote        = 80 * time.Millisecond
	musicNote        = 200 * time.Millisecond
)

// Note frequencies in Hz.
const (
	noteA3 = 220.00
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteC5 = 523.25
	noteE5 = 659.25
	noteG5 = 783.99
	noteC6 = 1046.50
)

// Duration returns the length of an effect.
func Duration(s Sound) time.Duration {
	switch s {
	case SoundEat:
		return eatDuration
	case SoundBonus:
		return 3 * bonusNote
	case SoundBonusAppeared:
		return appearedDuration
	case SoundGameOver:
		return 3 * gameOverNote
	case SoundStart:
		return 3 * startNote
	default:
		return 0
	}
}

// Effect builds a fresh streamer for s at the given linear volume.
// Unknown sounds yield nil.
func Effect(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundEat:
		st = note(noteE5, eatDuration, WaveSquare, rate)
	case SoundBonus:
		st = beep.Seq(
			note(noteC5, bonusNote, WaveSquare, rate),
			note(noteG5, bonusNote, WaveSquare, rate),
			note(noteC6, bonusNote, WaveSquare, rate),
		)
	case SoundBonusAppeared:
		st = beep.Mix(
			withVolume(note(noteA4, appearedDuration, WaveSine, rate), 0.7),
			withVolume(note(2*noteA4, appearedDuration, WaveSine, rate), 0.3),
		)
	case SoundGameOver:
		st = beep.Seq(
			note(noteE4, gameOverNote, WaveTriangle, rate),
			note(noteC4, gameOverNote, WaveTriangle, rate),
			note(noteA3, gameOverNote, WaveTriangle, rate),
		)
	case SoundStart:
		st = beep.Seq(
			note(noteC4, startNote, WaveSquare, rate),
			note(noteE4, startNote, WaveSquare, rate),
			note(noteG4, startNote, WaveSquare, rate),
		)
	default:
		return nil
	}
	return withVolume(st, volume)
}

var melody = []float64{noteC4, noteE4, noteG4, noteE4, noteA3, noteC4, noteE4, noteC4}

// phrase is one pass over the background melody.
func phrase(rate beep.SampleRate) beep.Streamer {
	notes := make([]beep.Streamer, 0, len(melody))
	for _, f := range melody {
		notes = append(notes, note(f, musicNote, WaveTriangle, rate))
	}
	return beep.Seq(notes...)
}

// repeat streams the output of next forever, asking for a new streamer
// whenever the current one drains.
type repeat struct {
	next func() beep.Streamer
	cur  beep.Streamer
}

func (r *repeat) Stream(samples [][2]float64) (n int, ok bool) {
	for n < len(samples) {
		if r.cur == nil {
			r.cur = r.next()
		}
		m, ok := r.cur.Stream(samples[n:])
		n += m
		if !ok || m == 0 {
			r.cur = nil
		}
	}
	return n, true
}

func (r *repeat) Err() error { return nil }

// Music returns the endless background loop.
func Music(rate beep.SampleRate, volume float64) beep.Streamer {
	return withVolume(&repeat{next: func() beep.Streamer { return phrase(rate) }}, volume)
}
