package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveTriangle
	WaveNoise
)

// tone is a fixed-length oscillator.
type tone struct {
	freq  float64
	phase float64
	left  int
	wave  Wave
	rate  beep.SampleRate
	noise *rand.Rand
}

// NewTone returns a streamer producing d of the given wave at freq Hz.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	t := &tone{freq: freq, left: rate.N(d), wave: wave, rate: rate}
	if wave == WaveNoise {
		t.noise = rand.New(rand.NewSource(int64(freq*1000) + 1))
	}
	return t
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	if t.left <= 0 {
		return 0, false
	}
	for i := range samples {
		if t.left <= 0 {
			return i, true
		}

		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		case WaveNoise:
			v = t.noise.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.left--
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// envelope fades a streamer in over attack and out over its final release samples.
type envelope struct {
	s       beep.Streamer
	pos     int
	total   int
	attack  int
	release int
}

// NewEnvelope shapes s, which must stream exactly d worth of samples.
func NewEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(d)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{s: s, total: total, attack: att, release: rel}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	releaseStart := e.total - e.release
	for i := 0; i < n; i++ {
		gain := 1.0
		switch {
		case e.pos < e.attack:
			gain = float64(e.pos) / float64(e.attack)
		case e.pos >= releaseStart && e.release > 0:
			gain = float64(e.total-e.pos) / float64(e.release)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// note is a single enveloped tone.
func note(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	attack := d / 10
	release := d / 3
	return NewEnvelope(NewTone(freq, d, wave, rate), d, attack, release, rate)
}

// withVolume scales s linearly; zero or less is silent.
// effects.Volume works in log space, so log2(0) has to be avoided.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
