package audio

import (
	"math"
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
)

// tone is a fixed-length oscillator with a linear fade out over its last
// fifth, which avoids clicks at the cut.
type tone struct {
	freq   float64
	phase  float64
	pos    int
	length int
	fade   int
	wave   Wave
	rate   beep.SampleRate
}

// NewTone returns a streamer playing freq for d.
func NewTone(freq float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)
	return &tone{
		freq:   freq,
		length: n,
		fade:   n / 5,
		wave:   wave,
		rate:   rate,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
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
		}

		if left := t.length - t.pos; t.fade > 0 && left < t.fade {
			v *= float64(left) / float64(t.fade)
		}

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// withVolume scales s by a linear factor. Zero or less is silent.
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
