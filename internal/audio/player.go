// Package audio plays short synthesized cues for game events.
// Sound is optional: when the speaker cannot be opened the player stays
// silent and the games run unchanged.
package audio

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cue is a named sound.
type Cue int

const (
	CuePickup Cue = iota + 1
	CueCollision
	CueGameOver
	CueCorrect
	CueWrong
)

// CueFor maps a game event to its cue.
func CueFor(kind core.EventKind) (Cue, bool) {
	switch kind {
	case core.EventPickup:
		return CuePickup, true
	case core.EventCollision:
		return CueCollision, true
	case core.EventGameOver:
		return CueGameOver, true
	case core.EventCorrect:
		return CueCorrect, true
	case core.EventWrong:
		return CueWrong, true
	}
	return 0, false
}

// Streamer builds a finite streamer for a cue.
func Streamer(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CuePickup:
		s = beep.Seq(
			NewTone(660, 60*time.Millisecond, WaveSquare, rate),
			NewTone(990, 90*time.Millisecond, WaveSquare, rate),
		)
	case CueCollision:
		s = beep.Mix(
			NewTone(110, 220*time.Millisecond, WaveSquare, rate),
			withVolume(NewTone(73, 220*time.Millisecond, WaveTriangle, rate), 0.6),
		)
	case CueGameOver:
		s = beep.Seq(
			NewTone(392, 150*time.Millisecond, WaveTriangle, rate),
			NewTone(330, 150*time.Millisecond, WaveTriangle, rate),
			NewTone(262, 300*time.Millisecond, WaveTriangle, rate),
		)
	case CueCorrect:
		s = beep.Seq(
			NewTone(523, 80*time.Millisecond, WaveSine, rate),
			NewTone(784, 120*time.Millisecond, WaveSine, rate),
		)
	case CueWrong:
		s = NewTone(150, 200*time.Millisecond, WaveSquare, rate)
	default:
		return nil
	}
	return withVolume(s, volume)
}

// Player mixes cues onto the speaker.
// The zero value and a nil *Player are silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
}

// NewPlayer opens the speaker when enabled is true. Failure to open it is
// logged and yields a silent player.
func NewPlayer(enabled bool, volume float64, logger *log.Logger) *Player {
	p := &Player{mixer: &beep.Mixer{}, volume: volume}
	if !enabled {
		return p
	}
	if logger == nil {
		logger = log.Default()
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		logger.Warn("sound disabled", "err", err)
		return p
	}
	speaker.Play(p.mixer)
	p.enabled = true
	logger.Debug("sound enabled", "rate", int(sampleRate))
	return p
}

// Enabled reports whether cues reach the speaker.
func (p *Player) Enabled() bool {
	if p == nil {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// Play queues the cue of every event that has one.
func (p *Player) Play(events []core.Event) {
	if p == nil || len(events) == 0 {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	speaker.Lock()
	for _, ev := range events {
		if c, ok := CueFor(ev.Kind); ok {
			p.mixer.Add(Streamer(c, sampleRate, p.volume))
		}
	}
	speaker.Unlock()
}

// Close silences everything still playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}

	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.enabled = false
}
