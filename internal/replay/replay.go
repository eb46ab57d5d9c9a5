// Package replay records the input frames of a session and re-runs them
// headlessly. Games are deterministic for a given seed, so a recording
// reproduces the original score and final state.
package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/registry"
)

// Version is the recording format written by this package.
const Version = 1

// Frame is a run of Count identical input ticks.
type Frame struct {
	Count   int           `msgpack:"n"`
	Pressed []core.Action `msgpack:"p,omitempty"`
	Held    []core.Action `msgpack:"h,omitempty"`
}

// Recording is everything needed to re-run a session.
type Recording struct {
	Version    int       `msgpack:"v"`
	ID         string    `msgpack:"id"`
	GameID     string    `msgpack:"game"`
	Seed       int64     `msgpack:"seed"`
	TickRate   int       `msgpack:"tick_rate"`
	ScreenW    int       `msgpack:"w"`
	ScreenH    int       `msgpack:"h"`
	ConfigPath string    `msgpack:"config,omitempty"`
	Difficulty string    `msgpack:"difficulty,omitempty"`
	CreatedAt  time.Time `msgpack:"created"`
	Frames     []Frame   `msgpack:"frames"`
}

// Ticks returns the number of recorded ticks.
func (r Recording) Ticks() int {
	n := 0
	for _, f := range r.Frames {
		n += f.Count
	}
	return n
}

// Runtime rebuilds the runtime config the session started with.
func (r Recording) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  r.ScreenW,
		ScreenH:  r.ScreenH,
		TickRate: r.TickRate,
		Seed:     r.Seed,
	}
}

// Recorder accumulates frames for one session.
type Recorder struct {
	rec Recording
}

// NewRecorder starts a recording. cfg.Seed must be the seed the game
// will actually be reset with.
func NewRecorder(gameID string, cfg core.RuntimeConfig, configPath, difficulty string) *Recorder {
	return &Recorder{rec: Recording{
		Version:    Version,
		ID:         uuid.NewString(),
		GameID:     gameID,
		Seed:       cfg.Seed,
		TickRate:   cfg.TickRate,
		ScreenW:    cfg.ScreenW,
		ScreenH:    cfg.ScreenH,
		ConfigPath: configPath,
		Difficulty: difficulty,
		CreatedAt:  time.Now().UTC().Truncate(time.Second),
	}}
}

// Record appends the input of one tick.
func (r *Recorder) Record(in core.InputFrame) {
	pressed, held := in.PressedList(), in.HeldList()

	if n := len(r.rec.Frames); n > 0 {
		last := &r.rec.Frames[n-1]
		if slices.Equal(last.Pressed, pressed) && slices.Equal(last.Held, held) {
			last.Count++
			return
		}
	}

	f := Frame{Count: 1}
	if len(pressed) > 0 {
		f.Pressed = pressed
	}
	if len(held) > 0 {
		f.Held = held
	}
	r.rec.Frames = append(r.rec.Frames, f)
}

// Recording returns a copy of what has been recorded so far.
func (r *Recorder) Recording() Recording {
	rec := r.rec
	rec.Frames = slices.Clone(r.rec.Frames)
	return rec
}

// Save writes the recording to path, creating parent directories.
func Save(path string, rec Recording) error {
	data, err := msgpack.Marshal(&rec)
	if err != nil {
		return fmt.Errorf("replay: encode: %w", err)
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("replay: cannot create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("replay: write %s: %w", path, err)
	}
	return nil
}

// Load reads and checks a recording file.
func Load(path string) (Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Recording{}, fmt.Errorf("replay: read %s: %w", path, err)
	}

	var rec Recording
	if err := msgpack.Unmarshal(data, &rec); err != nil {
		return Recording{}, fmt.Errorf("replay: decode %s: %w", path, err)
	}
	if rec.Version != Version {
		return Recording{}, fmt.Errorf("replay: %s has version %d, want %d", path, rec.Version, Version)
	}
	if rec.GameID == "" {
		return Recording{}, fmt.Errorf("replay: %s has no game id", path)
	}
	for i, f := range rec.Frames {
		if f.Count <= 0 {
			return Recording{}, fmt.Errorf("replay: %s frame %d has count %d", path, i, f.Count)
		}
	}
	return rec, nil
}

// Hasher is implemented by games that can fingerprint their state.
type Hasher interface {
	StateHash() uint64
}

// Result summarizes a re-run.
type Result struct {
	Ticks    int
	Score    int
	GameOver bool
	Hash     uint64
	Hashed   bool // Hash is meaningful
}

// Play resets g from the recording and feeds it every recorded frame.
func Play(g registry.Game, rec Recording) (Result, error) {
	if g.ID() != rec.GameID {
		return Result{}, fmt.Errorf("replay: recording is for %q, not %q", rec.GameID, g.ID())
	}

	g.Reset(rec.Runtime())

	var res Result
	for _, f := range rec.Frames {
		for range f.Count {
			in := core.NewInputFrame()
			for _, a := range f.Pressed {
				in.Set(a)
			}
			for _, a := range f.Held {
				in.Hold(a)
			}
			g.Step(in)
			res.Ticks++
		}
	}

	state := g.State()
	res.Score = state.Score
	res.GameOver = state.GameOver
	if h, ok := g.(Hasher); ok {
		res.Hash = h.StateHash()
		res.Hashed = true
	}
	return res, nil
}

// PlayID creates the recorded game from the registry and plays it.
func PlayID(rec Recording) (Result, error) {
	g, err := registry.Create(rec.GameID)
	if err != nil {
		return Result{}, fmt.Errorf("replay: %w", err)
	}
	return Play(g, rec)
}
