// Package vortex implements a top-down survival game.
// The player steers a square around an arena while projectiles stream in
// from the edges; the score is the number of whole seconds survived.
package vortex

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/registry"
)

// LeaderboardSize is the number of scores shown on the title screen.
const LeaderboardSize = 10

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names are ignored.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		log.Warn("ignoring difficulty preset", "preset", preset, "err", err)
		p = ""
	}
	difficultyPreset = p
}

// Game adapts the arena to the arcade's fixed-tick game interface.
type Game struct {
	cfg         config.VortexConfig
	arena       *Arena
	runtime     core.RuntimeConfig
	tickSeconds float64
	paused      bool
	leaderboard []int
}

// New creates a new Vortex game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "vortex"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Vortex"
}

// Reset loads the config and puts a fresh arena on its title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tickSeconds = runtime.TickSeconds()
	g.paused = false

	cfg, err := config.LoadVortex(configPath, difficultyPreset)
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		log.Warn("using default vortex config", "err", err)
		cfg = config.DefaultVortexConfig()
		config.ApplyVortexPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.arena = NewArena(cfg, rand.New(rand.NewSource(runtime.Seed))) //#nosec G404 -- gameplay randomness
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.arena.State() {
	case StateMenu:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.arena.Start()
		}

	case StatePlaying:
		if in.Has(core.ActionBack) {
			g.paused = false
			g.arena.ToMenu()
			break
		}
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			break
		}

		res := g.arena.Advance(g.tickSeconds, toInput(in))
		for _, kind := range res.Collected {
			events = append(events, core.Event{Kind: core.EventPickup, Detail: kind.String()})
		}
		if res.Ended {
			events = append(events,
				core.Event{Kind: core.EventCollision},
				core.Event{Kind: core.EventGameOver},
			)
		}

	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart), in.Has(core.ActionConfirm):
			g.arena.Retry()
		case in.Has(core.ActionBack):
			g.arena.ToMenu()
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// toInput converts a platform frame into arena input.
func toInput(in core.InputFrame) Input {
	return Input{
		Up:    in.Holding(core.ActionUp),
		Down:  in.Holding(core.ActionDown),
		Left:  in.Holding(core.ActionLeft),
		Right: in.Holding(core.ActionRight),
		Boost: in.Holding(core.ActionBoost),
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.arena.Survival(),
		GameOver: g.arena.State() == StateGameOver,
		Paused:   g.paused,
		Idle:     g.arena.State() == StateMenu,
	}
}

// SetLeaderboard receives the best saved survival times, highest first.
func (g *Game) SetLeaderboard(scores []int) {
	n := min(len(scores), LeaderboardSize)
	g.leaderboard = append(g.leaderboard[:0], scores[:n]...)
}

// Arena exposes the running arena for replay verification.
func (g *Game) Arena() *Arena {
	return g.arena
}

// StateHash fingerprints the arena so a replay can be checked against
// the run it was recorded from.
func (g *Game) StateHash() uint64 {
	if g.arena == nil {
		return 0
	}
	snap := g.arena.Snapshot()
	return snap.Hash()
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "vortex",
		Title:       "Vortex",
		Key:         'v',
		Description: "Dodge the projectile storm for as long as you can",
	}, func() registry.Game {
		return New()
	})
}
