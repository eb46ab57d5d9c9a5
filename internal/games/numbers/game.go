// Package numbers implements the number placement puzzle.
// Random numbers are revealed one at a time and must be placed on a grid
// so that the filled cells, read row by row, stay in ascending order.
package numbers

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/registry"
)

// Phase is the round lifecycle.
type Phase int

const (
	PhaseReady Phase = iota
	PhasePlaying
	PhaseWon
	PhaseLost
)

// Stats accumulate across rounds for one game instance.
type Stats struct {
	Played     int
	Won        int
	Placements int
}

// Average returns successful placements per round played.
func (s Stats) Average() float64 {
	if s.Played == 0 {
		return 0
	}
	return float64(s.Placements) / float64(s.Played)
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the number placement puzzle.
type Game struct {
	cfg config.NumbersConfig
	rng *rand.Rand

	phase      Phase
	grid       Grid
	sequence   []int
	index      int // Position in sequence of the number being placed
	placements int
	stats      Stats

	cursorRow, cursorCol int
	status               string
}

// New creates a new number game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "numbers"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Number Game"
}

// Reset loads the config and returns to the start screen. Stats are cleared.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadNumbers(configPath)
	if err != nil {
		log.Warn("using default numbers config", "err", err)
		cfg = config.DefaultNumbersConfig()
	}
	if cfg.Rows <= 0 || cfg.Cols <= 0 || cfg.MinValue < 1 || cfg.MaxValue < cfg.MinValue {
		log.Warn("invalid numbers config, using defaults", "rows", cfg.Rows, "cols", cfg.Cols)
		cfg = config.DefaultNumbersConfig()
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness

	g.phase = PhaseReady
	g.grid = NewGrid(cfg.Rows, cfg.Cols)
	g.sequence = nil
	g.index = 0
	g.placements = 0
	g.stats = Stats{}
	g.cursorRow, g.cursorCol = 0, 0
	g.status = "Press Enter to start."
}

// newRound draws a fresh sequence and clears the grid.
func (g *Game) newRound() {
	g.stats.Played++
	g.phase = PhasePlaying
	g.grid = NewGrid(g.cfg.Rows, g.cfg.Cols)
	g.index = 0
	g.placements = 0
	g.cursorRow, g.cursorCol = 0, 0

	g.sequence = make([]int, g.cfg.Rows*g.cfg.Cols)
	for i := range g.sequence {
		g.sequence[i] = g.cfg.MinValue + g.rng.Intn(g.cfg.MaxValue-g.cfg.MinValue+1)
	}
	g.status = "Place the number in a square."
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	var events []core.Event

	switch g.phase {
	case PhaseReady:
		if in.Has(core.ActionConfirm) || in.Has(core.ActionRestart) {
			g.newRound()
		}

	case PhasePlaying:
		switch {
		case in.Has(core.ActionBack):
			g.phase = PhaseReady
			g.status = "Round abandoned. Press Enter to start."
		case in.Has(core.ActionConfirm):
			var err error
			if events, err = g.Place(g.cursorRow, g.cursorCol); err != nil {
				log.Debug("placement rejected", "row", g.cursorRow, "col", g.cursorCol, "err", err)
			}
		default:
			g.moveCursor(in)
		}

	case PhaseWon, PhaseLost:
		switch {
		case in.Has(core.ActionConfirm), in.Has(core.ActionRestart):
			g.newRound()
		case in.Has(core.ActionBack):
			g.phase = PhaseReady
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor moves the selection one cell, wrapping at the edges.
func (g *Game) moveCursor(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursorRow = (g.cursorRow - 1 + g.cfg.Rows) % g.cfg.Rows
	case in.Has(core.ActionDown):
		g.cursorRow = (g.cursorRow + 1) % g.cfg.Rows
	case in.Has(core.ActionLeft):
		g.cursorCol = (g.cursorCol - 1 + g.cfg.Cols) % g.cfg.Cols
	case in.Has(core.ActionRight):
		g.cursorCol = (g.cursorCol + 1) % g.cfg.Cols
	}
}

// Place puts the current number at (row, col) and resolves the outcome.
// A filled or out-of-range cell is rejected without changing the round.
func (g *Game) Place(row, col int) ([]core.Event, error) {
	if g.phase != PhasePlaying {
		return nil, errors.New("numbers: no round in progress")
	}

	v := g.Current()
	if err := g.grid.Place(row, col, v); err != nil {
		if errors.Is(err, ErrOccupied) {
			g.status = "That square is taken."
		}
		return nil, err
	}

	if !g.grid.Ascending() {
		return g.lose(fmt.Sprintf("%d breaks the order. You lost!", v)), nil
	}

	g.placements++
	g.stats.Placements++
	g.index++

	if g.index == len(g.sequence) {
		g.phase = PhaseWon
		g.stats.Won++
		g.status = "Congratulations! You won the game."
		return []core.Event{{Kind: core.EventCorrect}, {Kind: core.EventGameOver}}, nil
	}

	events := []core.Event{{Kind: core.EventCorrect}}
	next := g.Current()
	if !g.grid.HasLegalCell(next) {
		return append(events, g.lose(fmt.Sprintf("No square fits %d. You lost!", next))...), nil
	}
	g.status = "Place the number in a square."
	return events, nil
}

func (g *Game) lose(reason string) []core.Event {
	g.phase = PhaseLost
	g.status = reason
	return []core.Event{{Kind: core.EventWrong}, {Kind: core.EventGameOver}}
}

// Current returns the number waiting to be placed, or 0 outside a round.
func (g *Game) Current() int {
	if g.phase != PhasePlaying || g.index >= len(g.sequence) {
		return 0
	}
	return g.sequence[g.index]
}

// Phase returns the round phase.
func (g *Game) Phase() Phase { return g.phase }

// Grid returns the board.
func (g *Game) Grid() Grid { return g.grid }

// Stats returns the accumulated statistics.
func (g *Game) Stats() Stats { return g.stats }

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.placements,
		GameOver: g.phase == PhaseWon || g.phase == PhaseLost,
		Idle:     g.phase == PhaseReady,
	}
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{
		ID:          "numbers",
		Title:       "Number Game",
		Key:         'n',
		Description: "Place random numbers on a grid in ascending order",
	}, func() registry.Game {
		return New()
	})
}
