package numbers

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/Conner685/Comp2522TermProject/internal/core"
)

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// startWith begins a round and replaces the random sequence.
func startWith(t *testing.T, seq ...int) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	g.Step(press(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatal("Enter should start a round")
	}
	for i := range g.sequence {
		g.sequence[i] = 500
	}
	copy(g.sequence, seq)
	return g
}

func TestGridAscending(t *testing.T) {
	tests := []struct {
		name   string
		cells  []int
		expect bool
	}{
		{"empty", []int{0, 0, 0, 0}, true},
		{"sparse ascending", []int{3, 0, 7, 0}, true},
		{"equal values", []int{5, 5, 0, 5}, true},
		{"descending", []int{9, 0, 2, 0}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(2, 2)
			copy(g.cells, tc.cells)
			if got := g.Ascending(); got != tc.expect {
				t.Errorf("Ascending(%v) = %v, expected %v", tc.cells, got, tc.expect)
			}
		})
	}
}

func TestGridFits(t *testing.T) {
	g := NewGrid(1, 5)
	copy(g.cells, []int{0, 10, 0, 20, 0})

	tests := []struct {
		idx, v int
		expect bool
	}{
		{0, 5, true},
		{0, 11, false},
		{2, 15, true},
		{2, 10, true},
		{2, 21, false},
		{4, 20, true},
		{4, 19, false},
		{1, 10, false}, // Occupied
	}
	for _, tc := range tests {
		if got := g.Fits(tc.idx, tc.v); got != tc.expect {
			t.Errorf("Fits(%d, %d) = %v, expected %v", tc.idx, tc.v, got, tc.expect)
		}
	}
}

func TestGridPlaceErrors(t *testing.T) {
	g := NewGrid(2, 2)
	if err := g.Place(0, 0, 5); err != nil {
		t.Fatal(err)
	}
	if err := g.Place(0, 0, 6); !errors.Is(err, ErrOccupied) {
		t.Errorf("expected ErrOccupied, got %v", err)
	}
	if err := g.Place(2, 0, 6); !errors.Is(err, ErrOutOfRange) {
		t.Errorf("expected ErrOutOfRange, got %v", err)
	}
	if g.At(0, 0) != 5 {
		t.Error("rejected placement must not overwrite")
	}
}

func TestOccupiedCellRejected(t *testing.T) {
	g := startWith(t, 100, 200)
	if _, err := g.Place(0, 0); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Place(0, 0); !errors.Is(err, ErrOccupied) {
		t.Fatalf("expected ErrOccupied, got %v", err)
	}
	if g.Phase() != PhasePlaying || g.Current() != 200 || g.State().Score != 1 {
		t.Error("rejected placement should leave the round untouched")
	}
}

func TestOrderViolationLoses(t *testing.T) {
	g := startWith(t, 500, 100)
	g.Place(0, 0)
	events, err := g.Place(0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if g.Phase() != PhaseLost || !g.State().GameOver {
		t.Fatal("placing 100 after 500 should lose")
	}
	if g.State().Score != 1 {
		t.Errorf("score %d, expected 1 successful placement", g.State().Score)
	}
	if len(events) == 0 || events[len(events)-1].Kind != core.EventGameOver {
		t.Errorf("expected game over event, got %+v", events)
	}
}

func TestStuckNumberLosesImmediately(t *testing.T) {
	g := startWith(t)
	total := g.cfg.Rows * g.cfg.Cols
	for i := range total - 1 {
		g.sequence[i] = 100 + i
	}
	// The last empty cell sits after larger numbers
	g.sequence[total-1] = 50

	for i := range total - 1 {
		if _, err := g.Place(i/g.cfg.Cols, i%g.cfg.Cols); err != nil {
			t.Fatalf("placement %d: %v", i, err)
		}
	}
	if g.Phase() != PhaseLost {
		t.Errorf("expected immediate loss when no cell fits, phase %v", g.Phase())
	}
	if g.State().Score != total-1 {
		t.Errorf("score %d, expected %d", g.State().Score, total-1)
	}
}

func TestWinRound(t *testing.T) {
	g := startWith(t)
	total := g.cfg.Rows * g.cfg.Cols
	for i := range total {
		g.sequence[i] = i + 1
	}

	for i := range total {
		if _, err := g.Place(i/g.cfg.Cols, i%g.cfg.Cols); err != nil {
			t.Fatal(err)
		}
	}
	if g.Phase() != PhaseWon {
		t.Fatalf("filling in order should win, phase %v", g.Phase())
	}
	s := g.Stats()
	if s.Played != 1 || s.Won != 1 || s.Placements != total || s.Average() != float64(total) {
		t.Errorf("unexpected stats %+v", s)
	}

	g.Step(press(core.ActionRestart))
	if g.Phase() != PhasePlaying || g.Stats().Played != 2 || g.Grid().Filled() != 0 {
		t.Error("R should start a fresh round")
	}
}

func TestCursorWrapsAndPlaces(t *testing.T) {
	g := startWith(t, 10)
	g.Step(press(core.ActionLeft))
	g.Step(press(core.ActionUp))
	if g.cursorRow != g.cfg.Rows-1 || g.cursorCol != g.cfg.Cols-1 {
		t.Fatalf("cursor should wrap to the last cell, at (%d,%d)", g.cursorRow, g.cursorCol)
	}

	g.Step(press(core.ActionConfirm))
	if g.Grid().At(g.cfg.Rows-1, g.cfg.Cols-1) != 10 {
		t.Error("Enter should place at the cursor")
	}
}

func TestSequenceInRange(t *testing.T) {
	g := startWith(t)
	g.Step(press(core.ActionBack))
	g.Step(press(core.ActionConfirm))
	for _, v := range g.sequence {
		if v < g.cfg.MinValue || v > g.cfg.MaxValue {
			t.Errorf("value %d outside [%d, %d]", v, g.cfg.MinValue, g.cfg.MaxValue)
		}
	}
}

func TestRenderShowsStats(t *testing.T) {
	g := startWith(t, 42)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Current number to place: 42", "Games Played: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}
}

func TestStepLogsRejectedPlacement(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Default()
	log.SetDefault(log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel}))
	defer log.SetDefault(prev)

	g := startWith(t, 100, 200)
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionConfirm))

	if g.Phase() != PhasePlaying || g.Current() != 200 || g.State().Score != 1 {
		t.Error("confirming on a filled cell should leave the round untouched")
	}
	out := buf.String()
	if !strings.Contains(out, "placement rejected") || !strings.Contains(out, ErrOccupied.Error()) {
		t.Errorf("expected a debug line for the rejected placement, got %q", out)
	}
}
