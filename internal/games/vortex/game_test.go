package vortex

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Conner685/Comp2522TermProject/internal/config"
	"github.com/Conner685/Comp2522TermProject/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestGameLifecycle(t *testing.T) {
	g := New()
	g.Reset(testRuntime(1))

	if !g.State().Idle {
		t.Fatal("fresh game should sit on its title screen")
	}

	g.Step(press(core.ActionConfirm))
	if g.State().Idle || g.Arena().State() != StatePlaying {
		t.Fatal("Enter should start a session")
	}

	g.Step(press(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("P should pause")
	}
	ticks := g.Arena().Ticks()
	g.Step(press())
	if g.Arena().Ticks() != ticks {
		t.Error("paused game should not advance")
	}
	// The unpausing frame already advances
	g.Step(press(core.ActionPause))
	g.Step(press())
	if g.Arena().Ticks() != ticks+2 {
		t.Errorf("unpaused game should advance, ticks %d -> %d", ticks, g.Arena().Ticks())
	}

	g.Step(press(core.ActionBack))
	if !g.State().Idle {
		t.Error("Back during play should return to the title screen")
	}
}

func TestGameOverEvents(t *testing.T) {
	g := New()
	g.Reset(testRuntime(2))
	g.Step(press(core.ActionConfirm))

	center := g.Arena().Player().Center()
	g.Arena().AddPickup(NewPickup(center, 10, BoostRefresh))
	g.Arena().AddProjectile(NewProjectile(center, 10, core.Vec{Y: 1}, 5))

	res := g.Step(press())
	if !res.State.GameOver {
		t.Fatal("expected game over")
	}

	kinds := make(map[core.EventKind]int)
	for _, e := range res.Events {
		kinds[e.Kind]++
	}
	if kinds[core.EventPickup] != 1 || kinds[core.EventCollision] != 1 || kinds[core.EventGameOver] != 1 {
		t.Errorf("unexpected events %+v", res.Events)
	}

	g.Step(press(core.ActionRestart))
	if g.State().GameOver || g.Arena().State() != StatePlaying {
		t.Error("R should retry from the game over screen")
	}
}

func TestGameOverBackToMenu(t *testing.T) {
	g := New()
	g.Reset(testRuntime(3))
	g.Step(press(core.ActionConfirm))
	g.Arena().AddProjectile(NewProjectile(g.Arena().Player().Center(), 10, core.Vec{X: 1}, 5))
	g.Step(press())

	g.Step(press(core.ActionBack))
	if !g.State().Idle {
		t.Error("Back on the game over screen should open the title screen")
	}
}

func TestHeldKeysMovePlayer(t *testing.T) {
	g := New()
	g.Reset(testRuntime(4))
	g.Step(press(core.ActionConfirm))

	start := g.Arena().Player().Pos.X
	in := core.NewInputFrame()
	in.Hold(core.ActionRight)
	for range 5 {
		g.Step(in)
	}
	if got := g.Arena().Player().Pos.X; got <= start {
		t.Errorf("held Right should move the player, x %v -> %v", start, got)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionConfirm)
		case i%50 < 25:
			inputs[i].Hold(core.ActionUp)
		default:
			inputs[i].Hold(core.ActionLeft)
			inputs[i].Hold(core.ActionBoost)
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime(12345))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Arena().Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Hash() != s2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", s1.Hash(), s2.Hash())
	}
}

func TestRenderScreens(t *testing.T) {
	g := New()
	g.Reset(testRuntime(5))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "No Scores!") || !strings.Contains(out, "Press Enter to Start") {
		t.Errorf("empty title screen missing text:\n%s", out)
	}

	g.SetLeaderboard([]int{42, 30, 12})
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "1. 42s") || strings.Contains(out, "No Scores!") {
		t.Errorf("leaderboard not drawn:\n%s", out)
	}

	g.Step(press(core.ActionConfirm))
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Time: 0s") || !strings.Contains(out, "Boost") {
		t.Errorf("HUD missing:\n%s", out)
	}

	g.Arena().AddProjectile(NewProjectile(g.Arena().Player().Center(), 10, core.Vec{X: 1}, 5))
	g.Step(press())
	g.Render(screen)
	if out := screen.String(); !strings.Contains(out, "Survival Time: 0 seconds") {
		t.Errorf("game over screen missing survival time:\n%s", out)
	}

	small := core.NewScreen(20, 8)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("tiny screen should show a resize hint")
	}
}

func TestLeaderboardTruncated(t *testing.T) {
	g := New()
	g.Reset(testRuntime(6))

	scores := make([]int, 15)
	for i := range scores {
		scores[i] = 100 - i
	}
	g.SetLeaderboard(scores)
	if len(g.leaderboard) != LeaderboardSize {
		t.Errorf("leaderboard holds %d scores, expected %d", len(g.leaderboard), LeaderboardSize)
	}
}

func TestInvalidConfigFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vortex.yaml")
	data := []byte("stars:\n  min: -5\n  max: -1\npickups:\n  capacity_increment: -300\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	SetConfigPath(path)
	defer SetConfigPath("")

	g := New()
	g.Reset(testRuntime(3))

	def := config.DefaultVortexConfig()
	got := g.Arena().Config()
	if got.Stars != def.Stars || got.Pickups.CapacityIncrement != def.Pickups.CapacityIncrement {
		t.Errorf("invalid config kept: stars %+v, capacity %v", got.Stars, got.Pickups.CapacityIncrement)
	}
}

func TestStarsStayInsideArenaFrame(t *testing.T) {
	g := New()
	g.Reset(testRuntime(9))
	g.Step(press(core.ActionConfirm))
	g.Step(press(core.ActionPause))

	cfg := g.Arena().Config()
	g.arena.stars = []Star{
		{Pos: core.Vec{X: cfg.Arena.Width, Y: cfg.Arena.Height}, Size: 3},
		{Pos: core.Vec{X: cfg.Arena.Width / 10, Y: cfg.Arena.Height / 10}, Size: 1},
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	if r := screen.Get(79, 23); r == StarLarge || r == StarSmall {
		t.Error("a star on the arena edge was drawn over the frame")
	}
	count := strings.Count(screen.String(), string(StarSmall))
	if count == 0 {
		t.Error("the star in the middle of the arena was clipped")
	}
}
