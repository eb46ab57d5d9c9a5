package replay

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Conner685/Comp2522TermProject/internal/core"
	"github.com/Conner685/Comp2522TermProject/internal/games/vortex"
)

func frame(pressed, held []core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range pressed {
		in.Set(a)
	}
	for _, a := range held {
		in.Hold(a)
	}
	return in
}

// script is a deterministic input pattern: start, then sweep around.
func script(tick int) core.InputFrame {
	if tick == 0 {
		return frame([]core.Action{core.ActionConfirm}, nil)
	}
	dirs := []core.Action{core.ActionUp, core.ActionRight, core.ActionDown, core.ActionLeft}
	held := []core.Action{dirs[(tick/45)%len(dirs)]}
	if tick%200 < 30 {
		held = append(held, core.ActionBoost)
	}
	return frame(nil, held)
}

func TestRecorderCompressesRuns(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 5}
	r := NewRecorder("vortex", cfg, "", "hard")

	r.Record(frame([]core.Action{core.ActionConfirm}, nil))
	for range 10 {
		r.Record(frame(nil, []core.Action{core.ActionLeft}))
	}
	for range 3 {
		r.Record(core.NewInputFrame())
	}

	rec := r.Recording()
	if len(rec.Frames) != 3 {
		t.Fatalf("expected 3 runs, got %+v", rec.Frames)
	}
	if rec.Frames[1].Count != 10 || rec.Frames[2].Count != 3 {
		t.Errorf("run lengths %+v", rec.Frames)
	}
	if rec.Ticks() != 14 {
		t.Errorf("Ticks() = %d", rec.Ticks())
	}
	if rec.ID == "" || rec.Version != Version || rec.Difficulty != "hard" {
		t.Errorf("header %+v", rec)
	}
	if rec.Runtime() != cfg {
		t.Errorf("Runtime() = %+v", rec.Runtime())
	}
}

func TestRecordingIsCopy(t *testing.T) {
	r := NewRecorder("vortex", core.DefaultConfig(), "", "")
	r.Record(core.NewInputFrame())
	snap := r.Recording()
	r.Record(frame([]core.Action{core.ActionPause}, nil))
	if len(snap.Frames) != 1 {
		t.Error("earlier Recording() changed after more frames")
	}
}

func TestReplayReproducesSession(t *testing.T) {
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2024}
	const ticks = 1500

	live := vortex.New()
	live.Reset(cfg)
	r := NewRecorder(live.ID(), cfg, "", "")
	for i := range ticks {
		in := script(i)
		r.Record(in)
		live.Step(in)
	}

	path := filepath.Join(t.TempDir(), "runs", "session.rec")
	if err := Save(path, r.Recording()); err != nil {
		t.Fatal(err)
	}
	rec, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	res, err := Play(vortex.New(), rec)
	if err != nil {
		t.Fatal(err)
	}
	if res.Ticks != ticks {
		t.Errorf("replayed %d ticks, expected %d", res.Ticks, ticks)
	}
	if res.Score != live.State().Score || res.GameOver != live.State().GameOver {
		t.Errorf("replay score %d over=%v, live %d over=%v",
			res.Score, res.GameOver, live.State().Score, live.State().GameOver)
	}
	if !res.Hashed || res.Hash != live.StateHash() {
		t.Errorf("replay hash %x, live %x", res.Hash, live.StateHash())
	}
}

func TestPlayRejectsOtherGame(t *testing.T) {
	rec := Recording{Version: Version, GameID: "numbers"}
	if _, err := Play(vortex.New(), rec); err == nil {
		t.Error("playing a numbers recording on vortex should fail")
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	dir := t.TempDir()

	garbage := filepath.Join(dir, "garbage.rec")
	os.WriteFile(garbage, []byte("not msgpack at all"), 0o600)
	if _, err := Load(garbage); err == nil {
		t.Error("garbage should not decode")
	}

	old := filepath.Join(dir, "old.rec")
	if err := Save(old, Recording{Version: 99, GameID: "vortex"}); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(old); err == nil {
		t.Error("unknown version should be rejected")
	}

	bad := filepath.Join(dir, "bad.rec")
	Save(bad, Recording{Version: Version, GameID: "vortex", Frames: []Frame{{Count: 0}}})
	if _, err := Load(bad); err == nil {
		t.Error("zero-length run should be rejected")
	}

	if _, err := Load(filepath.Join(dir, "missing.rec")); err == nil {
		t.Error("missing file should fail")
	}
}
