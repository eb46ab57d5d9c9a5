package storage

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"testing"
	"time"
)

// openTestFlat points every per-OS data directory variable at a temp dir,
// so gdata writes inside it on any platform.
func openTestFlat(t *testing.T) (*FlatStore, string) {
	t.Helper()
	root := t.TempDir()
	for _, key := range []string{"HOME", "USERPROFILE", "XDG_DATA_HOME", "AppData", "LOCALAPPDATA"} {
		t.Setenv(key, root)
	}
	appName := fmt.Sprintf("termproject_test_%d", time.Now().UnixNano())
	store, err := OpenFlat(appName)
	if err != nil {
		t.Skipf("gdata unavailable: %v", err)
	}
	return store, root
}

func TestFlatWritesUnderDataDir(t *testing.T) {
	store, root := openTestFlat(t)
	if _, err := store.SaveScore("vortex", 5); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	var found bool
	filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			found = true
		}
		return nil
	})
	if !found {
		t.Error("scores were written outside the isolated data directory")
	}
}

func TestFlatRequiresAppName(t *testing.T) {
	if _, err := OpenFlat(""); err == nil {
		t.Error("empty app name should fail")
	}
}

func TestFlatSaveAndTop(t *testing.T) {
	store, _ := openTestFlat(t)

	for i, s := range []int{7, 3, 12, 0} {
		id, err := store.SaveScore("vortex", s)
		if err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
		if id != int64(i+1) {
			t.Errorf("id = %d, expected %d", id, i+1)
		}
	}

	scores, err := store.TopScores("vortex", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("expected 3 scores, got %d", len(scores))
	}
	for i, want := range []int{12, 7, 3} {
		if scores[i].Score != want {
			t.Errorf("score %d = %d, expected %d", i, scores[i].Score, want)
		}
	}

	if none, _ := store.TopScores("numbers", 10); len(none) != 0 {
		t.Errorf("other game should be empty, got %v", none)
	}
}

func TestFlatStatsAndClear(t *testing.T) {
	store, _ := openTestFlat(t)
	store.SaveScore("trivia", 4)
	store.SaveScore("trivia", 8)

	stats, err := store.GameStats("trivia")
	if err != nil {
		t.Fatalf("GameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 8 || stats.AvgScore != 6 {
		t.Errorf("stats = %+v", stats)
	}

	if err := store.ClearScores("trivia"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	if hs, _ := store.HighScore("trivia"); hs != 0 {
		t.Errorf("high score after clear = %d", hs)
	}
}

func TestFlatNegativeHighScore(t *testing.T) {
	store, _ := openTestFlat(t)
	store.SaveScore("x", -5)
	store.SaveScore("x", -2)
	if hs, _ := store.HighScore("x"); hs != -2 {
		t.Errorf("high score = %d, expected -2", hs)
	}
}
