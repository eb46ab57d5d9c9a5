package storage

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// brokenStore fails every call.
type brokenStore struct{}

var errBroken = errors.New("disk on fire")

func (brokenStore) SaveScore(string, int) (int64, error)        { return 0, errBroken }
func (brokenStore) TopScores(string, int) ([]ScoreEntry, error) { return nil, errBroken }
func (brokenStore) HighScore(string) (int, error)               { return 0, errBroken }
func (brokenStore) GameStats(string) (*GameStats, error)        { return nil, errBroken }
func (brokenStore) ClearScores(string) error                    { return errBroken }
func (brokenStore) Close() error                                { return nil }

func TestBoardRoundTrip(t *testing.T) {
	board := NewBoard(openTestSQL(t), "vortex", nil)

	if got := board.LoadTopN(10); len(got) != 0 {
		t.Fatalf("empty board returned %v", got)
	}

	for _, s := range []int{5, 0, 42, 17} {
		board.Save(s)
	}

	got := board.LoadTopN(3)
	want := []int{42, 17, 5}
	if len(got) != len(want) {
		t.Fatalf("LoadTopN(3) = %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("LoadTopN(3)[%d] = %d, expected %d", i, got[i], want[i])
		}
	}
	if board.HighScore() != 42 {
		t.Errorf("HighScore() = %d", board.HighScore())
	}
}

func TestBoardLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	board := NewBoard(brokenStore{}, "vortex", logger)

	board.Save(10)
	if got := board.LoadTopN(10); got != nil {
		t.Errorf("failing store should give no scores, got %v", got)
	}
	if board.HighScore() != 0 {
		t.Error("failing store should give zero high score")
	}

	out := buf.String()
	if !strings.Contains(out, "cannot save score") || !strings.Contains(out, "cannot load scores") {
		t.Errorf("errors not logged:\n%s", out)
	}
}

func TestBoardNilStore(t *testing.T) {
	board := NewBoard(nil, "vortex", nil)
	board.Save(3)
	if board.LoadTopN(10) != nil || board.HighScore() != 0 {
		t.Error("nil store should keep nothing")
	}
}
