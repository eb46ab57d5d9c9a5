package storage

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"sync"

	"github.com/quasilyte/gdata/v2"
)

// scoresObject is the gdata object holding one property per game.
const scoresObject = "scores"

// FlatStore keeps each game's scores as newline-separated integers in
// the platform data directory. Entries carry no timestamps.
type FlatStore struct {
	mu sync.Mutex
	m  *gdata.Manager
}

var _ Store = (*FlatStore)(nil)

// OpenFlat opens the data directory for appName.
func OpenFlat(appName string) (*FlatStore, error) {
	if appName == "" {
		return nil, fmt.Errorf("storage: flat store needs an app name")
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open data dir for %s: %w", appName, err)
	}
	return &FlatStore{m: m}, nil
}

// load reads a game's scores in the order they were saved.
func (s *FlatStore) load(gameID string) ([]int, error) {
	if !s.m.ObjectPropExists(scoresObject, gameID) {
		return nil, nil
	}
	data, err := s.m.LoadObjectProp(scoresObject, gameID)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot read %s scores: %w", gameID, err)
	}

	var scores []int
	for n, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		v, err := strconv.Atoi(string(line))
		if err != nil {
			return nil, fmt.Errorf("storage: %s scores line %d: %w", gameID, n+1, err)
		}
		scores = append(scores, v)
	}
	return scores, nil
}

// SaveScore adds a score to the end of the game's history and rewrites the
// whole property. The returned ID is the score's 1-based position.
func (s *FlatStore) SaveScore(gameID string, score int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	scores, err := s.load(gameID)
	if err != nil {
		return 0, err
	}
	scores = append(scores, score)

	var buf bytes.Buffer
	for _, v := range scores {
		buf.WriteString(strconv.Itoa(v))
		buf.WriteByte('\n')
	}
	if err := s.m.SaveObjectProp(scoresObject, gameID, buf.Bytes()); err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return int64(len(scores)), nil
}

// TopScores returns up to limit scores, highest first.
func (s *FlatStore) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	s.mu.Lock()
	scores, err := s.load(gameID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	entries := make([]ScoreEntry, len(scores))
	for i, v := range scores {
		entries[i] = ScoreEntry{ID: int64(i + 1), GameID: gameID, Score: v}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	if len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// HighScore returns the best score, or 0 if none exist.
func (s *FlatStore) HighScore(gameID string) (int, error) {
	stats, err := s.GameStats(gameID)
	if err != nil {
		return 0, err
	}
	return stats.HighScore, nil
}

// GameStats aggregates every saved score of a game.
func (s *FlatStore) GameStats(gameID string) (*GameStats, error) {
	s.mu.Lock()
	scores, err := s.load(gameID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	stats := &GameStats{GameID: gameID, GamesCount: len(scores)}
	for i, v := range scores {
		if i == 0 || v > stats.HighScore {
			stats.HighScore = v
		}
		stats.TotalScore += int64(v)
	}
	if len(scores) > 0 {
		stats.AvgScore = float64(stats.TotalScore) / float64(len(scores))
	}
	return stats, nil
}

// ClearScores deletes a game's history.
func (s *FlatStore) ClearScores(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.m.ObjectPropExists(scoresObject, gameID) {
		return nil
	}
	if err := s.m.SaveObjectProp(scoresObject, gameID, nil); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// Close is a no-op; gdata holds no open handles.
func (s *FlatStore) Close() error {
	return nil
}
