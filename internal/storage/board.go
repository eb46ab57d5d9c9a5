package storage

import (
	"github.com/charmbracelet/log"
)

// Board is the score interface a running game sees: saves and leaderboard
// reads never fail, errors are logged and produce empty results.
type Board struct {
	store  Store
	gameID string
	logger *log.Logger
}

// NewBoard binds a store to one game. A nil store yields a board that
// keeps nothing; a nil logger uses the default logger.
func NewBoard(store Store, gameID string, logger *log.Logger) *Board {
	if logger == nil {
		logger = log.Default()
	}
	return &Board{store: store, gameID: gameID, logger: logger}
}

// Save records a finished session. Zero scores are saved too.
func (b *Board) Save(score int) {
	if b.store == nil {
		return
	}
	if _, err := b.store.SaveScore(b.gameID, score); err != nil {
		b.logger.Error("cannot save score", "game", b.gameID, "score", score, "err", err)
		return
	}
	b.logger.Debug("score saved", "game", b.gameID, "score", score)
}

// LoadTopN returns up to n saved scores, highest first.
func (b *Board) LoadTopN(n int) []int {
	if b.store == nil || n <= 0 {
		return nil
	}
	entries, err := b.store.TopScores(b.gameID, n)
	if err != nil {
		b.logger.Error("cannot load scores", "game", b.gameID, "err", err)
		return nil
	}

	scores := make([]int, len(entries))
	for i, e := range entries {
		scores[i] = e.Score
	}
	return scores
}

// HighScore returns the best saved score, or 0.
func (b *Board) HighScore() int {
	if b.store == nil {
		return 0
	}
	hs, err := b.store.HighScore(b.gameID)
	if err != nil {
		b.logger.Error("cannot load high score", "game", b.gameID, "err", err)
		return 0
	}
	return hs
}
