// Package storage provides persistence for game scores.
// Two backends are available: SQLite (pure Go, modernc.org/sqlite) and a
// flat file per game kept in the user data directory through gdata.
package storage

import (
	"fmt"
	"time"
)

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendFlat   = "flat"
)

// Store is a score history for all games.
type Store interface {
	// SaveScore records a score and returns its record ID.
	SaveScore(gameID string, score int) (int64, error)
	// TopScores returns up to limit scores, highest first.
	TopScores(gameID string, limit int) ([]ScoreEntry, error)
	// HighScore returns the best score, or 0 if none exist.
	HighScore(gameID string) (int, error)
	// GameStats aggregates every score of a game.
	GameStats(gameID string) (*GameStats, error)
	// ClearScores deletes a game's history.
	ClearScores(gameID string) error
	Close() error
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time // Zero when the backend does not keep timestamps
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// Open opens the named backend. For sqlite, location is a database path;
// for flat, it is the application name of the data directory.
func Open(backend, location string) (Store, error) {
	switch backend {
	case BackendSQLite, "":
		return OpenSQL(location)
	case BackendFlat:
		return OpenFlat(location)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q (want %s or %s)", backend, BackendSQLite, BackendFlat)
	}
}
