// Package storage keeps the session ledger: every finished play of the
// current process, held in an in-memory SQLite database.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Ledger records plays for the lifetime of the process. Nothing is written
// to disk.
type Ledger struct {
	db *sql.DB
}

// Play is one finished round of a game.
type Play struct {
	ID       int64
	GameID   string
	Score    int
	Duration time.Duration
	EndedAt  time.Time
}

// OpenLedger creates an empty in-memory ledger.
func OpenLedger() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is its own database, so keep exactly one
	// alive for the ledger's lifetime.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS plays (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			ended_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_plays_top ON plays(game_id, score DESC);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database; the ledger's contents are lost.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record stores a finished play and returns its ID.
// A zero EndedAt is recorded as now.
func (l *Ledger) Record(p Play) (int64, error) {
	if p.GameID == "" {
		return 0, fmt.Errorf("storage: play has no game id")
	}
	if p.EndedAt.IsZero() {
		p.EndedAt = time.Now()
	}
	result, err := l.db.Exec(
		"INSERT INTO plays (game_id, score, duration_ms, ended_at) VALUES (?, ?, ?, ?)",
		p.GameID, p.Score, p.Duration.Milliseconds(), p.EndedAt.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record play: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Best returns the highest recorded score for a game, 0 if it has none.
func (l *Ledger) Best(gameID string) (int, error) {
	var best int
	err := l.db.QueryRow(
		"SELECT COALESCE(MAX(score), 0) FROM plays WHERE game_id = ?", gameID,
	).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return best, nil
}

// BestByGame returns the highest score of every game that has been played.
func (l *Ledger) BestByGame() (map[string]int, error) {
	rows, err := l.db.Query("SELECT game_id, MAX(score) FROM plays GROUP BY game_id")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best scores: %w", err)
	}
	defer rows.Close()

	best := make(map[string]int)
	for rows.Next() {
		var id string
		var score int
		if err := rows.Scan(&id, &score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[id] = score
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return best, nil
}

// Plays returns up to limit plays, most recent first. A non-positive limit
// returns every play.
func (l *Ledger) Plays(limit int) ([]Play, error) {
	if limit <= 0 {
		limit = -1
	}
	return l.query(
		`SELECT id, game_id, score, duration_ms, ended_at
		 FROM plays
		 ORDER BY ended_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// TopScores returns the best plays of one game, highest first.
func (l *Ledger) TopScores(gameID string, limit int) ([]Play, error) {
	if limit <= 0 {
		limit = 10
	}
	return l.query(
		`SELECT id, game_id, score, duration_ms, ended_at
		 FROM plays
		 WHERE game_id = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
}

func (l *Ledger) query(q string, args ...any) ([]Play, error) {
	rows, err := l.db.Query(q, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plays: %w", err)
	}
	defer rows.Close()

	var plays []Play
	for rows.Next() {
		var p Play
		var durMS, endedMS int64
		if err := rows.Scan(&p.ID, &p.GameID, &p.Score, &durMS, &endedMS); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.Duration = time.Duration(durMS) * time.Millisecond
		p.EndedAt = time.UnixMilli(endedMS)
		plays = append(plays, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return plays, nil
}
