// Package storage provides SQLite-based persistence for finished hunts.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// Result is the record of one finished session.
type Result struct {
	ID               int64
	SessionID        string // uuid, generated on save when empty
	Player           string // ssh user or "local"
	LayoutID         string
	Rows             int
	Cols             int
	Score            int
	Rounds           int
	PerformanceIndex decimal.Decimal
	EndReason        string
	CreatedAt        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
// performance_index is stored as TEXT to keep the exact two-decimal value.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL DEFAULT '',
			layout_id TEXT NOT NULL DEFAULT '',
			rows INTEGER NOT NULL,
			cols INTEGER NOT NULL,
			score INTEGER NOT NULL,
			rounds INTEGER NOT NULL,
			performance_index TEXT NOT NULL,
			end_reason TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_created ON results(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_results_player ON results(player);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveResult records a finished session and returns the stored record with
// its ID and session ID filled in.
func (s *Store) SaveResult(r Result) (Result, error) {
	if r.SessionID == "" {
		r.SessionID = uuid.NewString()
	}

	res, err := s.db.Exec(
		`INSERT INTO results
		 (session_id, player, layout_id, rows, cols, score, rounds, performance_index, end_reason)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.SessionID,
		r.Player,
		r.LayoutID,
		r.Rows,
		r.Cols,
		r.Score,
		r.Rounds,
		r.PerformanceIndex.StringFixed(2),
		r.EndReason,
	)
	if err != nil {
		return r, fmt.Errorf("storage: cannot save result: %w", err)
	}

	r.ID, err = res.LastInsertId()
	if err != nil {
		return r, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return r, nil
}

const resultColumns = `id, session_id, player, layout_id, rows, cols, score, rounds,
	performance_index, end_reason, created_at`

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
}

// BestResults retrieves the results with the highest performance index.
// Ties are broken by score, then by age.
func (s *Store) BestResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results
		 ORDER BY CAST(performance_index AS REAL) DESC, score DESC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// PlayerResults retrieves the most recent results of one player.
func (s *Store) PlayerResults(player string, limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}
	return s.queryResults(
		`SELECT `+resultColumns+` FROM results
		 WHERE player = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		player, limit,
	)
}

// ResultBySession retrieves a result by its session ID.
// Returns nil if no such session was saved.
func (s *Store) ResultBySession(sessionID string) (*Result, error) {
	results, err := s.queryResults(
		`SELECT `+resultColumns+` FROM results WHERE session_id = ?`,
		sessionID,
	)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// ClearResults deletes every stored result.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

func (s *Store) queryResults(query string, args ...any) ([]Result, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.SessionID,
			&r.Player,
			&r.LayoutID,
			&r.Rows,
			&r.Cols,
			&r.Score,
			&r.Rounds,
			&r.PerformanceIndex,
			&r.EndReason,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return results, nil
}

// Stats contains aggregated statistics over all results.
type Stats struct {
	GamesCount  int
	BestScore   int
	AvgScore    float64
	TotalRounds int64
	BestIndex   decimal.Decimal
	LastPlayed  time.Time
}

// GetStats retrieves aggregated statistics over all stored results.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(rounds), 0)
		 FROM results`,
	).Scan(&stats.GamesCount, &stats.BestScore, &stats.AvgScore, &stats.TotalRounds)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}

	err = s.db.QueryRow(
		`SELECT performance_index FROM results
		 ORDER BY CAST(performance_index AS REAL) DESC LIMIT 1`,
	).Scan(&stats.BestIndex)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get best index: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM results ORDER BY created_at DESC, id DESC LIMIT 1`,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles both time.Time and the string form SQLite may return.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
