// Package storage provides SQLite-based persistence for round results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only finished rounds are stored. A round in progress is never saved or
// resumed.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-whale/internal/whale"
)

// Store manages the SQLite database connection for round history.
type Store struct {
	db *sql.DB
}

// RoundEntry is one finished round.
type RoundEntry struct {
	ID        int64
	Collected int
	Hits      int
	Ticks     uint64
	Duration  time.Duration
	Preset    string
	Seed      int64
	FieldW    int
	FieldH    int
	CreatedAt time.Time
}

// Report returns the round's final report.
func (e RoundEntry) Report() whale.Report {
	return whale.Report{
		Collected: e.Collected,
		Hits:      e.Hits,
		Ticks:     e.Ticks,
		Duration:  e.Duration,
	}
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

	// Create parent directories
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			collected INTEGER NOT NULL,
			hits INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			preset TEXT NOT NULL DEFAULT 'normal',
			seed INTEGER NOT NULL DEFAULT 0,
			field_w INTEGER NOT NULL DEFAULT 0,
			field_h INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_rounds_top ON rounds(collected DESC, hits ASC);
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

// SaveRound records a finished round.
// Returns the ID of the inserted record.
func (s *Store) SaveRound(e RoundEntry) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO rounds (collected, hits, ticks, duration_ms, preset, seed, field_w, field_h)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.Collected, e.Hits, int64(e.Ticks), e.Duration.Milliseconds(),
		e.Preset, e.Seed, e.FieldW, e.FieldH,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save round: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

const roundColumns = `id, collected, hits, ticks, duration_ms, preset, seed, field_w, field_h, created_at`

// TopRounds retrieves the best N rounds: most krill first, fewest hits
// breaking ties.
func (s *Store) TopRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY collected DESC, hits ASC, id ASC
		 LIMIT ?`,
		limit,
	)
}

// RecentRounds retrieves the latest N rounds, newest first.
func (s *Store) RecentRounds(limit int) ([]RoundEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.queryRounds(
		`SELECT `+roundColumns+`
		 FROM rounds
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
}

// AllRounds retrieves every round in best-first order.
func (s *Store) AllRounds() ([]RoundEntry, error) {
	return s.queryRounds(
		`SELECT ` + roundColumns + `
		 FROM rounds
		 ORDER BY collected DESC, hits ASC, id ASC`,
	)
}

// BestRound returns the top round, or nil if none has been recorded.
func (s *Store) BestRound() (*RoundEntry, error) {
	rounds, err := s.TopRounds(1)
	if err != nil {
		return nil, err
	}
	if len(rounds) == 0 {
		return nil, nil
	}
	return &rounds[0], nil
}

// ClearRounds deletes the whole history.
func (s *Store) ClearRounds() error {
	if _, err := s.db.Exec("DELETE FROM rounds"); err != nil {
		return fmt.Errorf("storage: cannot clear rounds: %w", err)
	}
	return nil
}

func (s *Store) queryRounds(query string, args ...any) ([]RoundEntry, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query rounds: %w", err)
	}
	defer rows.Close()

	var entries []RoundEntry
	for rows.Next() {
		var (
			e          RoundEntry
			ticks      int64
			durationMS int64
			createdAt  any
		)
		if err := rows.Scan(
			&e.ID, &e.Collected, &e.Hits, &ticks, &durationMS,
			&e.Preset, &e.Seed, &e.FieldW, &e.FieldH, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Ticks = uint64(ticks)
		e.Duration = time.Duration(durationMS) * time.Millisecond
		e.CreatedAt = parseTime(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Stats contains aggregated statistics over all rounds.
type Stats struct {
	Rounds         int
	BestCollected  int
	TotalCollected int64
	TotalHits      int64
	TotalPlayed    time.Duration
	LastPlayed     time.Time
}

// Report sums every recorded round into one report.
func (s Stats) Report() whale.Report {
	return whale.Report{
		Collected: int(s.TotalCollected),
		Hits:      int(s.TotalHits),
		Duration:  s.TotalPlayed,
	}
}

// GetStats retrieves aggregated statistics.
func (s *Store) GetStats() (*Stats, error) {
	stats := &Stats{}
	var playedMS int64

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(collected), 0), COALESCE(SUM(collected), 0),
		        COALESCE(SUM(hits), 0), COALESCE(SUM(duration_ms), 0)
		 FROM rounds`,
	).Scan(&stats.Rounds, &stats.BestCollected, &stats.TotalCollected, &stats.TotalHits, &playedMS)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.TotalPlayed = time.Duration(playedMS) * time.Millisecond

	var lastPlayed any
	err = s.db.QueryRow(`SELECT created_at FROM rounds ORDER BY id DESC LIMIT 1`).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// parseTime handles the driver returning either time.Time or a string.
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
