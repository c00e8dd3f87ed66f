// Package storage provides SQLite-based persistence for the composer
// career: a single save slot plus a premiere history log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/avoigt/kapellmeister/internal/game"
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// PremiereRecord is one row of the permanent premiere history. Unlike
// the save slot, history survives a career reset.
type PremiereRecord struct {
	ID           int64
	WorkID       string
	Title        string
	Form         string
	Venue        string
	Quality      int
	Earnings     int
	Reputation   int
	PremiereDate string
	IsRevival    bool
	CreatedAt    time.Time
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
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS saves (
			slot INTEGER PRIMARY KEY CHECK (slot = 1),
			state TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS premieres (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			work_id TEXT NOT NULL,
			title TEXT NOT NULL,
			form TEXT NOT NULL,
			venue TEXT NOT NULL,
			quality INTEGER NOT NULL,
			earnings INTEGER NOT NULL,
			reputation INTEGER NOT NULL,
			premiere_date TEXT NOT NULL,
			is_revival INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_premieres_quality ON premieres(quality DESC);
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

// SaveGame writes the full game state into the single save slot,
// replacing whatever was there.
func (s *Store) SaveGame(state game.GameState) error {
	blob, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("storage: cannot encode game state: %w", err)
	}

	_, err = s.db.Exec(
		`INSERT INTO saves (slot, state, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(slot) DO UPDATE SET state = excluded.state, updated_at = CURRENT_TIMESTAMP`,
		string(blob),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save game: %w", err)
	}
	return nil
}

// LoadGame reads the save slot. Returns (nil, nil) when no save exists
// or the stored blob cannot be decoded; a corrupt save is treated as
// absent rather than wedging the game at startup.
func (s *Store) LoadGame() (*game.GameState, error) {
	var blob string
	err := s.db.QueryRow("SELECT state FROM saves WHERE slot = 1").Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot load game: %w", err)
	}

	var state game.GameState
	if err := json.Unmarshal([]byte(blob), &state); err != nil {
		return nil, nil
	}
	return &state, nil
}

// HasSave reports whether a save slot exists.
func (s *Store) HasSave() (bool, error) {
	var n int
	err := s.db.QueryRow("SELECT COUNT(*) FROM saves WHERE slot = 1").Scan(&n)
	if err != nil {
		return false, fmt.Errorf("storage: cannot check save: %w", err)
	}
	return n > 0, nil
}

// ClearSave deletes the save slot. Premiere history is kept.
func (s *Store) ClearSave() error {
	_, err := s.db.Exec("DELETE FROM saves WHERE slot = 1")
	if err != nil {
		return fmt.Errorf("storage: cannot clear save: %w", err)
	}
	return nil
}

// RecordPremiere appends a completed work to the premiere history.
// Returns the ID of the inserted record.
func (s *Store) RecordPremiere(work game.CompletedWork) (int64, error) {
	revival := 0
	if work.IsRevival {
		revival = 1
	}

	result, err := s.db.Exec(
		`INSERT INTO premieres
		 (work_id, title, form, venue, quality, earnings, reputation, premiere_date, is_revival)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		work.ID,
		work.Title,
		string(work.Form),
		string(work.Venue),
		work.Quality,
		work.Earnings,
		work.ReputationGained,
		work.PremiereDate.String(),
		revival,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record premiere: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// PremiereHistory retrieves the top N premieres by quality.
func (s *Store) PremiereHistory(limit int) ([]PremiereRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, work_id, title, form, venue, quality, earnings, reputation,
		        premiere_date, is_revival, created_at
		 FROM premieres
		 ORDER BY quality DESC, id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query premieres: %w", err)
	}
	defer rows.Close()

	var records []PremiereRecord
	for rows.Next() {
		var r PremiereRecord
		var revival int
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.WorkID, &r.Title, &r.Form, &r.Venue,
			&r.Quality, &r.Earnings, &r.Reputation,
			&r.PremiereDate, &revival, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.IsRevival = revival != 0

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// ClearHistory deletes the premiere history.
func (s *Store) ClearHistory() error {
	_, err := s.db.Exec("DELETE FROM premieres")
	if err != nil {
		return fmt.Errorf("storage: cannot clear history: %w", err)
	}
	return nil
}
