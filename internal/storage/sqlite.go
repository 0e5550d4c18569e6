// Package storage provides SQLite-based persistence for tuning profiles:
// named match configurations a player can save and replay with.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/kickoff/internal/config"
)

// ErrEmptyName is returned when a profile name is blank.
var ErrEmptyName = errors.New("storage: profile name is empty")

// Store manages the SQLite database connection for profile persistence.
type Store struct {
	db *sql.DB
}

// Profile is a stored, named match configuration.
type Profile struct {
	ID        int64
	Name      string
	Config    config.MatchConfig
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ProfileInfo is a profile listing entry without the decoded config.
type ProfileInfo struct {
	Name      string
	UpdatedAt time.Time
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
		CREATE TABLE IF NOT EXISTS profiles (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			config_yaml TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_profiles_updated ON profiles(updated_at DESC);
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

// SaveProfile stores cfg under name, replacing any profile with the same
// name. The config is validated first.
func (s *Store) SaveProfile(name string, cfg config.MatchConfig) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("storage: profile %q: %w", name, err)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("storage: profile %q: %w", name, err)
	}

	_, err = s.db.Exec(
		`INSERT INTO profiles (name, config_yaml) VALUES (?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   config_yaml = excluded.config_yaml,
		   updated_at = CURRENT_TIMESTAMP`,
		name, string(data),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// Profile loads a profile by name.
// Returns nil without error if no such profile exists.
func (s *Store) Profile(name string) (*Profile, error) {
	var p Profile
	var raw string
	var createdAt, updatedAt any

	err := s.db.QueryRow(
		`SELECT id, name, config_yaml, created_at, updated_at
		 FROM profiles
		 WHERE name = ?`,
		strings.TrimSpace(name),
	).Scan(&p.ID, &p.Name, &raw, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profile: %w", err)
	}

	cfg, err := config.Parse([]byte(raw))
	if err != nil {
		return nil, fmt.Errorf("storage: profile %q is corrupt: %w", p.Name, err)
	}
	p.Config = cfg
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)

	return &p, nil
}

// ListProfiles returns all profiles, most recently updated first.
func (s *Store) ListProfiles() ([]ProfileInfo, error) {
	rows, err := s.db.Query(
		`SELECT name, updated_at
		 FROM profiles
		 ORDER BY updated_at DESC, name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var out []ProfileInfo
	for rows.Next() {
		var info ProfileInfo
		var updatedAt any
		if err := rows.Scan(&info.Name, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		info.UpdatedAt = parseTime(updatedAt)
		out = append(out, info)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// DeleteProfile removes a profile. It reports whether one was deleted.
func (s *Store) DeleteProfile(name string) (bool, error) {
	res, err := s.db.Exec("DELETE FROM profiles WHERE name = ?", strings.TrimSpace(name))
	if err != nil {
		return false, fmt.Errorf("storage: cannot delete profile: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	return n > 0, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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
