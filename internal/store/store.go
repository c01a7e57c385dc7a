// Package store is the durable cache for Pokémon records. It keeps three
// record families (base data, evolutions, mega forms) in a local SQLite
// database, joined by the upstream-assigned Pokémon id.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// Store wraps a SQLite database connection.
type Store struct {
	conn *sql.DB
	Path string
}

const schema = `
CREATE TABLE IF NOT EXISTS pokemon_data (
	id INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	types_json TEXT NOT NULL,
	base_attack INTEGER NOT NULL,
	base_defense INTEGER NOT NULL,
	base_stamina INTEGER NOT NULL,
	cp_level_20 INTEGER NOT NULL,
	cp_level_25 INTEGER NOT NULL,
	cp_level_30 INTEGER NOT NULL,
	cp_level_40 INTEGER NOT NULL,
	max_cp INTEGER NOT NULL,
	buddy_distance INTEGER,
	candy_to_evolve INTEGER,
	is_shiny_available INTEGER NOT NULL,
	is_released INTEGER NOT NULL,
	rarity TEXT,
	form TEXT NOT NULL DEFAULT 'Normal',
	base_stardust INTEGER,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL,
	data_source TEXT NOT NULL DEFAULT 'pogoapi.net'
);

CREATE TABLE IF NOT EXISTS pokemon_evolutions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	from_pokemon_id INTEGER NOT NULL,
	to_pokemon_id INTEGER NOT NULL,
	to_pokemon_name TEXT NOT NULL,
	candy_required INTEGER NOT NULL,
	item_required TEXT,
	lure_required TEXT,
	no_candy_cost_if_traded INTEGER NOT NULL DEFAULT 0,
	priority INTEGER,
	only_evolves_in_daytime INTEGER NOT NULL DEFAULT 0,
	only_evolves_in_nighttime INTEGER NOT NULL DEFAULT 0,
	must_be_buddy_to_evolve INTEGER NOT NULL DEFAULT 0,
	buddy_distance_required REAL,
	gender_required TEXT,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS mega_evolutions (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pokemon_id INTEGER NOT NULL,
	pokemon_name TEXT NOT NULL,
	form TEXT NOT NULL,
	mega_name TEXT NOT NULL,
	first_time_mega_energy_required INTEGER NOT NULL,
	mega_energy_required INTEGER NOT NULL,
	base_attack INTEGER NOT NULL,
	base_defense INTEGER NOT NULL,
	base_stamina INTEGER NOT NULL,
	types_json TEXT NOT NULL,
	cp_multiplier_override REAL,
	created_at INTEGER NOT NULL,
	updated_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_pokemon_name ON pokemon_data (name);
CREATE INDEX IF NOT EXISTS idx_pokemon_updated_at ON pokemon_data (updated_at);
CREATE INDEX IF NOT EXISTS idx_evolution_from ON pokemon_evolutions (from_pokemon_id);
CREATE INDEX IF NOT EXISTS idx_evolution_to ON pokemon_evolutions (to_pokemon_id);
CREATE INDEX IF NOT EXISTS idx_mega_pokemon ON mega_evolutions (pokemon_id);
`

// Open opens (creating if needed) the store at path with WAL mode enabled.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for concurrent reads
	if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := conn.Exec("PRAGMA foreign_keys=ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &Store{conn: conn, Path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Conn returns the underlying sql.DB for custom queries.
func (s *Store) Conn() *sql.DB {
	return s.conn
}

// Stats summarizes the state of the store.
type Stats struct {
	TotalPokemon  int    `json:"total_pokemon"`
	LastUpdatedAt int64  `json:"last_updated_at"` // Unix millis, 0 when empty
	SizeBytes     int64  `json:"size_bytes"`
	Path          string `json:"path"`
}

// Stats returns record count, last update time, file size and location.
func (s *Store) Stats() (Stats, error) {
	st := Stats{Path: s.Path}

	if err := s.conn.QueryRow("SELECT COUNT(*) FROM pokemon_data").Scan(&st.TotalPokemon); err != nil {
		return st, fmt.Errorf("counting pokemon: %w", err)
	}

	var last sql.NullInt64
	if err := s.conn.QueryRow("SELECT MAX(updated_at) FROM pokemon_data").Scan(&last); err != nil {
		return st, fmt.Errorf("reading last update: %w", err)
	}
	if last.Valid {
		st.LastUpdatedAt = last.Int64
	}

	if info, err := os.Stat(s.Path); err == nil {
		st.SizeBytes = info.Size()
	}

	return st, nil
}
