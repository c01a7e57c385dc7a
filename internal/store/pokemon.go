package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

const pokemonColumns = `id, name, types_json, base_attack, base_defense, base_stamina,
	cp_level_20, cp_level_25, cp_level_30, cp_level_40, max_cp,
	buddy_distance, candy_to_evolve, is_shiny_available, is_released,
	rarity, form, base_stardust, created_at, updated_at, data_source`

// scanPokemon scans a row into a Pokemon. The row must carry the standard
// column order from pokemonColumns.
func scanPokemon(scanner interface{ Scan(dest ...any) error }) (model.Pokemon, error) {
	var p model.Pokemon
	var typesJSON string
	err := scanner.Scan(
		&p.ID, &p.Name, &typesJSON, &p.BaseAttack, &p.BaseDefense, &p.BaseStamina,
		&p.CPLevel20, &p.CPLevel25, &p.CPLevel30, &p.CPLevel40, &p.MaxCP,
		&p.BuddyDistance, &p.CandyToEvolve, &p.ShinyAvail, &p.Released,
		&p.Rarity, &p.Form, &p.BaseStardust, &p.CreatedAt, &p.UpdatedAt, &p.DataSource,
	)
	if err != nil {
		return p, err
	}

	var tokens []string
	if err := json.Unmarshal([]byte(typesJSON), &tokens); err != nil {
		return p, fmt.Errorf("decoding types for %q: %w", p.Name, err)
	}
	// Unknown tokens written by older sources are dropped, not fatal.
	p.Types = model.ParseTypes(tokens)
	return p, nil
}

func encodeTypes(types []model.Type) (string, error) {
	tokens := make([]string, len(types))
	for i, t := range types {
		tokens[i] = string(t)
	}
	b, err := json.Marshal(tokens)
	if err != nil {
		return "", fmt.Errorf("encoding types: %w", err)
	}
	return string(b), nil
}

// Exists reports whether a Pokémon id is present in the store.
func (s *Store) Exists(id int) (bool, error) {
	var one int
	err := s.conn.QueryRow("SELECT 1 FROM pokemon_data WHERE id = ? LIMIT 1", id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking pokemon %d: %w", id, err)
	}
	return true, nil
}

// GetByID returns a single Pokémon by id, or nil if not found.
func (s *Store) GetByID(id int) (*model.Pokemon, error) {
	row := s.conn.QueryRow("SELECT "+pokemonColumns+" FROM pokemon_data WHERE id = ?", id)
	p, err := scanPokemon(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading pokemon %d: %w", id, err)
	}
	return &p, nil
}

// GetByName returns a Pokémon by case-insensitive exact name, or nil.
func (s *Store) GetByName(name string) (*model.Pokemon, error) {
	row := s.conn.QueryRow("SELECT "+pokemonColumns+" FROM pokemon_data WHERE LOWER(name) = LOWER(?)", name)
	p, err := scanPokemon(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading pokemon %q: %w", name, err)
	}
	return &p, nil
}

// SearchByName finds Pokémon whose name contains partial, ordered by name.
func (s *Store) SearchByName(partial string, limit int) ([]model.Pokemon, error) {
	rows, err := s.conn.Query(
		"SELECT "+pokemonColumns+" FROM pokemon_data WHERE name LIKE ? ORDER BY name LIMIT ?",
		"%"+partial+"%", limit,
	)
	if err != nil {
		return nil, fmt.Errorf("searching pokemon: %w", err)
	}
	defer rows.Close()

	var out []model.Pokemon
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// AllPokemon returns every stored Pokémon ordered by id. A limit of 0 means
// no limit.
func (s *Store) AllPokemon(limit int) ([]model.Pokemon, error) {
	query := "SELECT " + pokemonColumns + " FROM pokemon_data ORDER BY id"
	var rows *sql.Rows
	var err error
	if limit > 0 {
		rows, err = s.conn.Query(query+" LIMIT ?", limit)
	} else {
		rows, err = s.conn.Query(query)
	}
	if err != nil {
		return nil, fmt.Errorf("listing pokemon: %w", err)
	}
	defer rows.Close()

	var out []model.Pokemon
	for rows.Next() {
		p, err := scanPokemon(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// UpsertPokemon inserts or replaces a record by id. The original creation
// timestamp survives replacement; the update timestamp always advances. The
// read and the write happen inside one transaction.
func (s *Store) UpsertPokemon(p *model.Pokemon) error {
	typesJSON, err := encodeTypes(p.Types)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()
	createdAt := now
	source := p.DataSource
	if source == "" {
		source = model.DefaultDataSource
	}
	form := p.Form
	if form == "" {
		form = "Normal"
	}

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning upsert: %w", err)
	}
	defer tx.Rollback()

	var prior int64
	err = tx.QueryRow("SELECT created_at FROM pokemon_data WHERE id = ?", p.ID).Scan(&prior)
	switch {
	case err == nil:
		createdAt = prior
	case err != sql.ErrNoRows:
		return fmt.Errorf("reading prior creation time: %w", err)
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO pokemon_data (
			id, name, types_json, base_attack, base_defense, base_stamina,
			cp_level_20, cp_level_25, cp_level_30, cp_level_40, max_cp,
			buddy_distance, candy_to_evolve, is_shiny_available, is_released,
			rarity, form, base_stardust, created_at, updated_at, data_source
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, typesJSON, p.BaseAttack, p.BaseDefense, p.BaseStamina,
		p.CPLevel20, p.CPLevel25, p.CPLevel30, p.CPLevel40, p.MaxCP,
		p.BuddyDistance, p.CandyToEvolve, p.ShinyAvail, p.Released,
		p.Rarity, form, p.BaseStardust, createdAt, now, source,
	)
	if err != nil {
		return fmt.Errorf("upserting pokemon %q: %w", p.Name, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing upsert: %w", err)
	}

	p.CreatedAt = createdAt
	p.UpdatedAt = now
	p.DataSource = source
	p.Form = form
	return nil
}

// UpdateFields applies a partial update to the shiny-available and
// base-stardust fields only. It reports false when the id is absent or
// neither field is supplied. The update timestamp advances on every write.
func (s *Store) UpdateFields(id int, shinyAvail *bool, baseStardust *int) (bool, error) {
	if shinyAvail == nil && baseStardust == nil {
		return false, nil
	}

	exists, err := s.Exists(id)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, nil
	}

	query := "UPDATE pokemon_data SET updated_at = ?"
	args := []any{time.Now().UnixMilli()}
	if shinyAvail != nil {
		query += ", is_shiny_available = ?"
		args = append(args, *shinyAvail)
	}
	if baseStardust != nil {
		query += ", base_stardust = ?"
		args = append(args, *baseStardust)
	}
	query += " WHERE id = ?"
	args = append(args, id)

	if _, err := s.conn.Exec(query, args...); err != nil {
		return false, fmt.Errorf("updating pokemon %d: %w", id, err)
	}
	return true, nil
}
