package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

// UpsertMegaForms replaces every mega row for the shared pokemon id, then
// inserts the new list. An empty list is a no-op: existing rows are kept, so
// a fetch that found nothing never erases previously known mega data. This
// asymmetry with UpsertEvolutions is intentional.
func (s *Store) UpsertMegaForms(megas []model.MegaEvolution) error {
	if len(megas) == 0 {
		return nil
	}

	pokemonID := megas[0].PokemonID

	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning mega upsert: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM mega_evolutions WHERE pokemon_id = ?", pokemonID); err != nil {
		return fmt.Errorf("clearing megas for %d: %w", pokemonID, err)
	}

	now := time.Now().UnixMilli()
	for _, m := range megas {
		typesJSON, err := encodeTypes(m.Types)
		if err != nil {
			return err
		}
		_, err = tx.Exec(`
			INSERT INTO mega_evolutions (
				pokemon_id, pokemon_name, form, mega_name,
				first_time_mega_energy_required, mega_energy_required,
				base_attack, base_defense, base_stamina, types_json,
				cp_multiplier_override, created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.PokemonID, m.PokemonName, m.Form, m.MegaName,
			m.FirstEnergy, m.Energy,
			m.BaseAttack, m.BaseDefense, m.BaseStamina, typesJSON,
			m.CPMultOverride, now, now,
		)
		if err != nil {
			return fmt.Errorf("inserting mega %q for %d: %w", m.MegaName, m.PokemonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing mega upsert: %w", err)
	}
	return nil
}

// GetMegaForms returns the stored mega forms for id, ordered by form tag.
func (s *Store) GetMegaForms(id int) ([]model.MegaEvolution, error) {
	rows, err := s.conn.Query(`
		SELECT pokemon_id, pokemon_name, form, mega_name,
		       first_time_mega_energy_required, mega_energy_required,
		       base_attack, base_defense, base_stamina, types_json,
		       cp_multiplier_override
		FROM mega_evolutions
		WHERE pokemon_id = ?
		ORDER BY form
	`, id)
	if err != nil {
		return nil, fmt.Errorf("reading megas for %d: %w", id, err)
	}
	defer rows.Close()

	var out []model.MegaEvolution
	for rows.Next() {
		m, err := scanMega(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func scanMega(scanner interface{ Scan(dest ...any) error }) (model.MegaEvolution, error) {
	var m model.MegaEvolution
	var typesJSON string
	err := scanner.Scan(
		&m.PokemonID, &m.PokemonName, &m.Form, &m.MegaName,
		&m.FirstEnergy, &m.Energy,
		&m.BaseAttack, &m.BaseDefense, &m.BaseStamina, &typesJSON,
		&m.CPMultOverride,
	)
	if err != nil {
		return m, fmt.Errorf("scanning mega row: %w", err)
	}
	m.Types, err = decodeTypes(typesJSON, m.MegaName)
	return m, err
}

func decodeTypes(typesJSON, owner string) ([]model.Type, error) {
	var tokens []string
	if err := json.Unmarshal([]byte(typesJSON), &tokens); err != nil {
		return nil, fmt.Errorf("decoding types for %q: %w", owner, err)
	}
	return model.ParseTypes(tokens), nil
}

// HasMegaInLine reports whether id or any of its direct evolution targets
// has stored mega rows. Deeper stages are not checked; the one-hop rule
// matches the live provider check and is a known limitation for longer
// chains.
func (s *Store) HasMegaInLine(id int) (bool, error) {
	var count int
	if err := s.conn.QueryRow(
		"SELECT COUNT(*) FROM mega_evolutions WHERE pokemon_id = ?", id).Scan(&count); err != nil {
		return false, fmt.Errorf("counting megas for %d: %w", id, err)
	}
	if count > 0 {
		return true, nil
	}

	targets, err := s.EvolutionTargets(id)
	if err != nil {
		return false, err
	}
	for _, target := range targets {
		if err := s.conn.QueryRow(
			"SELECT COUNT(*) FROM mega_evolutions WHERE pokemon_id = ?", target).Scan(&count); err != nil {
			return false, fmt.Errorf("counting megas for %d: %w", target, err)
		}
		if count > 0 {
			return true, nil
		}
	}
	return false, nil
}
