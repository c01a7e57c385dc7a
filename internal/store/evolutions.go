package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

// UpsertEvolutions replaces the stored evolution rows for the owning id
// wholesale: delete everything, then insert the new requirement list. An
// empty list therefore clears the stored evolutions. This is deliberately
// asymmetric with UpsertMegaForms.
func (s *Store) UpsertEvolutions(ev *model.Evolution) error {
	tx, err := s.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning evolution upsert: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM pokemon_evolutions WHERE from_pokemon_id = ?", ev.PokemonID); err != nil {
		return fmt.Errorf("clearing evolutions for %d: %w", ev.PokemonID, err)
	}

	now := time.Now().UnixMilli()
	for _, req := range ev.Evolutions {
		_, err := tx.Exec(`
			INSERT INTO pokemon_evolutions (
				from_pokemon_id, to_pokemon_id, to_pokemon_name, candy_required,
				item_required, lure_required, no_candy_cost_if_traded, priority,
				only_evolves_in_daytime, only_evolves_in_nighttime,
				must_be_buddy_to_evolve, buddy_distance_required, gender_required,
				created_at, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ev.PokemonID, req.PokemonID, req.PokemonName, req.CandyRequired,
			req.ItemRequired, req.LureRequired, req.NoCandyIfTraded, req.Priority,
			req.OnlyDaytime, req.OnlyNighttime,
			req.MustBeBuddy, req.BuddyDistanceNeeded, req.GenderRequired,
			now, now,
		)
		if err != nil {
			return fmt.Errorf("inserting evolution %d -> %d: %w", ev.PokemonID, req.PokemonID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing evolution upsert: %w", err)
	}
	return nil
}

// GetEvolutions returns the evolution record for id, or nil when the owning
// Pokémon is unknown or has no stored rows. Requirements are ordered by
// priority descending (absent last), then target name.
func (s *Store) GetEvolutions(id int) (*model.Evolution, error) {
	var name string
	err := s.conn.QueryRow("SELECT name FROM pokemon_data WHERE id = ?", id).Scan(&name)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading pokemon %d: %w", id, err)
	}

	rows, err := s.conn.Query(`
		SELECT to_pokemon_id, to_pokemon_name, candy_required, item_required,
		       lure_required, no_candy_cost_if_traded, priority,
		       only_evolves_in_daytime, only_evolves_in_nighttime,
		       must_be_buddy_to_evolve, buddy_distance_required, gender_required
		FROM pokemon_evolutions
		WHERE from_pokemon_id = ?
		ORDER BY priority DESC, to_pokemon_name
	`, id)
	if err != nil {
		return nil, fmt.Errorf("reading evolutions for %d: %w", id, err)
	}
	defer rows.Close()

	var reqs []model.EvolutionRequirement
	for rows.Next() {
		var r model.EvolutionRequirement
		err := rows.Scan(
			&r.PokemonID, &r.PokemonName, &r.CandyRequired, &r.ItemRequired,
			&r.LureRequired, &r.NoCandyIfTraded, &r.Priority,
			&r.OnlyDaytime, &r.OnlyNighttime,
			&r.MustBeBuddy, &r.BuddyDistanceNeeded, &r.GenderRequired,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning evolution row: %w", err)
		}
		reqs = append(reqs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(reqs) == 0 {
		return nil, nil
	}

	return &model.Evolution{PokemonID: id, PokemonName: name, Evolutions: reqs}, nil
}

// EvolutionTargets returns the distinct evolution target ids stored for id.
func (s *Store) EvolutionTargets(id int) ([]int, error) {
	rows, err := s.conn.Query(
		"SELECT DISTINCT to_pokemon_id FROM pokemon_evolutions WHERE from_pokemon_id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("reading evolution targets for %d: %w", id, err)
	}
	defer rows.Close()

	var targets []int
	for rows.Next() {
		var target int
		if err := rows.Scan(&target); err != nil {
			return nil, err
		}
		targets = append(targets, target)
	}
	return targets, rows.Err()
}
