package pogoapi

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/cpcalc"
)

// Dataset endpoints of the stats API.
const (
	epStats      = "pokemon_stats.json"
	epNames      = "pokemon_names.json"
	epTypes      = "pokemon_types.json"
	epMaxCP      = "pokemon_max_cp.json"
	epShiny      = "shiny_pokemon.json"
	epReleased   = "released_pokemon.json"
	epBuddy      = "pokemon_buddy_distances.json"
	epCandy      = "pokemon_candy_to_evolve.json"
	epRarity     = "pokemon_rarity.json"
	epMultiplier = "cp_multiplier.json"
	epEvolutions = "pokemon_evolutions.json"
	epMega       = "mega_pokemon.json"
)

type rawStats struct {
	PokemonID   int    `json:"pokemon_id"`
	Form        string `json:"form"`
	BaseAttack  int    `json:"base_attack"`
	BaseDefense int    `json:"base_defense"`
	BaseStamina int    `json:"base_stamina"`
}

type rawName struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type rawTypes struct {
	PokemonID int      `json:"pokemon_id"`
	Form      string   `json:"form"`
	Type      []string `json:"type"`
}

type rawMaxCP struct {
	PokemonID int    `json:"pokemon_id"`
	Form      string `json:"form"`
	MaxCP     int    `json:"max_cp"`
}

type rawIDEntry struct {
	PokemonID int `json:"pokemon_id"`
}

type rawEvolutionEntry struct {
	PokemonID       int      `json:"pokemon_id"`
	PokemonName     string   `json:"pokemon_name"`
	CandyRequired   int      `json:"candy_required"`
	ItemRequired    *string  `json:"item_required"`
	LureRequired    *string  `json:"lure_required"`
	NoCandyIfTraded bool     `json:"no_candy_cost_if_traded"`
	Priority        *int     `json:"priority"`
	OnlyDaytime     bool     `json:"only_evolves_in_daytime"`
	OnlyNighttime   bool     `json:"only_evolves_in_nighttime"`
	MustBeBuddy     bool     `json:"must_be_buddy_to_evolve"`
	BuddyDistance   *float64 `json:"buddy_distance_required"`
	GenderRequired  *string  `json:"gender_required"`
}

type rawEvolution struct {
	PokemonID   int                 `json:"pokemon_id"`
	PokemonName string              `json:"pokemon_name"`
	Form        *string             `json:"form"`
	Evolutions  []rawEvolutionEntry `json:"evolutions"`
}

type rawMegaStats struct {
	BaseAttack  int `json:"base_attack"`
	BaseDefense int `json:"base_defense"`
	BaseStamina int `json:"base_stamina"`
}

type rawMega struct {
	PokemonID      int          `json:"pokemon_id"`
	PokemonName    string       `json:"pokemon_name"`
	Form           string       `json:"form"`
	MegaName       string       `json:"mega_name"`
	FirstEnergy    int          `json:"first_time_mega_energy_required"`
	Energy         int          `json:"mega_energy_required"`
	Stats          rawMegaStats `json:"stats"`
	Type           []string     `json:"type"`
	CPMultOverride *float64     `json:"cp_multiplier_override"`
}

// preferNormal reduces entries sharing an id to one row: the entry whose
// form is "Normal" when present, otherwise the first seen. Applied
// identically to every dataset with multi-form duplication.
func preferNormal[T any](entries []T, id func(T) int, form func(T) string) map[int]T {
	out := make(map[int]T, len(entries))
	for _, e := range entries {
		key := id(e)
		if _, seen := out[key]; !seen || form(e) == "Normal" {
			out[key] = e
		}
	}
	return out
}

// flattenGroupedInt converts a {groupValue: [entries]} payload into an
// id→parsed-group-key table, as used by the buddy-distance, candy and
// rarity datasets.
func flattenGroupedInt(grouped map[string][]rawIDEntry) map[int]int {
	out := make(map[int]int)
	for key, entries := range grouped {
		value, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		for _, e := range entries {
			out[e.PokemonID] = value
		}
	}
	return out
}

func (s *Session) statsTable(ctx context.Context) map[int]rawStats {
	return dataset(ctx, s, epStats, func(ctx context.Context) (map[int]rawStats, error) {
		var raw []rawStats
		if err := s.fetchJSON(ctx, epStats, &raw); err != nil {
			return map[int]rawStats{}, err
		}
		return preferNormal(raw,
			func(e rawStats) int { return e.PokemonID },
			func(e rawStats) string { return e.Form }), nil
	})
}

func (s *Session) namesTable(ctx context.Context) map[int]string {
	return dataset(ctx, s, epNames, func(ctx context.Context) (map[int]string, error) {
		out := map[int]string{}
		var raw map[string]rawName
		if err := s.fetchJSON(ctx, epNames, &raw); err != nil {
			return out, err
		}
		for key, entry := range raw {
			id, err := strconv.Atoi(key)
			if err != nil {
				continue
			}
			out[id] = entry.Name
		}
		return out, nil
	})
}

func (s *Session) typesTable(ctx context.Context) map[int]rawTypes {
	return dataset(ctx, s, epTypes, func(ctx context.Context) (map[int]rawTypes, error) {
		var raw []rawTypes
		if err := s.fetchJSON(ctx, epTypes, &raw); err != nil {
			return map[int]rawTypes{}, err
		}
		return preferNormal(raw,
			func(e rawTypes) int { return e.PokemonID },
			func(e rawTypes) string { return e.Form }), nil
	})
}

func (s *Session) maxCPTable(ctx context.Context) map[int]rawMaxCP {
	return dataset(ctx, s, epMaxCP, func(ctx context.Context) (map[int]rawMaxCP, error) {
		var raw []rawMaxCP
		if err := s.fetchJSON(ctx, epMaxCP, &raw); err != nil {
			return map[int]rawMaxCP{}, err
		}
		return preferNormal(raw,
			func(e rawMaxCP) int { return e.PokemonID },
			func(e rawMaxCP) string { return e.Form }), nil
	})
}

// idSet loads one of the presence-keyed datasets (shiny, released): the
// upstream payload is a dict keyed by id, and membership is the signal.
func (s *Session) idSet(ctx context.Context, endpoint string) map[int]bool {
	return dataset(ctx, s, endpoint, func(ctx context.Context) (map[int]bool, error) {
		out := map[int]bool{}
		var raw map[string]json.RawMessage
		if err := s.fetchJSON(ctx, endpoint, &raw); err != nil {
			return out, err
		}
		for key := range raw {
			if id, err := strconv.Atoi(key); err == nil {
				out[id] = true
			}
		}
		return out, nil
	})
}

func (s *Session) buddyTable(ctx context.Context) map[int]int {
	return dataset(ctx, s, epBuddy, func(ctx context.Context) (map[int]int, error) {
		var raw map[string][]rawIDEntry
		if err := s.fetchJSON(ctx, epBuddy, &raw); err != nil {
			return map[int]int{}, err
		}
		return flattenGroupedInt(raw), nil
	})
}

func (s *Session) candyTable(ctx context.Context) map[int]int {
	return dataset(ctx, s, epCandy, func(ctx context.Context) (map[int]int, error) {
		var raw map[string][]rawIDEntry
		if err := s.fetchJSON(ctx, epCandy, &raw); err != nil {
			return map[int]int{}, err
		}
		return flattenGroupedInt(raw), nil
	})
}

func (s *Session) rarityTable(ctx context.Context) map[int]string {
	return dataset(ctx, s, epRarity, func(ctx context.Context) (map[int]string, error) {
		out := map[int]string{}
		var raw map[string][]rawIDEntry
		if err := s.fetchJSON(ctx, epRarity, &raw); err != nil {
			return out, err
		}
		for rarity, entries := range raw {
			for _, e := range entries {
				out[e.PokemonID] = rarity
			}
		}
		return out, nil
	})
}

func (s *Session) multiplierCurve(ctx context.Context) []cpcalc.Multiplier {
	return dataset(ctx, s, epMultiplier, func(ctx context.Context) ([]cpcalc.Multiplier, error) {
		var raw []cpcalc.Multiplier
		if err := s.fetchJSON(ctx, epMultiplier, &raw); err != nil {
			return nil, err
		}
		return raw, nil
	})
}

func (s *Session) evolutionsTable(ctx context.Context) map[int]rawEvolution {
	return dataset(ctx, s, epEvolutions, func(ctx context.Context) (map[int]rawEvolution, error) {
		out := map[int]rawEvolution{}
		var raw []rawEvolution
		if err := s.fetchJSON(ctx, epEvolutions, &raw); err != nil {
			return out, err
		}
		for _, e := range raw {
			if _, seen := out[e.PokemonID]; !seen {
				out[e.PokemonID] = e
			}
		}
		return out, nil
	})
}

func (s *Session) megaTable(ctx context.Context) map[int][]rawMega {
	return dataset(ctx, s, epMega, func(ctx context.Context) (map[int][]rawMega, error) {
		out := map[int][]rawMega{}
		var raw []rawMega
		if err := s.fetchJSON(ctx, epMega, &raw); err != nil {
			return out, err
		}
		for _, m := range raw {
			out[m.PokemonID] = append(out[m.PokemonID], m)
		}
		return out, nil
	})
}
