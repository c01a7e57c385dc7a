package pogoapi

import (
	"context"
	"sort"
	"strings"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/cpcalc"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

// Reference levels for displayed CP values.
var referenceLevels = []float64{20, 25, 30, 40}

// FetchStatsByName resolves a name case-insensitively against the names
// dataset and joins the remaining datasets into a full record. Returns nil
// (not an error) when the name is unknown or the stats table has no entry.
func (s *Session) FetchStatsByName(ctx context.Context, name string) (*model.Pokemon, error) {
	names := s.namesTable(ctx)

	var id int
	var canonical string
	found := false
	for pid, pname := range names {
		if strings.EqualFold(pname, name) {
			id, canonical = pid, pname
			found = true
			break
		}
	}
	if !found {
		return nil, nil
	}

	stats, ok := s.statsTable(ctx)[id]
	if !ok {
		return nil, nil
	}

	var types []model.Type
	if entry, ok := s.typesTable(ctx)[id]; ok {
		types = model.ParseTypes(entry.Type)
	}

	curve := s.multiplierCurve(ctx)
	cps := make([]int, len(referenceLevels))
	for i, level := range referenceLevels {
		cps[i] = cpcalc.Compute(stats.BaseAttack, stats.BaseDefense, stats.BaseStamina, level, curve)
	}

	maxCP := cps[len(cps)-1]
	if entry, ok := s.maxCPTable(ctx)[id]; ok {
		maxCP = entry.MaxCP
	}

	p := &model.Pokemon{
		ID:          id,
		Name:        canonical,
		Types:       types,
		BaseAttack:  stats.BaseAttack,
		BaseDefense: stats.BaseDefense,
		BaseStamina: stats.BaseStamina,
		CPLevel20:   cps[0],
		CPLevel25:   cps[1],
		CPLevel30:   cps[2],
		CPLevel40:   cps[3],
		MaxCP:       maxCP,
		ShinyAvail:  s.idSet(ctx, epShiny)[id],
		Released:    s.idSet(ctx, epReleased)[id],
		Form:        "Normal",
		DataSource:  model.DefaultDataSource,
	}

	if distance, ok := s.buddyTable(ctx)[id]; ok {
		p.BuddyDistance = &distance
	}
	if candy, ok := s.candyTable(ctx)[id]; ok {
		p.CandyToEvolve = &candy
	}
	rarity := model.RarityStandard
	if r, ok := s.rarityTable(ctx)[id]; ok {
		rarity = r
	}
	p.Rarity = &rarity

	return p, nil
}

// SearchNames returns upstream names containing partial, sorted, capped at
// limit.
func (s *Session) SearchNames(ctx context.Context, partial string, limit int) []string {
	needle := strings.ToLower(partial)
	var matches []string
	for _, name := range s.namesTable(ctx) {
		if strings.Contains(strings.ToLower(name), needle) {
			matches = append(matches, name)
		}
	}
	sort.Strings(matches)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	return matches
}

// FetchEvolutions returns the evolution record for id, or nil when the
// upstream dataset has no entry. Absent per-requirement fields keep their
// upstream defaults (candy 0, flags false).
func (s *Session) FetchEvolutions(ctx context.Context, id int) (*model.Evolution, error) {
	entry, ok := s.evolutionsTable(ctx)[id]
	if !ok {
		return nil, nil
	}

	reqs := make([]model.EvolutionRequirement, 0, len(entry.Evolutions))
	for _, raw := range entry.Evolutions {
		reqs = append(reqs, model.EvolutionRequirement{
			PokemonID:           raw.PokemonID,
			PokemonName:         raw.PokemonName,
			CandyRequired:       raw.CandyRequired,
			ItemRequired:        raw.ItemRequired,
			LureRequired:        raw.LureRequired,
			NoCandyIfTraded:     raw.NoCandyIfTraded,
			Priority:            raw.Priority,
			OnlyDaytime:         raw.OnlyDaytime,
			OnlyNighttime:       raw.OnlyNighttime,
			MustBeBuddy:         raw.MustBeBuddy,
			BuddyDistanceNeeded: raw.BuddyDistance,
			GenderRequired:      raw.GenderRequired,
		})
	}

	return &model.Evolution{
		PokemonID:   entry.PokemonID,
		PokemonName: entry.PokemonName,
		Form:        entry.Form,
		Evolutions:  reqs,
	}, nil
}

// FetchMegaForms returns every mega form of id, empty when there are none.
// A Pokémon can have multiple entries (dual mega forms).
func (s *Session) FetchMegaForms(ctx context.Context, id int) ([]model.MegaEvolution, error) {
	raws := s.megaTable(ctx)[id]

	megas := make([]model.MegaEvolution, 0, len(raws))
	for _, raw := range raws {
		megas = append(megas, model.MegaEvolution{
			PokemonID:      raw.PokemonID,
			PokemonName:    raw.PokemonName,
			Form:           raw.Form,
			MegaName:       raw.MegaName,
			FirstEnergy:    raw.FirstEnergy,
			Energy:         raw.Energy,
			BaseAttack:     raw.Stats.BaseAttack,
			BaseDefense:    raw.Stats.BaseDefense,
			BaseStamina:    raw.Stats.BaseStamina,
			Types:          model.ParseTypes(raw.Type),
			CPMultOverride: raw.CPMultOverride,
		})
	}
	return megas, nil
}

// HasMegaInLine reports whether id or any of its direct evolution targets
// has mega forms. Always a live check against the datasets, never the local
// cache. Only one evolution hop is inspected; deeper stages are a known
// limitation.
func (s *Session) HasMegaInLine(ctx context.Context, id int) (bool, error) {
	megas, err := s.FetchMegaForms(ctx, id)
	if err != nil {
		return false, err
	}
	if len(megas) > 0 {
		return true, nil
	}

	ev, err := s.FetchEvolutions(ctx, id)
	if err != nil || ev == nil {
		return false, err
	}
	for _, req := range ev.Evolutions {
		targetMegas, err := s.FetchMegaForms(ctx, req.PokemonID)
		if err != nil {
			return false, err
		}
		if len(targetMegas) > 0 {
			return true, nil
		}
	}
	return false, nil
}
