// Package service coordinates the local cache and the live stats provider.
// Reads prefer the cache; anything fetched live is written through so the
// next invocation answers locally.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/store"
)

// Source tells callers where a record came from, for messaging.
type Source string

const (
	SourceCache Source = "cache"
	SourceFresh Source = "fresh"
)

// Provider is the live stats API surface the service depends on.
type Provider interface {
	FetchStatsByName(ctx context.Context, name string) (*model.Pokemon, error)
	SearchNames(ctx context.Context, partial string, limit int) []string
	FetchEvolutions(ctx context.Context, id int) (*model.Evolution, error)
	FetchMegaForms(ctx context.Context, id int) ([]model.MegaEvolution, error)
	HasMegaInLine(ctx context.Context, id int) (bool, error)
}

// Prompter asks the user whether a cached record should be reused. Only
// consulted on interactive lookups that hit the cache.
type Prompter interface {
	UseCached(p *model.Pokemon) (bool, error)
}

type Service struct {
	store    *store.Store
	provider Provider
	prompter Prompter
	log      *slog.Logger
}

func New(st *store.Store, provider Provider, prompter Prompter, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: st, provider: provider, prompter: prompter, log: log}
}

// GetPokemon resolves name through the cache and, when needed, the provider.
// A cached hit is returned directly unless forceRefresh is set or the user
// asks for fresh data via the prompter. A live fetch that fails or misses
// falls back to the cached record when one exists.
func (s *Service) GetPokemon(ctx context.Context, name string, forceRefresh, interactive bool) (*model.Pokemon, Source, error) {
	cached, err := s.store.GetByName(name)
	if err != nil {
		return nil, "", fmt.Errorf("reading cache: %w", err)
	}

	if cached != nil && !forceRefresh {
		useCached := true
		if interactive && s.prompter != nil {
			useCached, err = s.prompter.UseCached(cached)
			if err != nil {
				return nil, "", err
			}
		}
		if useCached {
			return cached, SourceCache, nil
		}
	}

	fresh, err := s.provider.FetchStatsByName(ctx, name)
	if err != nil || fresh == nil {
		if cached != nil {
			s.log.Warn("live fetch failed, using cached record", "name", name, "error", err)
			return cached, SourceCache, nil
		}
		// No fallback: an unavailable upstream degrades to "no data",
		// same as an unknown name.
		if err != nil {
			s.log.Warn("live fetch failed with no cached fallback", "name", name, "error", err)
		}
		return nil, "", nil
	}

	if err := s.store.UpsertPokemon(fresh); err != nil {
		s.log.Warn("caching fetched record", "name", fresh.Name, "error", err)
	}
	return fresh, SourceFresh, nil
}

// SearchSource restricts where SearchNames looks.
type SearchSource string

const (
	SearchCache    SearchSource = "cache"
	SearchProvider SearchSource = "provider"
	SearchBoth     SearchSource = "both"
)

// SearchNames merges substring matches from the chosen sources,
// deduplicated case-insensitively, capped at limit. Cache matches come
// first; provider matches only fill the remaining quota.
func (s *Service) SearchNames(ctx context.Context, partial string, limit int, source SearchSource) ([]string, error) {
	seen := map[string]bool{}
	var names []string

	if source == SearchCache || source == SearchBoth {
		cached, err := s.store.SearchByName(partial, limit)
		if err != nil {
			return nil, fmt.Errorf("searching cache: %w", err)
		}
		for _, p := range cached {
			key := strings.ToLower(p.Name)
			if !seen[key] {
				seen[key] = true
				names = append(names, p.Name)
			}
		}
	}
	if source == SearchProvider || source == SearchBoth {
		for _, name := range s.provider.SearchNames(ctx, partial, limit) {
			key := strings.ToLower(name)
			if !seen[key] {
				seen[key] = true
				names = append(names, name)
			}
		}
	}

	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}

// SuggestNames fuzzy-ranks cached names against input, for the "did you
// mean" path when an exact lookup comes up empty.
func (s *Service) SuggestNames(input string, limit int) ([]string, error) {
	all, err := s.store.AllPokemon(0)
	if err != nil {
		return nil, fmt.Errorf("listing cache: %w", err)
	}

	names := make([]string, len(all))
	for i, p := range all {
		names[i] = p.Name
	}

	matches := fuzzy.Find(input, names)
	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Str
	}
	return out, nil
}

// GetEvolutions is cache-first with write-through. forceRefresh skips the
// cached read.
func (s *Service) GetEvolutions(ctx context.Context, id int, forceRefresh bool) (*model.Evolution, Source, error) {
	if !forceRefresh {
		cached, err := s.store.GetEvolutions(id)
		if err != nil {
			return nil, "", fmt.Errorf("reading cached evolutions: %w", err)
		}
		if cached != nil {
			return cached, SourceCache, nil
		}
	}

	fresh, err := s.provider.FetchEvolutions(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("fetching evolutions for %d: %w", id, err)
	}
	if fresh == nil {
		return nil, "", nil
	}
	if err := s.store.UpsertEvolutions(fresh); err != nil {
		s.log.Warn("caching evolutions", "id", id, "error", err)
	}
	return fresh, SourceFresh, nil
}

// GetMegaForms is cache-first. Only non-empty live results are written
// through; an empty answer is never allowed to clear cached forms.
func (s *Service) GetMegaForms(ctx context.Context, id int, forceRefresh bool) ([]model.MegaEvolution, Source, error) {
	if !forceRefresh {
		cached, err := s.store.GetMegaForms(id)
		if err != nil {
			return nil, "", fmt.Errorf("reading cached megas: %w", err)
		}
		if len(cached) > 0 {
			return cached, SourceCache, nil
		}
	}

	fresh, err := s.provider.FetchMegaForms(ctx, id)
	if err != nil {
		return nil, "", fmt.Errorf("fetching megas for %d: %w", id, err)
	}
	if len(fresh) > 0 {
		if err := s.store.UpsertMegaForms(fresh); err != nil {
			s.log.Warn("caching megas", "id", id, "error", err)
		}
	}
	return fresh, SourceFresh, nil
}

// HasMegaInLine answers from the cache when it already says yes (unless
// forceRefresh skips that read); otherwise it asks the provider and, on a positive live answer, pre-warms the cache
// with the evolution row and the mega forms of the subject and its direct
// targets so the cached check succeeds next time.
func (s *Service) HasMegaInLine(ctx context.Context, id int, forceRefresh bool) (bool, error) {
	if !forceRefresh {
		cached, err := s.store.HasMegaInLine(id)
		if err != nil {
			return false, fmt.Errorf("checking cached mega line: %w", err)
		}
		if cached {
			return true, nil
		}
	}

	live, err := s.provider.HasMegaInLine(ctx, id)
	if err != nil {
		return false, fmt.Errorf("checking mega line for %d: %w", id, err)
	}
	if live {
		s.warmMegaLine(ctx, id)
	}
	return live, nil
}

// warmMegaLine persists the evolution and mega rows backing a positive
// mega-line answer. Failures only degrade future cache hits, so they are
// logged and swallowed.
func (s *Service) warmMegaLine(ctx context.Context, id int) {
	targets := []int{id}
	if ev, err := s.provider.FetchEvolutions(ctx, id); err == nil && ev != nil {
		if err := s.store.UpsertEvolutions(ev); err != nil {
			s.log.Warn("caching evolutions", "id", id, "error", err)
		}
		for _, req := range ev.Evolutions {
			targets = append(targets, req.PokemonID)
		}
	}
	for _, target := range targets {
		megas, err := s.provider.FetchMegaForms(ctx, target)
		if err != nil || len(megas) == 0 {
			continue
		}
		if err := s.store.UpsertMegaForms(megas); err != nil {
			s.log.Warn("caching megas", "id", target, "error", err)
		}
	}
}

// Profile bundles everything the announcement texts need about one Pokémon.
type Profile struct {
	Pokemon       *model.Pokemon
	Source        Source
	Evolutions    *model.Evolution
	MegaForms     []model.MegaEvolution
	HasMegaInLine bool
}

// GetFullProfile resolves the base record and, when found, its evolutions,
// mega forms and mega-line flag. A missing base short-circuits to nil.
func (s *Service) GetFullProfile(ctx context.Context, name string, forceRefresh, interactive bool) (*Profile, error) {
	p, source, err := s.GetPokemon(ctx, name, forceRefresh, interactive)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, nil
	}

	profile := &Profile{Pokemon: p, Source: source}
	if profile.Evolutions, _, err = s.GetEvolutions(ctx, p.ID, forceRefresh); err != nil {
		return nil, err
	}
	if profile.MegaForms, _, err = s.GetMegaForms(ctx, p.ID, forceRefresh); err != nil {
		return nil, err
	}
	if profile.HasMegaInLine, err = s.HasMegaInLine(ctx, p.ID, forceRefresh); err != nil {
		return nil, err
	}
	return profile, nil
}

// UpdateFields patches the shiny flag and base stardust of a cached record
// and mirrors the change onto p. Returns false when nothing was written.
func (s *Service) UpdateFields(p *model.Pokemon, shinyAvail *bool, baseStardust *int) (bool, error) {
	changed, err := s.store.UpdateFields(p.ID, shinyAvail, baseStardust)
	if err != nil || !changed {
		return changed, err
	}
	if shinyAvail != nil {
		p.ShinyAvail = *shinyAvail
	}
	if baseStardust != nil {
		p.BaseStardust = baseStardust
	}
	return true, nil
}
