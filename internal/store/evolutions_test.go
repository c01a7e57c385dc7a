package store

import (
	"testing"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

func testEvolution(fromID int, reqs ...model.EvolutionRequirement) *model.Evolution {
	return &model.Evolution{PokemonID: fromID, PokemonName: "Source", Evolutions: reqs}
}

func TestUpsertEvolutions_ReplaceNotMerge(t *testing.T) {
	s := setupTestStore(t)
	if err := s.UpsertPokemon(testPokemon(133, "Eevee")); err != nil {
		t.Fatalf("upserting pokemon: %v", err)
	}

	two := testEvolution(133,
		model.EvolutionRequirement{PokemonID: 134, PokemonName: "Vaporeon", CandyRequired: 25},
		model.EvolutionRequirement{PokemonID: 135, PokemonName: "Jolteon", CandyRequired: 25},
	)
	if err := s.UpsertEvolutions(two); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	one := testEvolution(133,
		model.EvolutionRequirement{PokemonID: 136, PokemonName: "Flareon", CandyRequired: 25},
	)
	if err := s.UpsertEvolutions(one); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.GetEvolutions(133)
	if err != nil {
		t.Fatalf("reading evolutions: %v", err)
	}
	if got == nil {
		t.Fatal("expected evolution record")
	}
	if len(got.Evolutions) != 1 {
		t.Fatalf("got %d requirements, want 1", len(got.Evolutions))
	}
	if got.Evolutions[0].PokemonName != "Flareon" {
		t.Errorf("got %q, want Flareon", got.Evolutions[0].PokemonName)
	}
}

func TestUpsertEvolutions_EmptyListClears(t *testing.T) {
	s := setupTestStore(t)
	if err := s.UpsertPokemon(testPokemon(1, "Bulbasaur")); err != nil {
		t.Fatalf("upserting pokemon: %v", err)
	}
	if err := s.UpsertEvolutions(testEvolution(1,
		model.EvolutionRequirement{PokemonID: 2, PokemonName: "Ivysaur", CandyRequired: 25},
	)); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	if err := s.UpsertEvolutions(testEvolution(1)); err != nil {
		t.Fatalf("clearing upsert: %v", err)
	}

	got, err := s.GetEvolutions(1)
	if err != nil {
		t.Fatalf("reading evolutions: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil after clear, got %+v", got)
	}
}

func TestGetEvolutions_UnknownOwner(t *testing.T) {
	s := setupTestStore(t)
	got, err := s.GetEvolutions(999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil for unknown owner, got %+v", got)
	}
}

func TestGetEvolutions_Ordering(t *testing.T) {
	s := setupTestStore(t)
	if err := s.UpsertPokemon(testPokemon(10, "Source")); err != nil {
		t.Fatalf("upserting pokemon: %v", err)
	}

	// Priority descending first, absent priority last, then name ascending.
	if err := s.UpsertEvolutions(testEvolution(10,
		model.EvolutionRequirement{PokemonID: 11, PokemonName: "Zeta"},
		model.EvolutionRequirement{PokemonID: 12, PokemonName: "Alpha"},
		model.EvolutionRequirement{PokemonID: 13, PokemonName: "Mid", Priority: intPtr(1)},
		model.EvolutionRequirement{PokemonID: 14, PokemonName: "Top", Priority: intPtr(5)},
	)); err != nil {
		t.Fatalf("upserting: %v", err)
	}

	got, err := s.GetEvolutions(10)
	if err != nil {
		t.Fatalf("reading evolutions: %v", err)
	}
	names := make([]string, len(got.Evolutions))
	for i, r := range got.Evolutions {
		names[i] = r.PokemonName
	}
	want := []string{"Top", "Mid", "Alpha", "Zeta"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("order got %v, want %v", names, want)
		}
	}
}

func TestEvolutions_OptionalFieldsRoundTrip(t *testing.T) {
	s := setupTestStore(t)
	if err := s.UpsertPokemon(testPokemon(58, "Growlithe")); err != nil {
		t.Fatalf("upserting pokemon: %v", err)
	}

	req := model.EvolutionRequirement{
		PokemonID:           59,
		PokemonName:         "Arcanine",
		CandyRequired:       50,
		ItemRequired:        strPtr("Fire Stone"),
		NoCandyIfTraded:     true,
		OnlyDaytime:         true,
		MustBeBuddy:         true,
		BuddyDistanceNeeded: floatPtr(10),
		GenderRequired:      strPtr("female"),
	}
	if err := s.UpsertEvolutions(testEvolution(58, req)); err != nil {
		t.Fatalf("upserting: %v", err)
	}

	got, err := s.GetEvolutions(58)
	if err != nil {
		t.Fatalf("reading evolutions: %v", err)
	}
	r := got.Evolutions[0]
	if r.ItemRequired == nil || *r.ItemRequired != "Fire Stone" {
		t.Errorf("item mismatch: %v", r.ItemRequired)
	}
	if r.LureRequired != nil {
		t.Errorf("lure should stay nil: %v", r.LureRequired)
	}
	if !r.NoCandyIfTraded || !r.OnlyDaytime || r.OnlyNighttime || !r.MustBeBuddy {
		t.Errorf("flag mismatch: %+v", r)
	}
	if r.BuddyDistanceNeeded == nil || *r.BuddyDistanceNeeded != 10 {
		t.Errorf("buddy distance mismatch: %v", r.BuddyDistanceNeeded)
	}
	if r.GenderRequired == nil || *r.GenderRequired != "female" {
		t.Errorf("gender mismatch: %v", r.GenderRequired)
	}
}
