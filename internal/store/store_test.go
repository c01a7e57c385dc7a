package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

// setupTestStore creates a store backed by a temp file so Stats can see a
// real file size.
func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "pokemon.db"))
	if err != nil {
		t.Fatalf("opening test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func intPtr(v int) *int          { return &v }
func boolPtr(v bool) *bool       { return &v }
func strPtr(v string) *string    { return &v }
func floatPtr(v float64) *float64 { return &v }

func testPokemon(id int, name string) *model.Pokemon {
	return &model.Pokemon{
		ID:          id,
		Name:        name,
		Types:       []model.Type{model.TypeElectric},
		BaseAttack:  112,
		BaseDefense: 96,
		BaseStamina: 111,
		CPLevel20:   547,
		CPLevel25:   612,
		CPLevel30:   670,
		CPLevel40:   724,
		MaxCP:       938,
		BuddyDistance: intPtr(1),
		CandyToEvolve: intPtr(50),
		ShinyAvail:    true,
		Released:      true,
		Rarity:        strPtr("Standard"),
	}
}

func TestUpsertPokemon_RoundTrip(t *testing.T) {
	s := setupTestStore(t)

	want := testPokemon(25, "Pikachu")
	if err := s.UpsertPokemon(want); err != nil {
		t.Fatalf("upserting: %v", err)
	}

	byID, err := s.GetByID(25)
	if err != nil {
		t.Fatalf("reading by id: %v", err)
	}
	if byID == nil {
		t.Fatal("expected record by id")
	}

	for _, name := range []string{"pikachu", "PIKACHU", "PiKaChu"} {
		got, err := s.GetByName(name)
		if err != nil {
			t.Fatalf("reading by name %q: %v", name, err)
		}
		if got == nil {
			t.Fatalf("no record for %q", name)
		}
		if got.ID != 25 {
			t.Errorf("%q resolved to id %d, want 25", name, got.ID)
		}
	}

	if byID.Name != "Pikachu" || byID.BaseAttack != 112 || byID.CPLevel40 != 724 {
		t.Errorf("round-trip mismatch: %+v", byID)
	}
	if len(byID.Types) != 1 || byID.Types[0] != model.TypeElectric {
		t.Errorf("types round-trip mismatch: %v", byID.Types)
	}
	if byID.BuddyDistance == nil || *byID.BuddyDistance != 1 {
		t.Errorf("buddy distance mismatch: %v", byID.BuddyDistance)
	}
	if byID.Form != "Normal" {
		t.Errorf("form defaulted to %q, want Normal", byID.Form)
	}
	if byID.DataSource != model.DefaultDataSource {
		t.Errorf("data source %q, want %q", byID.DataSource, model.DefaultDataSource)
	}
}

func TestUpsertPokemon_PreservesCreationTimestamp(t *testing.T) {
	s := setupTestStore(t)

	first := testPokemon(1, "Bulbasaur")
	if err := s.UpsertPokemon(first); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	created := first.CreatedAt

	time.Sleep(5 * time.Millisecond)

	second := testPokemon(1, "Bulbasaur")
	second.BaseAttack = 200
	if err := s.UpsertPokemon(second); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.GetByID(1)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if got.CreatedAt != created {
		t.Errorf("creation timestamp changed: got %d, want %d", got.CreatedAt, created)
	}
	if got.UpdatedAt <= created {
		t.Errorf("update timestamp did not advance: %d <= %d", got.UpdatedAt, created)
	}
	if got.BaseAttack != 200 {
		t.Errorf("field not replaced: got %d, want 200", got.BaseAttack)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	s := setupTestStore(t)
	got, err := s.GetByID(999)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestSearchByName_SubstringOrderedLimited(t *testing.T) {
	s := setupTestStore(t)
	for i, name := range []string{"Charmander", "Charmeleon", "Charizard", "Pidgey"} {
		if err := s.UpsertPokemon(testPokemon(i+1, name)); err != nil {
			t.Fatalf("upserting %s: %v", name, err)
		}
	}

	got, err := s.SearchByName("char", 10)
	if err != nil {
		t.Fatalf("searching: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d results, want 3", len(got))
	}
	// Ordered by name: Charizard, Charmander, Charmeleon.
	if got[0].Name != "Charizard" || got[2].Name != "Charmeleon" {
		t.Errorf("unexpected order: %v, %v, %v", got[0].Name, got[1].Name, got[2].Name)
	}

	// Substring, not prefix: "meleon" matches too.
	got, err = s.SearchByName("meleon", 10)
	if err != nil {
		t.Fatalf("searching: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Charmeleon" {
		t.Errorf("substring search failed: %v", got)
	}

	got, err = s.SearchByName("char", 2)
	if err != nil {
		t.Fatalf("searching: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("limit not applied: got %d results", len(got))
	}
}

func TestUpdateFields(t *testing.T) {
	s := setupTestStore(t)
	p := testPokemon(7, "Squirtle")
	p.ShinyAvail = false
	if err := s.UpsertPokemon(p); err != nil {
		t.Fatalf("upserting: %v", err)
	}

	// Neither field supplied: no write.
	ok, err := s.UpdateFields(7, nil, nil)
	if err != nil {
		t.Fatalf("updating: %v", err)
	}
	if ok {
		t.Error("expected false when no field supplied")
	}

	// Unknown id: no write.
	ok, err = s.UpdateFields(999, boolPtr(true), nil)
	if err != nil {
		t.Fatalf("updating: %v", err)
	}
	if ok {
		t.Error("expected false for unknown id")
	}

	before, _ := s.GetByID(7)
	time.Sleep(5 * time.Millisecond)

	ok, err = s.UpdateFields(7, boolPtr(true), intPtr(600))
	if err != nil {
		t.Fatalf("updating: %v", err)
	}
	if !ok {
		t.Fatal("expected update to apply")
	}

	got, err := s.GetByID(7)
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}
	if !got.ShinyAvail {
		t.Error("shiny flag not updated")
	}
	if got.BaseStardust == nil || *got.BaseStardust != 600 {
		t.Errorf("stardust not updated: %v", got.BaseStardust)
	}
	if got.UpdatedAt <= before.UpdatedAt {
		t.Error("update timestamp did not advance")
	}
}

func TestStats(t *testing.T) {
	s := setupTestStore(t)

	st, err := s.Stats()
	if err != nil {
		t.Fatalf("reading stats: %v", err)
	}
	if st.TotalPokemon != 0 || st.LastUpdatedAt != 0 {
		t.Errorf("empty store stats: %+v", st)
	}

	if err := s.UpsertPokemon(testPokemon(1, "Bulbasaur")); err != nil {
		t.Fatalf("upserting: %v", err)
	}

	st, err = s.Stats()
	if err != nil {
		t.Fatalf("reading stats: %v", err)
	}
	if st.TotalPokemon != 1 {
		t.Errorf("got %d pokemon, want 1", st.TotalPokemon)
	}
	if st.LastUpdatedAt == 0 {
		t.Error("last update not recorded")
	}
	if st.Path != s.Path {
		t.Errorf("path %q, want %q", st.Path, s.Path)
	}
}
