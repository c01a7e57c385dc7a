package texto

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

func charmander() *model.Pokemon {
	return &model.Pokemon{
		ID: 4, Name: "Charmander",
		Types:      []model.Type{model.TypeFire},
		BaseAttack: 116, BaseDefense: 93, BaseStamina: 118,
		CPLevel20: 617, CPLevel25: 771, CPLevel30: 926, CPLevel40: 980,
	}
}

func TestRender_MissingVariableIsError(t *testing.T) {
	r := NewRenderer("")
	_, err := r.Render("raid_day", map[string]string{"pokemon_name": "Charmander"})
	if err == nil {
		t.Fatal("expected an error for missing variables")
	}
	if !strings.Contains(err.Error(), "event_date") {
		t.Errorf("error should name the missing variable: %v", err)
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	r := NewRenderer("")
	if _, err := r.Render("no_such_event", nil); err == nil {
		t.Fatal("expected an error for an unknown template")
	}
}

func TestRender_OverrideDirectoryWins(t *testing.T) {
	dir := t.TempDir()
	body := "Hola $pokemon_name"
	if err := os.WriteFile(filepath.Join(dir, "raid_day.txt"), []byte(body), 0o644); err != nil {
		t.Fatalf("writing override: %v", err)
	}

	r := NewRenderer(dir)
	got, err := r.Render("raid_day", map[string]string{"pokemon_name": "Charmander"})
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	if got != "Hola Charmander" {
		t.Errorf("got %q, override not used", got)
	}
}

func TestListTemplates(t *testing.T) {
	r := NewRenderer("")
	names := r.ListTemplates()

	want := []string{"dynamax_monday", "legendary_hour", "max_battle_day", "pokemon_summary", "raid_day", "spotlight_hour"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("got %v, want %v", names, want)
		}
	}
}

func TestTypeInfo(t *testing.T) {
	got := TypeInfo([]model.Type{model.TypeFire, model.TypeFlying})
	want := "Fuego 🔥 / Volador 🪽"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	if got := TypeInfo(nil); got != "Tipo desconocido" {
		t.Errorf("got %q for empty types", got)
	}
}

func TestFormatList(t *testing.T) {
	cases := []struct {
		names []string
		want  string
	}{
		{[]string{"Moltres"}, "Moltres"},
		{[]string{"Moltres", "Zapdos"}, "Moltres y Zapdos"},
		{[]string{"Moltres", "Zapdos", "Articuno"}, "Moltres, Zapdos y Articuno"},
	}
	for _, c := range cases {
		if got := FormatList(c.names); got != c.want {
			t.Errorf("FormatList(%v) = %q, want %q", c.names, got, c.want)
		}
	}
}

func TestStardustDetails(t *testing.T) {
	got := StardustDetails(600)
	if !strings.Contains(got, "1200") || !strings.Contains(got, "1800") {
		t.Errorf("got %q, want the doubled and star-piece amounts", got)
	}
}

func TestDynamaxMonday(t *testing.T) {
	r := NewRenderer("")
	ev := &model.Evolution{
		PokemonID: 4, PokemonName: "Charmander",
		Evolutions: []model.EvolutionRequirement{{PokemonID: 5, PokemonName: "Charmeleon", CandyRequired: 25}},
	}

	got, err := r.DynamaxMonday(charmander(), true, ev, nil, true, "lunes 31 de agosto")
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}

	for _, piece := range []string{
		"Charmander",
		"#004",
		"lunes 31 de agosto",
		"Fuego 🔥",
		"1/512",
		"Charmeleon (25 caramelos)",
		"línea evolutiva incluye megaevoluciones",
		"No tiene megaevolución disponible",
	} {
		if !strings.Contains(got, piece) {
			t.Errorf("output missing %q:\n%s", piece, got)
		}
	}
}

func TestSpotlightHour_StardustBonus(t *testing.T) {
	r := NewRenderer("")
	base := 500

	got, err := r.SpotlightHour(charmander(), SpotlightBonus{
		Description:  "✨X2 polvos estelares por captura ✨",
		BaseStardust: &base,
	}, false, nil, nil, false, "martes 1 de septiembre")
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}

	if !strings.Contains(got, "1000") || !strings.Contains(got, "1500") {
		t.Errorf("stardust breakdown missing:\n%s", got)
	}
	if !strings.Contains(got, "no estará disponible") {
		t.Errorf("shiny unavailability missing:\n%s", got)
	}
	if !strings.Contains(got, "#004") {
		t.Errorf("dex number missing:\n%s", got)
	}
}

func TestSpotlightHour_MegaInLine(t *testing.T) {
	r := NewRenderer("")
	ev := &model.Evolution{
		PokemonID: 4, PokemonName: "Charmander",
		Evolutions: []model.EvolutionRequirement{{PokemonID: 5, PokemonName: "Charmeleon", CandyRequired: 25}},
	}

	got, err := r.SpotlightHour(charmander(), SpotlightBonus{
		Description: "✨X2 XP por captura ✨",
		Details:     "XP: cada captura otorgará el doble de experiencia.",
	}, true, ev, nil, true, "martes 1 de septiembre")
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	if !strings.Contains(got, "Charmeleon tiene mega-evolución disponible") {
		t.Errorf("mega line hint missing:\n%s", got)
	}
}

func TestLegendaryHour_Single(t *testing.T) {
	r := NewRenderer("")
	p := charmander()
	p.Name = "Moltres"
	p.Types = []model.Type{model.TypeFire, model.TypeFlying}

	got, err := r.LegendaryHour(p, true, "miércoles 2 de septiembre")
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	if !strings.Contains(got, "Moltres es de tipo") {
		t.Errorf("singular verb missing:\n%s", got)
	}
	if !strings.Contains(got, "alrededor de 1/20") {
		t.Errorf("legendary shiny odds missing:\n%s", got)
	}
}

func TestMultipleLegendaryHour(t *testing.T) {
	r := NewRenderer("")
	moltres := charmander()
	moltres.Name = "Moltres"
	zapdos := charmander()
	zapdos.Name = "Zapdos"
	zapdos.Types = []model.Type{model.TypeElectric, model.TypeFlying}

	got, err := r.MultipleLegendaryHour([]LegendaryEntry{
		{Pokemon: moltres, Shiny: true},
		{Pokemon: zapdos, Shiny: false},
	}, "miércoles 2 de septiembre")
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}

	if !strings.Contains(got, "Moltres y Zapdos son de tipo múltiples tipos") {
		t.Errorf("plural heading missing:\n%s", got)
	}
	if !strings.Contains(got, "❖ Moltres") || !strings.Contains(got, "❖ Zapdos") {
		t.Errorf("per-pokemon details missing:\n%s", got)
	}
	if !strings.Contains(got, "disponible para Moltres") || !strings.Contains(got, "pero no para Zapdos") {
		t.Errorf("mixed shiny text missing:\n%s", got)
	}
}

func TestMaxBattleDay(t *testing.T) {
	r := NewRenderer("")
	got, err := r.MaxBattleDay(charmander(), "Gigantamax", true, "sábado 29 de agosto")
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	if !strings.Contains(got, "Charmander Gigantamax") {
		t.Errorf("max type missing:\n%s", got)
	}
	if !strings.Contains(got, "potenciada (alrededor de 1/20)") {
		t.Errorf("boosted shiny text missing:\n%s", got)
	}
}

func TestPokemonSummary(t *testing.T) {
	r := NewRenderer("")
	mega := model.MegaEvolution{
		PokemonID: 6, PokemonName: "Charizard", Form: "X", MegaName: "Mega Charizard X",
		FirstEnergy: 200, Energy: 40, BaseAttack: 273, BaseDefense: 213, BaseStamina: 186,
		Types: []model.Type{model.TypeFire, model.TypeDragon},
	}
	p := charmander()
	p.ID, p.Name = 6, "Charizard"

	got, err := r.PokemonSummary(p, nil, []model.MegaEvolution{mega}, true)
	if err != nil {
		t.Fatalf("rendering: %v", err)
	}
	if !strings.Contains(got, "#006") {
		t.Errorf("dex number missing:\n%s", got)
	}
	if !strings.Contains(got, "Mega Charizard X: Fire / Dragon") {
		t.Errorf("mega details missing:\n%s", got)
	}
	if !strings.Contains(got, "Energía: 200 primera vez, 40 después") {
		t.Errorf("energy costs missing:\n%s", got)
	}
	if !strings.Contains(got, "Puede megaevolucionar a Mega Charizard X") {
		t.Errorf("evolution info missing:\n%s", got)
	}
}
