package texto

import (
	"strconv"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

// SpotlightBonus describes the rotating spotlight hour bonus. When
// BaseStardust is set the bonus is the stardust one and Details is replaced
// with the computed breakdown.
type SpotlightBonus struct {
	Description  string
	Details      string
	BaseStardust *int
}

// LegendaryEntry pairs a Pokémon with its shiny availability for the
// multi-Pokémon legendary hour text.
type LegendaryEntry struct {
	Pokemon *model.Pokemon
	Shiny   bool
}

// DynamaxMonday renders the Monday Max-battle announcement. eventDate is
// the already formatted Spanish date.
func (r *Renderer) DynamaxMonday(p *model.Pokemon, shiny bool, ev *model.Evolution, megas []model.MegaEvolution, hasMegaInLine bool, eventDate string) (string, error) {
	return r.Render("dynamax_monday", map[string]string{
		"pokemon_name":   p.Name,
		"pokemon_id":     numberSign(p.ID),
		"monday_date":    eventDate,
		"type_info":      TypeInfo(p.Types),
		"base_attack":    strconv.Itoa(p.BaseAttack),
		"base_defense":   strconv.Itoa(p.BaseDefense),
		"base_stamina":   strconv.Itoa(p.BaseStamina),
		"cp_level_20":    r.number(p.CPLevel20),
		"cp_level_25":    r.number(p.CPLevel25),
		"cp_level_30":    r.number(p.CPLevel30),
		"cp_level_40":    r.number(p.CPLevel40),
		"shiny_text":     shinyText(shiny, eventDynamax),
		"evolution_info": evolutionInfo(ev, megas, hasMegaInLine),
		"mega_details":   r.megaDetails(megas),
	})
}

// SpotlightHour renders the Tuesday spotlight announcement.
func (r *Renderer) SpotlightHour(p *model.Pokemon, bonus SpotlightBonus, shiny bool, ev *model.Evolution, megas []model.MegaEvolution, hasMegaInLine bool, eventDate string) (string, error) {
	details := bonus.Details
	if bonus.BaseStardust != nil {
		details = StardustDetails(*bonus.BaseStardust)
	}

	return r.Render("spotlight_hour", map[string]string{
		"pokemon_name":      p.Name,
		"pokemon_id":        paddedID(p.ID),
		"tuesday_date":      eventDate,
		"type_info":         TypeInfo(p.Types),
		"bonus_description": bonus.Description,
		"bonus_details":     details,
		"shiny_text":        shinyText(shiny, eventSpotlight),
		"mega_info":         spotlightMegaInfo(p, ev, megas, hasMegaInLine),
		"cp_level_20":       r.number(p.CPLevel20),
		"cp_level_25":       r.number(p.CPLevel25),
		"cp_level_30":       r.number(p.CPLevel30),
		"cp_level_40":       r.number(p.CPLevel40),
		"base_attack":       strconv.Itoa(p.BaseAttack),
		"base_defense":      strconv.Itoa(p.BaseDefense),
		"base_stamina":      strconv.Itoa(p.BaseStamina),
	})
}

// LegendaryHour renders the raid hour announcement for a single Pokémon.
func (r *Renderer) LegendaryHour(p *model.Pokemon, shiny bool, eventDate string) (string, error) {
	return r.Render("legendary_hour", map[string]string{
		"pokemon_name":    p.Name,
		"event_date":      eventDate,
		"type_info":       TypeInfo(p.Types),
		"type_verb":       "es",
		"cp_level_20":     r.number(p.CPLevel20),
		"cp_level_25":     r.number(p.CPLevel25),
		"weather_emojis":  model.WeatherEmojisForTypes(p.Types),
		"shiny_text":      shinyText(shiny, eventLegendary),
		"pokemon_details": "",
		"shiny_newline":   "",
	})
}

// MultipleLegendaryHour renders the raid hour announcement when several
// bosses rotate during the hour.
func (r *Renderer) MultipleLegendaryHour(entries []LegendaryEntry, eventDate string) (string, error) {
	names := make([]string, len(entries))
	var details []string
	var shinyYes, shinyNo []string

	for i, e := range entries {
		names[i] = e.Pokemon.Name
		details = append(details, "❖ "+e.Pokemon.Name+" ("+TypeInfo(e.Pokemon.Types)+") - CP: "+
			r.number(e.Pokemon.CPLevel20)+", "+r.number(e.Pokemon.CPLevel25)+
			" con clima "+model.WeatherEmojisForTypes(e.Pokemon.Types)+".")
		if e.Shiny {
			shinyYes = append(shinyYes, e.Pokemon.Name)
		} else {
			shinyNo = append(shinyNo, e.Pokemon.Name)
		}
	}

	joined := ""
	for i, d := range details {
		if i > 0 {
			joined += "\n"
		}
		joined += d
	}

	return r.Render("legendary_hour", map[string]string{
		"pokemon_name":    FormatList(names),
		"event_date":      eventDate,
		"type_info":       "múltiples tipos",
		"type_verb":       "son",
		"cp_level_20":     "variado",
		"cp_level_25":     "variado",
		"weather_emojis":  "🌤️",
		"shiny_text":      multipleShinyText(shinyYes, shinyNo),
		"pokemon_details": joined,
		"shiny_newline":   "\n",
	})
}

// MaxBattleDay renders the weekend Max battle announcement. maxType is
// "Dynamax" or "Gigantamax".
func (r *Renderer) MaxBattleDay(p *model.Pokemon, maxType string, shiny bool, eventDate string) (string, error) {
	return r.Render("max_battle_day", map[string]string{
		"pokemon_name": p.Name,
		"event_date":   eventDate,
		"max_type":     maxType,
		"type_info":    TypeInfo(p.Types),
		"cp_level_20":  r.number(p.CPLevel20),
		"shiny_text":   shinyText(shiny, eventMaxBattle),
	})
}

// RaidDay renders the weekend raid day announcement.
func (r *Renderer) RaidDay(p *model.Pokemon, shiny bool, eventDate string) (string, error) {
	return r.Render("raid_day", map[string]string{
		"pokemon_name":   p.Name,
		"event_date":     eventDate,
		"type_info":      TypeInfo(p.Types),
		"cp_level_20":    r.number(p.CPLevel20),
		"cp_level_25":    r.number(p.CPLevel25),
		"weather_emojis": model.WeatherEmojisForTypes(p.Types),
		"shiny_text":     shinyText(shiny, eventLegendary),
	})
}

// PokemonSummary renders the compact lookup card shown by the db commands.
func (r *Renderer) PokemonSummary(p *model.Pokemon, ev *model.Evolution, megas []model.MegaEvolution, hasMegaInLine bool) (string, error) {
	return r.Render("pokemon_summary", map[string]string{
		"pokemon_name":   p.Name,
		"pokemon_id":     numberSign(p.ID),
		"type_info":      TypeInfo(p.Types),
		"base_attack":    strconv.Itoa(p.BaseAttack),
		"base_defense":   strconv.Itoa(p.BaseDefense),
		"base_stamina":   strconv.Itoa(p.BaseStamina),
		"cp_level_20":    r.number(p.CPLevel20),
		"cp_level_25":    r.number(p.CPLevel25),
		"cp_level_30":    r.number(p.CPLevel30),
		"cp_level_40":    r.number(p.CPLevel40),
		"evolution_info": evolutionInfo(ev, megas, hasMegaInLine),
		"mega_details":   r.megaDetails(megas),
	})
}

// numberSign formats a dex number as "#004".
func numberSign(id int) string {
	return "#" + paddedID(id)
}

// paddedID formats a dex number as "004".
func paddedID(id int) string {
	s := strconv.Itoa(id)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}
