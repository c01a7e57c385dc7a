package texto

import (
	"fmt"
	"strings"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
)

// eventKind selects the shiny wording for an event family.
type eventKind string

const (
	eventDynamax   eventKind = "dynamax"
	eventSpotlight eventKind = "spotlight"
	eventLegendary eventKind = "legendary"
	eventMaxBattle eventKind = "max_battle"
)

// TypeInfo renders a type list as "Fuego 🔥 / Volador 🪽".
func TypeInfo(types []model.Type) string {
	if len(types) == 0 {
		return "Tipo desconocido"
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = fmt.Sprintf("%s %s", t.SpanishName(), t.Emoji())
	}
	return strings.Join(parts, " / ")
}

// FormatList joins names with Spanish list grammar: "A", "A y B",
// "A, B y C".
func FormatList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " y " + names[1]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " y " + names[len(names)-1]
	}
}

// StardustDetails describes the spotlight stardust bonus: catches grant
// double the base amount, half again with a star piece active.
func StardustDetails(baseStardust int) string {
	doubled := baseStardust * 2
	withStarPiece := int(float64(doubled) * 1.5)
	return fmt.Sprintf("Polvos estelares: cada captura otorgará %d, %d con estrella. ⭐️", doubled, withStarPiece)
}

func shinyText(available bool, kind eventKind) string {
	if !available {
		return "La forma shiny no estará disponible. 🚫✨"
	}
	switch kind {
	case eventDynamax:
		return "La forma shiny estará disponible, pero tengan en cuenta que la probabilidad base (1/512) no se incrementa en batallas Max. ✨"
	case eventSpotlight:
		return "La forma shiny estará disponible, pero tengan en cuenta que la probabilidad base (1/512) no se incrementa durante la hora. ✨"
	case eventMaxBattle:
		return "La forma shiny estará potenciada (alrededor de 1/20). ✨"
	case eventLegendary:
		return "La forma shiny estará disponible (alrededor de 1/20). ✨"
	}
	return "La forma shiny estará disponible. ✨"
}

// multipleShinyText summarizes shiny availability across several Pokémon.
func multipleShinyText(available, unavailable []string) string {
	total := len(available) + len(unavailable)
	switch {
	case total == 1:
		return shinyText(len(available) == 1, eventLegendary)
	case len(available) == total:
		return "La forma shiny estará disponible para todos (alrededor de 1/20). ✨"
	case len(available) == 0:
		return "La forma shiny no estará disponible para ninguno. 🚫✨"
	default:
		return fmt.Sprintf(
			"La forma shiny estará disponible para %s (alrededor de 1/20), pero no para %s. ✨",
			FormatList(available), FormatList(unavailable))
	}
}

// evolutionInfo builds the combined evolution and mega line for the dynamax
// and summary texts.
func evolutionInfo(ev *model.Evolution, megas []model.MegaEvolution, hasMegaInLine bool) string {
	var parts []string

	if len(megas) > 0 {
		names := make([]string, len(megas))
		for i, m := range megas {
			names[i] = m.MegaName
		}
		if len(names) == 1 {
			parts = append(parts, "🌟 Puede megaevolucionar a "+names[0])
		} else {
			parts = append(parts, "🌟 Puede megaevolucionar a: "+strings.Join(names, ", "))
		}
	}

	if ev != nil && len(ev.Evolutions) > 0 {
		targets := make([]string, 0, len(ev.Evolutions))
		for _, req := range ev.Evolutions {
			text := req.PokemonName
			if req.CandyRequired > 0 {
				text += fmt.Sprintf(" (%d caramelos)", req.CandyRequired)
			}
			if req.ItemRequired != nil {
				text += " + " + *req.ItemRequired
			}
			targets = append(targets, text)
		}
		if len(targets) == 1 {
			parts = append(parts, "🔄 Evoluciona a "+targets[0])
		} else {
			parts = append(parts, "🔄 Puede evolucionar a: "+strings.Join(targets, ", "))
		}
	}

	if hasMegaInLine && len(megas) == 0 {
		parts = append(parts, "⭐ Su línea evolutiva incluye megaevoluciones")
	}

	if len(parts) == 0 {
		return "No evoluciona"
	}
	return strings.Join(parts, " | ")
}

// megaDetails lists each mega form with types, stats and energy costs.
func (r *Renderer) megaDetails(megas []model.MegaEvolution) string {
	if len(megas) == 0 {
		return "No tiene megaevolución disponible"
	}

	details := make([]string, len(megas))
	for i, m := range megas {
		typeNames := make([]string, len(m.Types))
		for j, t := range m.Types {
			typeNames[j] = r.titler.String(string(t))
		}
		details[i] = fmt.Sprintf(
			"%s: %s (ATK %d, DEF %d, STA %d) - Energía: %d primera vez, %d después",
			m.MegaName, strings.Join(typeNames, " / "),
			m.BaseAttack, m.BaseDefense, m.BaseStamina,
			m.FirstEnergy, m.Energy)
	}
	return strings.Join(details, " | ")
}

// spotlightMegaInfo points out who in the line can mega evolve, trailing
// newline included so the template collapses cleanly when there is nothing
// to say.
func spotlightMegaInfo(p *model.Pokemon, ev *model.Evolution, megas []model.MegaEvolution, hasMegaInLine bool) string {
	if len(megas) > 0 {
		return fmt.Sprintf("❖ %s tiene mega-evolución disponible. 💎\n", p.Name)
	}
	if hasMegaInLine && ev != nil && len(ev.Evolutions) > 0 {
		return fmt.Sprintf("❖ %s tiene mega-evolución disponible. 💎\n", ev.Evolutions[0].PokemonName)
	}
	return ""
}
