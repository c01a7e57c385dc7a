package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/dates"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/model"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/texto"
)

// The rotating spotlight hour bonuses. Stardust is special-cased: its
// details depend on the Pokémon's base stardust yield.
var spotlightBonuses = []texto.SpotlightBonus{
	{
		Description: "✨X2 caramelos por captura ✨",
		Details:     "Obtendrán el doble de caramelos por cada captura durante la hora destacada.",
	},
	{
		Description: "✨X2 XP por evolución ✨",
		Details: "XP por evolución: 1000 XP por evolución normal, 2000 XP por nueva " +
			"entrada en su Pokédex (4000 XP y 6000 XP, respectivamente, con huevo " +
			"suerte activo 🥚).",
	},
	{
		Description: "✨X2 XP por captura ✨",
		Details: "XP por captura: hasta 2340 XP por captura (4680 XP con huevo suerte " +
			"🥚, por cada captura con tiro excelente, bola curva, y primera bola.",
	},
	{
		Description: "✨X2 polvo estelar por captura ✨",
		Details:     "Obtendrán el doble de polvo estelar por cada captura durante la hora destacada.",
	},
	{
		Description: "✨X2 caramelos por transferencia ✨",
		Details:     "Obtendrán el doble de caramelos al transferir Pokémon durante la hora destacada.",
	},
}

const stardustBonusIndex = 3

var spotlightCmd = &cobra.Command{
	Use:   "spotlight",
	Short: "Generate the Spotlight Hour announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runSpotlight(cmd)
	},
}

func init() {
	rootCmd.AddCommand(spotlightCmd)
}

func (a *app) runSpotlight(cmd *cobra.Command) error {
	ctx := cmd.Context()

	p, err := a.resolvePokemon(ctx, "\n🔍 Enter Pokémon name for Spotlight Hour: ")
	if err != nil {
		return err
	}

	fmt.Println("\n🎁 Spotlight bonuses:")
	for i, b := range spotlightBonuses {
		fmt.Printf("  %d. %s\n", i+1, b.Description)
	}
	choice, err := promptInt("🎯 Select the bonus (1-5): ", 1, len(spotlightBonuses))
	if err != nil {
		return err
	}
	bonus := spotlightBonuses[choice-1]

	if choice-1 == stardustBonusIndex {
		base, err := a.baseStardust(p)
		if err != nil {
			return err
		}
		bonus.BaseStardust = &base
	}

	ev, _, err := a.service.GetEvolutions(ctx, p.ID, false)
	if err != nil {
		return err
	}
	megas, _, err := a.service.GetMegaForms(ctx, p.ID, false)
	if err != nil {
		return err
	}
	hasMega, err := a.service.HasMegaInLine(ctx, p.ID, false)
	if err != nil {
		return err
	}

	shiny, err := promptShiny(p)
	if err != nil {
		return err
	}

	text, err := a.renderer.SpotlightHour(p, bonus, shiny, ev, megas, hasMega, dates.SpotlightTuesday(time.Now()))
	if err != nil {
		return err
	}
	deliver(text)
	return nil
}

// baseStardust returns the cached base stardust yield, asking for it and
// persisting the answer when the record has none.
func (a *app) baseStardust(p *model.Pokemon) (int, error) {
	if p.BaseStardust != nil {
		return *p.BaseStardust, nil
	}

	base, err := promptInt("⭐ Base stardust per catch: ", 1, 10000)
	if err != nil {
		return 0, err
	}
	if _, err := a.service.UpdateFields(p, nil, &base); err != nil {
		a.log.Warn("saving base stardust", "name", p.Name, "error", err)
	}
	return base, nil
}
