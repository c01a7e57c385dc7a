package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/dates"
)

var maxBattleCmd = &cobra.Command{
	Use:   "maxbattle",
	Short: "Generate the Max Battle Day announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runMaxBattle(cmd)
	},
}

func init() {
	rootCmd.AddCommand(maxBattleCmd)
}

func (a *app) runMaxBattle(cmd *cobra.Command) error {
	ctx := cmd.Context()

	p, err := a.resolvePokemon(ctx, "\n🔍 Enter Pokémon name for Max Battle Day: ")
	if err != nil {
		return err
	}

	day, err := promptInt("📅 Event day (1=sábado, 2=domingo): ", 1, 2)
	if err != nil {
		return err
	}
	eventDate, err := dates.WeekendEvent(day, time.Now())
	if err != nil {
		return err
	}

	form, err := promptInt("💠 Max form (1=Dynamax, 2=Gigantamax): ", 1, 2)
	if err != nil {
		return err
	}
	maxType := "Dynamax"
	if form == 2 {
		maxType = "Gigantamax"
	}

	shiny, err := promptShiny(p)
	if err != nil {
		return err
	}

	text, err := a.renderer.MaxBattleDay(p, maxType, shiny, eventDate)
	if err != nil {
		return err
	}
	deliver(text)
	return nil
}
