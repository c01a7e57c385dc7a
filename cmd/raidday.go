package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/dates"
)

var raidDayCmd = &cobra.Command{
	Use:   "raidday",
	Short: "Generate the Raid Day announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runRaidDay(cmd)
	},
}

func init() {
	rootCmd.AddCommand(raidDayCmd)
}

func (a *app) runRaidDay(cmd *cobra.Command) error {
	ctx := cmd.Context()

	p, err := a.resolvePokemon(ctx, "\n🔍 Enter Pokémon name for Raid Day: ")
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

	shiny, err := promptShiny(p)
	if err != nil {
		return err
	}

	text, err := a.renderer.RaidDay(p, shiny, eventDate)
	if err != nil {
		return err
	}
	deliver(text)
	return nil
}
