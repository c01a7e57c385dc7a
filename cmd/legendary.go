package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/dates"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/texto"
)

var legendaryCmd = &cobra.Command{
	Use:   "legendary",
	Short: "Generate the Legendary Hour announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runLegendary(cmd)
	},
}

func init() {
	rootCmd.AddCommand(legendaryCmd)
}

func (a *app) runLegendary(cmd *cobra.Command) error {
	ctx := cmd.Context()

	count, err := promptInt("\n🔢 How many Pokémon rotate during the hour? (1-4): ", 1, 4)
	if err != nil {
		return err
	}

	day, err := promptIntDefault("📅 Event day (1=lunes ... 7=domingo) [3]: ", 1, 7, 3)
	if err != nil {
		return err
	}
	eventDate, err := dates.LegendaryHour(day, time.Now())
	if err != nil {
		return err
	}

	entries := make([]texto.LegendaryEntry, 0, count)
	for i := 0; i < count; i++ {
		p, err := a.resolvePokemon(ctx, fmt.Sprintf("\n🔍 Enter Pokémon name (%d/%d): ", i+1, count))
		if err != nil {
			return err
		}
		shiny, err := promptShiny(p)
		if err != nil {
			return err
		}
		entries = append(entries, texto.LegendaryEntry{Pokemon: p, Shiny: shiny})
	}

	var text string
	if len(entries) == 1 {
		text, err = a.renderer.LegendaryHour(entries[0].Pokemon, entries[0].Shiny, eventDate)
	} else {
		text, err = a.renderer.MultipleLegendaryHour(entries, eventDate)
	}
	if err != nil {
		return err
	}
	deliver(text)
	return nil
}
