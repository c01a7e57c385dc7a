package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/dates"
)

var dynamaxCmd = &cobra.Command{
	Use:   "dynamax",
	Short: "Generate the Dynamax Monday announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runDynamax(cmd)
	},
}

func init() {
	rootCmd.AddCommand(dynamaxCmd)
}

func (a *app) runDynamax(cmd *cobra.Command) error {
	ctx := cmd.Context()

	p, err := a.resolvePokemon(ctx, "\n🔍 Enter Pokémon name for Dynamax Monday: ")
	if err != nil {
		return err
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

	text, err := a.renderer.DynamaxMonday(p, shiny, ev, megas, hasMega, dates.DynamaxMonday(time.Now()))
	if err != nil {
		return err
	}
	deliver(text)
	return nil
}
