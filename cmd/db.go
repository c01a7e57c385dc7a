package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/service"
)

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Inspect and maintain the local Pokémon cache",
}

var dbStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show cache statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		stats, err := app.store.Stats()
		if err != nil {
			return err
		}
		fmt.Printf("Database: %s\n", stats.Path)
		fmt.Printf("Cached Pokémon: %d\n", stats.TotalPokemon)
		fmt.Printf("Size: %.1f KB\n", float64(stats.SizeBytes)/1024)
		if stats.LastUpdatedAt > 0 {
			fmt.Printf("Last updated: %s\n", time.UnixMilli(stats.LastUpdatedAt).Format("2006-01-02 15:04:05"))
		}
		return nil
	},
}

var dbListLimit int

var dbListCmd = &cobra.Command{
	Use:   "list",
	Short: "List cached Pokémon",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		pokemon, err := app.store.AllPokemon(dbListLimit)
		if err != nil {
			return err
		}
		if len(pokemon) == 0 {
			fmt.Println("The cache is empty.")
			return nil
		}
		for _, p := range pokemon {
			shiny := " "
			if p.ShinyAvail {
				shiny = "✨"
			}
			fmt.Printf("#%03d %-15s %s CP max %d\n", p.ID, p.Name, shiny, p.MaxCP)
		}
		return nil
	},
}

var dbShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show the full cached record of a Pokémon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		profile, err := app.service.GetFullProfile(cmd.Context(), args[0], false, false)
		if err != nil {
			return err
		}
		if profile == nil {
			fmt.Printf("No Pokémon named %q found.\n", args[0])
			app.suggest(cmd.Context(), args[0])
			return nil
		}

		text, err := app.renderer.PokemonSummary(
			profile.Pokemon, profile.Evolutions, profile.MegaForms, profile.HasMegaInLine)
		if err != nil {
			return err
		}
		fmt.Println(text)
		fmt.Printf("[source: %s]\n", profile.Source)
		return nil
	},
}

var (
	updateShiny    bool
	updateStardust int
)

var dbUpdateCmd = &cobra.Command{
	Use:   "update <name>",
	Short: "Patch the shiny flag or base stardust of a cached Pokémon",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		p, err := app.store.GetByName(args[0])
		if err != nil {
			return err
		}
		if p == nil {
			return fmt.Errorf("%q is not cached, fetch it first", args[0])
		}

		var shiny *bool
		var stardust *int
		if cmd.Flags().Changed("shiny") {
			shiny = &updateShiny
		}
		if cmd.Flags().Changed("stardust") {
			stardust = &updateStardust
		}

		changed, err := app.service.UpdateFields(p, shiny, stardust)
		if err != nil {
			return err
		}
		if !changed {
			fmt.Println("Nothing to update, pass --shiny or --stardust.")
			return nil
		}
		fmt.Printf("Updated %s.\n", p.Name)
		return nil
	},
}

var dbRefreshCmd = &cobra.Command{
	Use:   "refresh <name>",
	Short: "Re-fetch a Pokémon from the stats API, replacing the cached record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()

		p, source, err := app.service.GetPokemon(cmd.Context(), args[0], true, false)
		if err != nil {
			return err
		}
		if p == nil {
			fmt.Printf("No Pokémon named %q found upstream.\n", args[0])
			return nil
		}
		if source != service.SourceFresh {
			fmt.Printf("Upstream unavailable, %s kept from cache.\n", p.Name)
			return nil
		}
		fmt.Printf("Refreshed %s (#%03d).\n", p.Name, p.ID)
		return nil
	},
}

func init() {
	dbListCmd.Flags().IntVar(&dbListLimit, "limit", 0, "Maximum number of rows (0 = all)")
	dbUpdateCmd.Flags().BoolVar(&updateShiny, "shiny", false, "Shiny availability")
	dbUpdateCmd.Flags().IntVar(&updateStardust, "stardust", 0, "Base stardust per catch")

	dbCmd.AddCommand(dbStatsCmd, dbListCmd, dbShowCmd, dbUpdateCmd, dbRefreshCmd)
	rootCmd.AddCommand(dbCmd)
}
