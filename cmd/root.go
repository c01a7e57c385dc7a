package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/config"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/pogoapi"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/service"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/store"
	"github.com/ddelcastillo/team-virrey-meetup-text-cli/internal/texto"
)

var (
	configPath string
	dbPath     string
	noClip     bool
)

var rootCmd = &cobra.Command{
	Use:   "meetup-text",
	Short: "Spanish announcement text generator for Team Virrey meetup events",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp()
		if err != nil {
			return err
		}
		defer app.Close()
		return app.runMenu(cmd)
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config.toml")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the cache database")
	rootCmd.PersistentFlags().BoolVar(&noClip, "no-clipboard", false, "Do not copy generated text to the clipboard")
}

// app bundles everything a command needs: the coordinating service, the
// renderer, and the handles it must close on exit.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	store    *store.Store
	session  *pogoapi.Session
	service  *service.Service
	renderer *texto.Renderer
}

func newApp() (*app, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.DB.Path = dbPath
	}

	log := newLogger(cfg.Log)

	st, err := store.Open(cfg.DB.Path)
	if err != nil {
		return nil, err
	}

	session, err := pogoapi.NewSession(pogoapi.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: time.Duration(cfg.API.TimeoutSeconds) * time.Second,
		Logger:  log,
	})
	if err != nil {
		st.Close()
		return nil, err
	}

	return &app{
		cfg:      cfg,
		log:      log,
		store:    st,
		session:  session,
		service:  service.New(st, session, consolePrompter{}, log),
		renderer: texto.NewRenderer(cfg.Templates.Dir),
	}, nil
}

func (a *app) Close() {
	a.session.Close()
	if err := a.store.Close(); err != nil {
		a.log.Warn("closing database", "error", err)
	}
}

func newLogger(cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.Level}
	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	return slog.New(handler)
}

// runMenu is the interactive event picker shown when no subcommand is given.
func (a *app) runMenu(cmd *cobra.Command) error {
	fmt.Println("🎮 Pokémon Meetup Event Text Generator")
	fmt.Println(strings.Repeat("=", 50))

	for {
		fmt.Println("\n📅 Available Events:")
		fmt.Println("  1. Dynamax Monday (6-7 PM)")
		fmt.Println("  2. Spotlight Hour Tuesday (6-7 PM)")
		fmt.Println("  3. Legendary Hour (6-7 PM)")
		fmt.Println("  4. Max Battle Day (Saturday/Sunday 2-5 PM)")
		fmt.Println("  5. Raid Day (Saturday/Sunday 2-5 PM)")
		fmt.Println("  6. Exit")

		choice, err := promptInt("\n🎯 Select an event (1-6): ", 1, 6)
		if err != nil {
			return err
		}

		var runErr error
		switch choice {
		case 1:
			runErr = a.runDynamax(cmd)
		case 2:
			runErr = a.runSpotlight(cmd)
		case 3:
			runErr = a.runLegendary(cmd)
		case 4:
			runErr = a.runMaxBattle(cmd)
		case 5:
			runErr = a.runRaidDay(cmd)
		case 6:
			fmt.Println("👋 Goodbye!")
			return nil
		}
		if runErr != nil {
			fmt.Fprintf(os.Stderr, "❌ %v\n", runErr)
		}

		again, err := promptYesNo("\n🔄 Generate text for another event? (y/n): ")
		if err != nil {
			return err
		}
		if !again {
			fmt.Println("👋 Goodbye!")
			return nil
		}
	}
}
