// Package config loads the TOML configuration file and supplies defaults
// when it is absent.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

const EnvDBPath = "MEETUP_DB_PATH"

type Config struct {
	DB        DBConfig        `toml:"db"`
	API       APIConfig       `toml:"api"`
	Log       LogConfig       `toml:"log"`
	Templates TemplatesConfig `toml:"templates"`
}

type DBConfig struct {
	Path string `toml:"path"`
}

type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

type LogConfig struct {
	Level  slog.Level `toml:"level"`
	Format string     `toml:"format"`
}

type TemplatesConfig struct {
	// Dir overrides the embedded templates when set.
	Dir string `toml:"dir"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		DB:  DBConfig{Path: defaultDBPath()},
		API: APIConfig{BaseURL: "https://pogoapi.net/api/v1", TimeoutSeconds: 30},
		Log: LogConfig{Level: slog.LevelInfo, Format: "text"},
	}
}

// Load reads the TOML file at path, falling back to defaults when the file
// does not exist. The MEETUP_DB_PATH environment variable overrides the
// database path either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	file, err := os.Open(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("opening config: %w", err)
		}
	} else {
		defer file.Close()
		if err := toml.NewDecoder(file).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if env := os.Getenv(EnvDBPath); env != "" {
		cfg.DB.Path = env
	}
	return cfg, nil
}

// DefaultPath is the config file location used when no flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(dir, "meetup-text", "config.toml")
}

func defaultDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "pokemon_cache.db"
	}
	return filepath.Join(dir, "meetup-text", "pokemon_cache.db")
}
