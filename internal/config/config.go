package config

import (
	"errors"
	"fmt"
	"indigo/internal/util"
	"indigo/pkg/indigo"
	"io"
	"io/fs"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// Config provides configuration for Indigo
type Config struct {
	loaded bool
	Log    Log  `yaml:"log"`
	Game   Game `yaml:"game"`
	// Color is one of auto, always, or never. auto styles output only on a terminal
	Color string `yaml:"color" envconfig:"color"`
}

// Log configures logrus
type Log struct {
	Level  string `yaml:"level" envconfig:"level"`
	Format string `yaml:"format" envconfig:"format"`
}

// Game configures new games
type Game struct {
	PlayerName   string `yaml:"playerName" envconfig:"player_name"`
	ComputerName string `yaml:"computerName" envconfig:"computer_name"`
	Opponent     string `yaml:"opponent" envconfig:"opponent"`
	// Seed makes shuffles and computer choices repeatable. 0 means random
	Seed int64 `yaml:"seed" envconfig:"seed"`
}

// color modes
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	opts := indigo.DefaultOptions()

	return Config{
		Log: Log{
			Level:  "warn",
			Format: "text",
		},
		Game: Game{
			PlayerName:   opts.PlayerName,
			ComputerName: opts.ComputerName,
			Opponent:     string(opts.Opponent),
		},
		Color: ColorAuto,
	}
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// The YAML file is optional. Environment variables prefixed with INDIGO_ take precedence over it
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("INDIGO_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err == nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := envconfig.Process("indigo", &cfg); err != nil {
		return err
	}

	switch cfg.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q, expected %s, %s, or %s", cfg.Color, ColorAuto, ColorAlways, ColorNever)
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// GameOptions returns the options for a new game
func (c Config) GameOptions() indigo.Options {
	return indigo.Options{
		PlayerName:   c.Game.PlayerName,
		ComputerName: c.Game.ComputerName,
		Opponent:     indigo.Opponent(c.Game.Opponent),
	}
}
