package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/Makepad-fr/tada/internal/model"
	"github.com/Makepad-fr/tada/internal/ui"
)

// Config holds application configuration.
type Config struct {
	UI   UIConfig   `mapstructure:"ui"`
	Log  LogConfig  `mapstructure:"log"`
	Seed SeedConfig `mapstructure:"seed"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title       string `mapstructure:"title"`
	Theme       string `mapstructure:"theme"`
	Color       string `mapstructure:"color"`
	Placeholder string `mapstructure:"placeholder"`
	CharLimit   int    `mapstructure:"char_limit"`
	Filter      string `mapstructure:"filter"`
}

// LogConfig holds logger settings. An empty File discards log output,
// since the screen owns the terminal.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	File   string `mapstructure:"file"`
	Format string `mapstructure:"format"`
}

// SeedConfig selects the items the screen opens with.
type SeedConfig struct {
	Path    string `mapstructure:"path"`
	Builtin bool   `mapstructure:"builtin"`
}

const envPrefix = "TADA"

// Load reads configuration from file and env. Env var overrides use prefix TADA_.
// path wins over $TADA_CONFIG, which wins over ~/.config/tada/config.toml.
// A missing default file is not an error; a missing explicit one is.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.title", "TODO List")
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.color", "auto")
	v.SetDefault("ui.placeholder", "What do you need to do?")
	v.SetDefault("ui.char_limit", 200)
	v.SetDefault("ui.filter", string(model.FilterAll))
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.format", "text")
	v.SetDefault("seed.path", "")
	v.SetDefault("seed.builtin", true)

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv(envPrefix + "_CONFIG")
	}
	explicit := path != ""
	if !explicit {
		// only config.toml; other config.* files in the dir are not ours
		path = filepath.Join(os.Getenv("HOME"), ".config", "tada", "config.toml")
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	var errs []error
	if _, err := model.ParseFilter(c.UI.Filter); err != nil {
		errs = append(errs, fmt.Errorf("ui.filter: %w", err))
	}
	if !ui.KnownTheme(c.UI.Theme) {
		errs = append(errs, fmt.Errorf("ui.theme: unknown theme %q (want %s)", c.UI.Theme, strings.Join(ui.ThemeNames(), ", ")))
	}
	switch strings.ToLower(c.UI.Color) {
	case "", "auto", "always", "never":
	default:
		errs = append(errs, fmt.Errorf("ui.color: unknown mode %q", c.UI.Color))
	}
	if c.UI.CharLimit < 0 {
		errs = append(errs, fmt.Errorf("ui.char_limit: must not be negative, got %d", c.UI.CharLimit))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json", "logfmt":
	default:
		errs = append(errs, fmt.Errorf("log.format: unknown format %q", c.Log.Format))
	}
	return errors.Join(errs...)
}
