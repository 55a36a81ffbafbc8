// Package config loads settings from defaults, an optional TOML file and
// TODO_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI  UIConfig  `mapstructure:"ui"`
	Log LogConfig `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme             string `mapstructure:"theme"`
	Color             string `mapstructure:"color"` // auto | always | never
	Mouse             bool   `mapstructure:"mouse"`
	CharLimit         int    `mapstructure:"char_limit"`
	AddPlaceholder    string `mapstructure:"add_placeholder"`
	SearchPlaceholder string `mapstructure:"search_placeholder"`
}

// LogConfig holds logging settings. An empty File discards logs.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Load reads configuration. path overrides TODO_CONFIG; both may be empty,
// in which case config.toml is looked up in the user config dir.
// Env var overrides use prefix TODO_.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.theme", "classic")
	v.SetDefault("ui.color", ColorAuto)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.char_limit", 200)
	v.SetDefault("ui.add_placeholder", "What needs doing?")
	v.SetDefault("ui.search_placeholder", "search todos")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("TODO_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "todo"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TODO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case explicit && errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the UI cannot honor.
func (c Config) Validate() error {
	switch strings.ToLower(c.UI.Color) {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("ui.color: want auto, always or never, got %q", c.UI.Color)
	}
	if c.UI.CharLimit < 0 {
		return fmt.Errorf("ui.char_limit: must not be negative, got %d", c.UI.CharLimit)
	}
	return nil
}
