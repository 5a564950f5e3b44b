// Package config loads igstats settings from a TOML file and the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// EnvTimezoneOffset overrides the timestamp hour offset.
const EnvTimezoneOffset = "IG_TIMEZONE_OFFSET"

// DefaultTimezoneOffsetHours is used when neither the environment nor the config file
// sets a valid offset.
const DefaultTimezoneOffsetHours = 8

// Config holds all igstats configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds paths and parsing preferences.
type GeneralConfig struct {
	MessageDir          string `toml:"message_dir"`
	StatsDir            string `toml:"stats_dir"`
	VideoDir            string `toml:"video_dir"`
	CacheDir            string `toml:"cache_dir"`
	CacheBackend        string `toml:"cache_backend"`
	TimezoneOffsetHours *int   `toml:"timezone_offset_hours,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			MessageDir:   "./messageFiles",
			StatsDir:     "./stats",
			VideoDir:     "./isolatedVideoLogs",
			CacheDir:     "./cache",
			CacheBackend: "json",
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "igstats")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "igstats")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config file at path over the defaults.
func LoadFrom(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // user-controlled config location
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	return SaveTo(Path(), cfg)
}

// SaveTo writes the config to path, creating its directory.
func SaveTo(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// Sources reported by ResolveTimezoneOffset.
const (
	OffsetFromEnv     = "env"
	OffsetFromConfig  = "config"
	OffsetFromDefault = "default"
)

// TimezoneOffsetHours returns the hour offset from IG_TIMEZONE_OFFSET, then the config
// file, in that order. An unset or non-integer env value falls through to the file value,
// and the default is 8.
func TimezoneOffsetHours(cfg Config) int {
	hours, _ := ResolveTimezoneOffset(cfg)
	return hours
}

// ResolveTimezoneOffset is TimezoneOffsetHours plus where the value came from.
func ResolveTimezoneOffset(cfg Config) (int, string) {
	if raw, ok := os.LookupEnv(EnvTimezoneOffset); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
			return n, OffsetFromEnv
		}
	}
	if cfg.General.TimezoneOffsetHours != nil {
		return *cfg.General.TimezoneOffsetHours, OffsetFromConfig
	}
	return DefaultTimezoneOffsetHours, OffsetFromDefault
}
