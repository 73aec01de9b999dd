// Package config loads and saves paycycle's TOML configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all paycycle configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Display    DisplayConfig    `toml:"display"`
	Categories CategoriesConfig `toml:"categories"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataDir string `toml:"data_dir,omitempty"`
}

// DisplayConfig holds output formatting settings.
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// CategoriesConfig holds the categories suggested during interactive entry.
type CategoriesConfig struct {
	Defaults []string `toml:"defaults"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			Currency: "$",
		},
		Categories: CategoriesConfig{
			Defaults: []string{"Rent", "Food", "Transport", "Utilities", "Fun", "Misc"},
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "paycycle")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "paycycle")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the directory holding the database, honoring the
// config override when set.
func DataDir(cfg Config) string {
	if cfg.General.DataDir != "" {
		return cfg.General.DataDir
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "paycycle")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "paycycle")
}

// DBPath returns the full path to the SQLite database.
func DBPath(cfg Config) string {
	return filepath.Join(DataDir(cfg), "paycycle.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
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
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
