// Package config loads and saves the expenses configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// EnvDataFile overrides the configured data file when set.
const EnvDataFile = "EXPENSES_FILE"

// DefaultDataFile is used when nothing else names a data file. It is
// relative to the working directory.
const DefaultDataFile = "expenses.csv"

// Config holds all expenses configuration.
type Config struct {
	General    GeneralConfig    `toml:"general"`
	Appearance AppearanceConfig `toml:"appearance"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DataFile string `toml:"data_file,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// Source names where a resolved value came from.
type Source string

const (
	SourceFlag    Source = "flag"
	SourceEnv     Source = "env"
	SourceFile    Source = "config file"
	SourceDefault Source = "default"
)

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "expenses")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "expenses")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// Load reads the config file at path, returning defaults if it doesn't exist.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
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

// Save writes the config to path, creating its directory.
func Save(path string, cfg Config) (err error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing config file: %w", cerr)
		}
	}()

	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Exists returns true if a config file exists at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadEnvFile loads a .env file from the working directory if present.
// Variables already set in the environment win.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// DataFile resolves the expense file path. Precedence: flag, then the
// EXPENSES_FILE environment variable, then the config file, then
// DefaultDataFile.
func DataFile(flagValue string, cfg Config) (string, Source) {
	if flagValue != "" {
		return flagValue, SourceFlag
	}
	if v := os.Getenv(EnvDataFile); v != "" {
		return v, SourceEnv
	}
	if cfg.General.DataFile != "" {
		return cfg.General.DataFile, SourceFile
	}
	return DefaultDataFile, SourceDefault
}
