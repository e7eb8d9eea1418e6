// Package config provides configuration management for the pricing
// application.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/viper"

	apperrors "github.com/alexisdpc/Heston-model/internal/errors"
	"github.com/alexisdpc/Heston-model/internal/heston"
)

// Config holds all application configuration.
type Config struct {
	Model      ModelConfig      `mapstructure:"model"`
	Grid       GridConfig       `mapstructure:"grid"`
	Simulation SimulationConfig `mapstructure:"simulation"`
	Store      StoreConfig      `mapstructure:"store"`
	UI         UIConfig         `mapstructure:"ui"`
}

// ModelConfig holds the default Heston model parameters.
type ModelConfig struct {
	Alpha float64 `mapstructure:"alpha"`
	B     float64 `mapstructure:"b"`
	Sigma float64 `mapstructure:"sigma"`
	Rho   float64 `mapstructure:"rho"`
	Mu    float64 `mapstructure:"mu"`
	V0    float64 `mapstructure:"v0"`
	S0    float64 `mapstructure:"s0"`
}

// GridConfig holds the default time grid.
type GridConfig struct {
	Start float64 `mapstructure:"start"`
	End   float64 `mapstructure:"end"`
	Steps int     `mapstructure:"steps"`
}

// SimulationConfig holds simulation defaults.
type SimulationConfig struct {
	Paths int    `mapstructure:"paths"`
	Seed  uint64 `mapstructure:"seed"`
}

// StoreConfig holds run-store configuration.
type StoreConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
	Precision    int  `mapstructure:"precision"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/heston"
	}
	return filepath.Join(home, ".config", "heston")
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	cfg := &Config{}
	if err := loadConfigFile(configDir, cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

func loadConfigFile(configDir string, target *Config) error {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if err := createTemplateConfig(configDir); err != nil {
				return err
			}
			return v.Unmarshal(target)
		}
		return err
	}

	return v.Unmarshal(target)
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("model.alpha", 2.0)
	v.SetDefault("model.b", 0.01)
	v.SetDefault("model.sigma", 0.1)
	v.SetDefault("model.rho", 0.0)
	v.SetDefault("model.mu", 0.0)
	v.SetDefault("model.v0", 0.01)
	v.SetDefault("model.s0", 105.0)

	v.SetDefault("grid.start", 0.0)
	v.SetDefault("grid.end", 1.0)
	v.SetDefault("grid.steps", 1000)

	v.SetDefault("simulation.paths", 30000)
	v.SetDefault("simulation.seed", 1234)

	v.SetDefault("store.enabled", true)
	v.SetDefault("store.path", filepath.Join(configDir, "heston.db"))

	v.SetDefault("ui.color_enabled", true)
	v.SetDefault("ui.precision", 4)
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HESTON_PATHS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Simulation.Paths = n
		}
	}
	if v := os.Getenv("HESTON_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Simulation.Seed = n
		}
	}
	if v := os.Getenv("HESTON_DB_PATH"); v != "" {
		cfg.Store.Path = v
	}
}

// Params converts the model section to engine parameters.
func (c *Config) Params() heston.Params {
	return heston.Params{
		Alpha: c.Model.Alpha,
		B:     c.Model.B,
		Sigma: c.Model.Sigma,
		Rho:   c.Model.Rho,
		Mu:    c.Model.Mu,
		V0:    c.Model.V0,
		S0:    c.Model.S0,
	}
}

// TimeGrid converts the grid section to an engine time grid.
func (c *Config) TimeGrid() (heston.TimeGrid, error) {
	return heston.NewTimeGrid(c.Grid.Start, c.Grid.End, c.Grid.Steps)
}

// Validate validates the configuration. Model and grid checks are
// delegated to the engine so the CLI and the core agree on what is
// admissible.
func (c *Config) Validate() error {
	if err := c.Params().Validate(); err != nil {
		return err
	}
	if _, err := c.TimeGrid(); err != nil {
		return err
	}
	if c.Simulation.Paths <= 0 {
		return fmt.Errorf("%w: simulation.paths must be positive, got %d", apperrors.ErrConfigInvalid, c.Simulation.Paths)
	}
	if c.UI.Precision < 0 || c.UI.Precision > 12 {
		return fmt.Errorf("%w: ui.precision must be between 0 and 12", apperrors.ErrConfigInvalid)
	}
	return nil
}
