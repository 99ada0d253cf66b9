package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"kinecalc/internal/kinematics"
	"kinecalc/internal/units"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all kinecalc configuration.
type Config struct {
	// Theme selects the terminal palette: auto, light or dark.
	Theme string `yaml:"theme"`

	// DefaultTarget is the variable selected when the calculator opens.
	DefaultTarget string `yaml:"default_target"`

	// Units maps a variable key (or symbol) to its preselected unit.
	Units map[string]string `yaml:"units"`

	// Batch settings
	Batch BatchConfig `yaml:"batch"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// BatchConfig configures `kinecalc batch`.
type BatchConfig struct {
	// Concurrency caps parallel solves; 0 means one per CPU.
	Concurrency int `yaml:"concurrency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	unitDefaults := make(map[string]string, 5)
	for _, v := range kinematics.Variables() {
		unitDefaults[v.String()] = units.DefaultUnit(v.Category())
	}

	return &Config{
		Theme:         "auto",
		DefaultTarget: kinematics.Displacement.String(),
		Units:         unitDefaults,
		Batch: BatchConfig{
			Concurrency: 0,
		},
		Logging: LoggingConfig{
			Level:     "info",
			DebugMode: false,
			Dir:       "",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/kinecalc/config.yaml, falling back to
// ~/.kinecalc/config.yaml.
func DefaultPath() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "kinecalc", "config.yaml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".kinecalc", "config.yaml"), nil
}

// Load loads configuration from a YAML file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	case os.IsNotExist(err):
		// Defaults if config file doesn't exist
	default:
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if cfg.Logging.Dir == "" {
		cfg.Logging.Dir = filepath.Join(filepath.Dir(path), "logs")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Validate checks theme, target and unit selections.
func (c *Config) Validate() error {
	switch c.Theme {
	case "", "auto", "light", "dark":
	default:
		return fmt.Errorf("%w: theme %q (want auto, light or dark)", ErrInvalid, c.Theme)
	}

	if c.DefaultTarget != "" {
		if _, err := kinematics.ParseVariable(c.DefaultTarget); err != nil {
			return fmt.Errorf("%w: default_target: %v", ErrInvalid, err)
		}
	}

	for key, unit := range c.Units {
		v, err := kinematics.ParseVariable(key)
		if err != nil {
			return fmt.Errorf("%w: units: %v", ErrInvalid, err)
		}
		if _, err := units.Lookup(unit, v.Category()); err != nil {
			return fmt.Errorf("%w: units.%s: %v", ErrInvalid, key, err)
		}
	}

	if c.Batch.Concurrency < 0 {
		return fmt.Errorf("%w: batch.concurrency must not be negative", ErrInvalid)
	}
	return nil
}

// Target returns the configured default target, Displacement if unset.
func (c *Config) Target() kinematics.Variable {
	v, err := kinematics.ParseVariable(c.DefaultTarget)
	if err != nil {
		return kinematics.Displacement
	}
	return v
}

// UnitFor returns the preselected unit for v, falling back to the category
// default. The canonical key wins over a symbol or alias key.
func (c *Config) UnitFor(v kinematics.Variable) string {
	keys := make([]string, 0, len(c.Units))
	for key := range c.Units {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	keys = append([]string{v.String(), v.Symbol()}, keys...)

	for _, key := range keys {
		unit, ok := c.Units[key]
		if !ok {
			continue
		}
		if parsed, err := kinematics.ParseVariable(key); err != nil || parsed != v {
			continue
		}
		if _, err := units.Lookup(unit, v.Category()); err == nil {
			return units.Normalize(unit)
		}
	}
	return units.DefaultUnit(v.Category())
}
