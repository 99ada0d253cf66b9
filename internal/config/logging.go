package config

import "kinecalc/internal/logging"

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level      string          `yaml:"level"`      // debug, info, warn, error
	DebugMode  bool            `yaml:"debug_mode"` // Master toggle - false = no logging (production)
	Dir        string          `yaml:"dir"`        // Defaults to <config dir>/logs
	Categories map[string]bool `yaml:"categories"` // Per-category toggles
}

// Options converts the config section into logging.Initialize options.
func (c *LoggingConfig) Options() logging.Options {
	return logging.Options{
		DebugMode:  c.DebugMode,
		Level:      c.Level,
		Dir:        c.Dir,
		Categories: c.Categories,
	}
}
