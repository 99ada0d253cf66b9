package config

import (
	"fmt"
	"strconv"

	"github.com/caarlos0/env/v11"
)

// envOverrides lists every environment variable that can override the file.
// Empty values leave the file setting untouched.
type envOverrides struct {
	Theme    string `env:"KINECALC_THEME"`
	Target   string `env:"KINECALC_TARGET"`
	LogLevel string `env:"KINECALC_LOG_LEVEL"`
	LogDir   string `env:"KINECALC_LOG_DIR"`
	Debug    string `env:"KINECALC_DEBUG"`
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	var o envOverrides
	if err := env.Parse(&o); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	if o.Theme != "" {
		c.Theme = o.Theme
	}
	if o.Target != "" {
		c.DefaultTarget = o.Target
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.LogDir != "" {
		c.Logging.Dir = o.LogDir
	}
	if o.Debug != "" {
		debug, err := strconv.ParseBool(o.Debug)
		if err != nil {
			return fmt.Errorf("%w: KINECALC_DEBUG=%q is not a boolean", ErrInvalid, o.Debug)
		}
		c.Logging.DebugMode = debug
	}
	return nil
}
