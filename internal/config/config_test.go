package config

import (
	"os"
	"path/filepath"
	"testing"

	"kinecalc/internal/kinematics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment can't leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"KINECALC_THEME", "KINECALC_TARGET", "KINECALC_LOG_LEVEL",
		"KINECALC_LOG_DIR", "KINECALC_DEBUG",
	} {
		t.Setenv(name, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, kinematics.Displacement, cfg.Target())
	assert.Equal(t, "m", cfg.Units["displacement"])
	assert.Equal(t, "m/s", cfg.Units["initial_velocity"])
	assert.Equal(t, "m/s²", cfg.Units["acceleration"])
	assert.Equal(t, "s", cfg.Units["time"])
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.DebugMode)
	require.NoError(t, cfg.Validate())
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "auto", cfg.Theme)
	assert.Equal(t, filepath.Join(filepath.Dir(path), "logs"), cfg.Logging.Dir)
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "kinecalc", "config.yaml")

	cfg := DefaultConfig()
	cfg.Theme = "dark"
	cfg.DefaultTarget = "time"
	cfg.Units["final_velocity"] = "mph"
	cfg.Batch.Concurrency = 3
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "dark", loaded.Theme)
	assert.Equal(t, kinematics.Time, loaded.Target())
	assert.Equal(t, "mph", loaded.UnitFor(kinematics.FinalVelocity))
	assert.Equal(t, "m/s", loaded.UnitFor(kinematics.InitialVelocity))
	assert.Equal(t, 3, loaded.Batch.Concurrency)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: light\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "light", cfg.Theme)
	assert.Equal(t, "m", cfg.UnitFor(kinematics.Displacement))
	assert.Equal(t, kinematics.Displacement, cfg.Target())
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name string
		body string
	}{
		{"malformed yaml", "theme: [unterminated\n"},
		{"bad theme", "theme: neon\n"},
		{"bad target", "default_target: jerk\n"},
		{"unit from wrong category", "units:\n  time: mph\n"},
		{"unknown variable in units", "units:\n  jerk: m\n"},
		{"negative concurrency", "batch:\n  concurrency: -1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.body), 0644))

			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestValidate_WrapsErrInvalid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = "neon"
	assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
}

func TestUnitFor(t *testing.T) {
	cfg := &Config{Units: map[string]string{
		"v0": "kph",
		"a":  "furlongs",
	}}

	assert.Equal(t, "km/h", cfg.UnitFor(kinematics.InitialVelocity), "symbol keys and aliases resolve")
	assert.Equal(t, "m/s²", cfg.UnitFor(kinematics.Acceleration), "invalid units fall back to the default")
	assert.Equal(t, "s", cfg.UnitFor(kinematics.Time))
}

func TestTarget_FallsBackToDisplacement(t *testing.T) {
	cfg := &Config{DefaultTarget: ""}
	assert.Equal(t, kinematics.Displacement, cfg.Target())

	cfg.DefaultTarget = "v0"
	assert.Equal(t, kinematics.InitialVelocity, cfg.Target())
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/xdg", "kinecalc", "config.yaml"), path)

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/tmp/home")
	path, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/tmp/home", ".kinecalc", "config.yaml"), path)
}

func TestLoggingConfig(t *testing.T) {
	lc := LoggingConfig{Level: "debug", Dir: "/tmp/logs", DebugMode: true, Categories: map[string]bool{"ui": false}}

	opts := lc.Options()
	assert.True(t, opts.DebugMode)
	assert.Equal(t, "debug", opts.Level)
	assert.Equal(t, "/tmp/logs", opts.Dir)
	assert.Equal(t, lc.Categories, opts.Categories)
}

func TestUnitFor_CanonicalKeyWins(t *testing.T) {
	cfg := &Config{Units: map[string]string{
		"final_velocity": "mph",
		"v":              "km/h",
		"vf":             "ft/s",
	}}

	for i := 0; i < 20; i++ {
		assert.Equal(t, "mph", cfg.UnitFor(kinematics.FinalVelocity))
	}
}
