package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"kinecalc/internal/config"
	"kinecalc/internal/kinematics"
	"kinecalc/internal/logging"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// setup resets every package-level flag and returns a command whose output
// is captured.
func setup(t *testing.T) (*cobra.Command, *bytes.Buffer) {
	t.Helper()
	logger = zap.NewNop()
	appCfg = config.DefaultConfig()
	appCfg.Theme = "light"
	configPath = ""
	solveTarget, solveUnit, solveJSON = "", "", false
	for _, p := range solveValues {
		*p = ""
	}
	batchConcurrency = 0
	configForce = false

	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)
	return cmd, &buf
}

func setValue(v kinematics.Variable, text string) {
	*solveValues[v] = text
}

func TestRunSolve_FreeFall(t *testing.T) {
	cmd, out := setup(t)
	solveTarget = "v"
	setValue(kinematics.InitialVelocity, "0")
	setValue(kinematics.Acceleration, "9.8 m/s²")
	setValue(kinematics.Time, "2 s")

	require.NoError(t, runSolve(cmd, nil))

	assert.Contains(t, out.String(), "Final Velocity (v): 19.6 m/s")
	assert.Contains(t, out.String(), "v = v₀ + at")
	assert.Contains(t, out.String(), "Calculation successful.")
}

func TestRunSolve_ResultUnitAndJSON(t *testing.T) {
	cmd, out := setup(t)
	solveTarget = "dx"
	solveUnit = "mi"
	solveJSON = true
	setValue(kinematics.InitialVelocity, "60 mph")
	setValue(kinematics.Acceleration, "0")
	setValue(kinematics.Time, "1 h")

	require.NoError(t, runSolve(cmd, nil))

	var got struct {
		RequestID string `json:"request_id"`
		Outcome   struct {
			Kind   string  `json:"kind"`
			Target string  `json:"target"`
			Value  float64 `json:"value_si"`
		} `json:"outcome"`
		Report struct {
			Unit  string  `json:"unit"`
			Value float64 `json:"value"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got), out.String())

	assert.NotEmpty(t, got.RequestID)
	assert.Equal(t, "value", got.Outcome.Kind)
	assert.Equal(t, "displacement", got.Outcome.Target)
	assert.InDelta(t, 96560.4, got.Outcome.Value, 1e-6)
	assert.Equal(t, "mi", got.Report.Unit)
	assert.InDelta(t, 60, got.Report.Value, 1e-9)
}

func TestRunSolve_TwoRoots(t *testing.T) {
	cmd, out := setup(t)
	solveTarget = "t"
	setValue(kinematics.Displacement, "32 m")
	setValue(kinematics.InitialVelocity, "14 m/s")
	setValue(kinematics.Acceleration, "-3 m/s²")

	require.NoError(t, runSolve(cmd, nil))

	assert.Contains(t, out.String(), "Time (t): 4 s")
	assert.Contains(t, out.String(), "Two possible positive times found")
}

func TestRunSolve_FailuresReturnError(t *testing.T) {
	tests := []struct {
		name   string
		target string
		values map[kinematics.Variable]string
		want   string
	}{
		{
			name:   "too few values",
			target: "v",
			values: map[kinematics.Variable]string{kinematics.InitialVelocity: "0"},
			want:   "Provide exactly 3 known values (found 1).",
		},
		{
			name:   "malformed number",
			target: "v",
			values: map[kinematics.Variable]string{
				kinematics.InitialVelocity: "zero",
				kinematics.Acceleration:    "1",
				kinematics.Time:            "1",
			},
			want: "Invalid numeric input for 'Initial Velocity (v₀)'.",
		},
		{
			name:   "impossible",
			target: "t",
			values: map[kinematics.Variable]string{
				kinematics.Displacement:    "10",
				kinematics.InitialVelocity: "0",
				kinematics.Acceleration:    "0",
			},
			want: "Calculation Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, out := setup(t)
			solveTarget = tt.target
			for v, text := range tt.values {
				setValue(v, text)
			}

			err := runSolve(cmd, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error()+out.String(), tt.want)
		})
	}
}

func TestRunSolve_UnknownTarget(t *testing.T) {
	cmd, _ := setup(t)
	solveTarget = "jerk"
	assert.Error(t, runSolve(cmd, nil))
}

func TestRunSolve_ConfigDefaults(t *testing.T) {
	cmd, out := setup(t)
	appCfg.DefaultTarget = "v"
	appCfg.Units["final_velocity"] = "km/h"
	appCfg.Units["time"] = "min"
	setValue(kinematics.InitialVelocity, "0")
	setValue(kinematics.Acceleration, "1")
	setValue(kinematics.Time, "1") // one minute

	require.NoError(t, runSolve(cmd, nil))
	assert.Contains(t, out.String(), "Final Velocity (v): 216 km/h")
}

func TestRunConvert(t *testing.T) {
	cmd, out := setup(t)

	require.NoError(t, runConvert(cmd, []string{"60", "mph", "km/h"}))
	assert.Equal(t, "60 mph = 96.5604 km/h\n", out.String())

	assert.Error(t, runConvert(cmd, []string{"60", "mph", "s"}), "category mismatch")
	assert.Error(t, runConvert(cmd, []string{"x", "m", "ft"}))
	assert.Error(t, runConvert(cmd, []string{"1", "parsec", "m"}))
}

func TestRunUnits(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runUnits(cmd, nil))

	for _, want := range []string{"length", "mi", "1609.34", "ft/s²", "3600"} {
		assert.Contains(t, out.String(), want)
	}
}

func TestRunFormulas(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, runFormulas(cmd, []string{"t"}))

	view := out.String()
	assert.Contains(t, view, "t = (v − v₀) / a")
	assert.NotContains(t, view, "v = v₀ + at")

	assert.Error(t, runFormulas(cmd, []string{"jerk"}))
}

func TestRunBatch(t *testing.T) {
	cmd, out := setup(t)
	path := filepath.Join(t.TempDir(), "problems.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
problems:
  - name: free fall
    target: v
    known: {v0: "0 m/s", a: "9.8 m/s²", t: "2 s"}
  - name: braking
    target: a
    known: {v0: "20 m/s", v: "0 m/s", t: "4 s"}
`), 0644))

	require.NoError(t, runBatch(cmd, []string{path}))

	view := out.String()
	assert.Contains(t, view, "free fall")
	assert.Contains(t, view, "19.6 m/s")
	assert.Contains(t, view, "-5 m/s²")
	assert.Less(t, strings.Index(view, "free fall"), strings.Index(view, "braking"), "rows keep file order")
}

func TestRunBatch_ReportsFailures(t *testing.T) {
	cmd, _ := setup(t)
	path := filepath.Join(t.TempDir(), "problems.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
problems:
  - target: t
    known: {dx: "10 m", v0: "0 m/s", a: "0 m/s²"}
`), 0644))

	err := runBatch(cmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 1 problems failed")
}

func TestConfigInitAndShow(t *testing.T) {
	cmd, out := setup(t)
	configPath = filepath.Join(t.TempDir(), "kinecalc", "config.yaml")

	require.NoError(t, runConfigInit(cmd, nil))
	assert.FileExists(t, configPath)
	assert.Error(t, runConfigInit(cmd, nil), "refuses to overwrite")

	configForce = true
	require.NoError(t, runConfigInit(cmd, nil))

	out.Reset()
	require.NoError(t, runConfigShow(cmd, nil))
	assert.Contains(t, out.String(), "default_target: displacement")
}

func TestConfigInit_RepairsInvalidFile(t *testing.T) {
	cmd, _ := setup(t)
	t.Cleanup(logging.CloseAll)
	for _, name := range []string{"KINECALC_THEME", "KINECALC_TARGET", "KINECALC_LOG_LEVEL", "KINECALC_LOG_DIR", "KINECALC_DEBUG"} {
		t.Setenv(name, "")
	}
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("theme: neon\n"), 0644))

	assert.ErrorIs(t, preRun(unitsCmd, nil), config.ErrInvalid, "other commands still reject the file")

	require.NoError(t, preRun(configInitCmd, nil))
	configForce = true
	require.NoError(t, runConfigInit(cmd, nil))

	cfg, err := config.Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Theme)
}

func TestLoadConfig(t *testing.T) {
	setup(t)
	for _, name := range []string{"KINECALC_THEME", "KINECALC_TARGET", "KINECALC_LOG_LEVEL", "KINECALC_LOG_DIR", "KINECALC_DEBUG"} {
		t.Setenv(name, "")
	}
	configPath = filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("default_target: t\n"), 0644))

	require.NoError(t, loadConfig())
	assert.Equal(t, kinematics.Time, appCfg.Target())

	require.NoError(t, os.WriteFile(configPath, []byte("theme: neon\n"), 0644))
	assert.ErrorIs(t, loadConfig(), config.ErrInvalid)
}

func TestRunAbout(t *testing.T) {
	cmd, out := setup(t)
	require.NoError(t, aboutCmd.RunE(cmd, nil))
	assert.Contains(t, out.String(), "kinecalc")
}
