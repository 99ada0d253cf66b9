package present

import (
	"errors"
	"testing"

	"kinecalc/internal/kinematics"
	"kinecalc/internal/units"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{5e-10, "0"},
		{-5e-10, "0"},
		{19.6, "19.6"},
		{-4.472135955, "-4.472136"},
		{0.0001, "0.0001"},
		{1234567, "1234567"},
		{0.5, "0.5"},
		{1e7, "1.0000E+007"},
		{9999999.96, "1.0000E+007"},
		{-9999999.96, "-1.0000E+007"},
		{123456789, "1.2346E+008"},
		{0.00001234, "1.2340E-005"},
		{-2.5e-7, "-2.5000E-007"},
		{6.02e123, "6.0200E+123"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestRender_Success(t *testing.T) {
	out := kinematics.Solve(kinematics.FinalVelocity, kinematics.Knowns{
		kinematics.InitialVelocity: 0,
		kinematics.Acceleration:    9.8,
		kinematics.Time:            2,
	})

	r, err := Render(out, "m/s")
	require.NoError(t, err)

	want := Report{
		Target:    kinematics.FinalVelocity,
		Label:     "Final Velocity (v)",
		Kind:      kinematics.KindValue,
		HasValue:  true,
		Value:     19.6,
		ValueText: "19.6",
		Unit:      "m/s",
		Formula:   "v = v₀ + at",
		Statuses:  []Status{StatusSuccess},
	}
	if diff := cmp.Diff(want, r); diff != "" {
		t.Fatalf("Render() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "Final Velocity (v): 19.6 m/s", r.ResultLine())
	assert.False(t, r.Failed())
}

func TestRender_ConvertsUnits(t *testing.T) {
	out := kinematics.Solve(kinematics.FinalVelocity, kinematics.Knowns{
		kinematics.InitialVelocity: 0,
		kinematics.Acceleration:    10,
		kinematics.Time:            1,
	})

	r, err := Render(out, "km/h")
	require.NoError(t, err)
	assert.InDelta(t, 36, r.Value, 1e-9)
	assert.Equal(t, "36", r.ValueText)
	assert.Equal(t, "km/h", r.Unit)

	_, err = Render(out, "furlong/fortnight")
	assert.ErrorIs(t, err, units.ErrUnknownUnit)
}

func TestRender_StatusOrdering(t *testing.T) {
	t.Run("warning outranks success", func(t *testing.T) {
		out := kinematics.Solve(kinematics.Time, kinematics.Knowns{
			kinematics.InitialVelocity: 5,
			kinematics.FinalVelocity:   1,
			kinematics.Displacement:    6,
		})
		// no acceleration known so no warnings, plain value
		r, err := Render(out, "s")
		require.NoError(t, err)
		assert.Equal(t, StatusSuccess, r.Primary())

		out = kinematics.Solve(kinematics.Displacement, kinematics.Knowns{
			kinematics.InitialVelocity: 5,
			kinematics.FinalVelocity:   1,
			kinematics.Acceleration:    2,
		})
		r, err = Render(out, "m")
		require.NoError(t, err)
		require.True(t, r.HasValue)
		require.Len(t, r.Statuses, 1)
		assert.Equal(t, Warning, r.Primary().Severity)
		assert.Equal(t, "Input Warning", r.Primary().Title)
	})

	t.Run("note is informational", func(t *testing.T) {
		out := kinematics.Solve(kinematics.InitialVelocity, kinematics.Knowns{
			kinematics.FinalVelocity: 10,
			kinematics.Acceleration:  2,
			kinematics.Displacement:  20,
		})
		r, err := Render(out, "m/s")
		require.NoError(t, err)
		assert.Equal(t, "Info", r.Primary().Title)
		assert.Equal(t, Informational, r.Primary().Severity)
	})

	t.Run("two roots are converted", func(t *testing.T) {
		out := kinematics.Solve(kinematics.Time, kinematics.Knowns{
			kinematics.Displacement:  32,
			kinematics.Acceleration:  3,
			kinematics.FinalVelocity: 14,
		})
		r, err := Render(out, "min")
		require.NoError(t, err)
		assert.Equal(t, []string{"0.06666667", "0.08888889"}, r.Roots)
	})
}

func TestRender_Failures(t *testing.T) {
	tests := []struct {
		name     string
		target   kinematics.Variable
		knowns   kinematics.Knowns
		title    string
		severity Severity
	}{
		{
			name:     "indeterminate",
			target:   kinematics.Displacement,
			knowns:   kinematics.Knowns{kinematics.InitialVelocity: 5, kinematics.FinalVelocity: 5, kinematics.Acceleration: 0},
			title:    "Indeterminate",
			severity: Warning,
		},
		{
			name:     "impossible",
			target:   kinematics.Time,
			knowns:   kinematics.Knowns{kinematics.Displacement: 10, kinematics.InitialVelocity: 0, kinematics.FinalVelocity: 0},
			title:    "Calculation Error",
			severity: Error,
		},
		{
			name:     "numeric",
			target:   kinematics.Time,
			knowns:   kinematics.Knowns{kinematics.Displacement: 10, kinematics.Acceleration: -2, kinematics.InitialVelocity: 1},
			title:    "Calculation Error",
			severity: Error,
		},
		{
			name:     "count gate",
			target:   kinematics.Time,
			knowns:   kinematics.Knowns{kinematics.Displacement: 10},
			title:    "Input Error",
			severity: Error,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Render(kinematics.Solve(tt.target, tt.knowns), "s")
			require.NoError(t, err)
			assert.False(t, r.HasValue)
			assert.Empty(t, r.ResultLine())
			assert.Equal(t, tt.title, r.Primary().Title)
			assert.Equal(t, tt.severity, r.Primary().Severity)
		})
	}
}

func TestRender_NoFormula(t *testing.T) {
	out := kinematics.Outcome{Kind: kinematics.KindNoFormula, Target: kinematics.Time, Reason: "nothing fits"}
	r, err := Render(out, "s")
	require.NoError(t, err)
	assert.Equal(t, Status{Title: "Calculation Warning", Message: "nothing fits", Severity: Warning}, r.Primary())
}

func TestInputErrorReport(t *testing.T) {
	r := InputError(kinematics.Time, errors.New("No unit selected for 'Time (t)'."))
	assert.True(t, r.Failed())
	assert.Equal(t, "Input Error: No unit selected for 'Time (t)'.", r.Primary().Message)
}

func TestPrimary_Empty(t *testing.T) {
	assert.Equal(t, StatusReady, Report{}.Primary())
}
