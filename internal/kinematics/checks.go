package kinematics

// Warning codes emitted by CheckConsistency.
const (
	WarnZeroAccelVelocityChange = "zero_accel_velocity_change"
	WarnPositiveAccelSlowdown   = "positive_accel_slowdown"
	WarnNegativeAccelSpeedup    = "negative_accel_speedup"
	WarnZeroTimeVelocityChange  = "zero_time_velocity_change"
	WarnZeroTimeDisplacement    = "zero_time_displacement"
	WarnImaginaryFinalVelocity  = "imaginary_final_velocity"
	WarnImaginaryInitialVel     = "imaginary_initial_velocity"
)

// CheckConsistency runs the physical plausibility checks over the knowns.
// Warnings never stop a solve. fatal is non-nil when solving for target can
// only end in Impossible.
func CheckConsistency(target Variable, k Knowns) (warnings []Warning, fatal *Outcome) {
	dx, hasDx := k.Get(Displacement)
	v0, hasV0 := k.Get(InitialVelocity)
	v, hasV := k.Get(FinalVelocity)
	a, hasA := k.Get(Acceleration)
	t, hasT := k.Get(Time)

	warn := func(code, msg string) {
		warnings = append(warnings, Warning{Code: code, Message: msg})
	}

	if hasA && nearZero(a) && hasV0 && hasV && !nearZero(v-v0) {
		warn(WarnZeroAccelVelocityChange, "Provided acceleration is zero, but initial/final velocities differ.")
	}
	if hasA && a > Epsilon && hasV0 && hasV && v < v0-Epsilon {
		warn(WarnPositiveAccelSlowdown, "Provided acceleration is positive, but final velocity < initial velocity.")
	}
	if hasA && a < -Epsilon && hasV0 && hasV && v > v0+Epsilon {
		warn(WarnNegativeAccelSpeedup, "Provided acceleration is negative, but final velocity > initial velocity.")
	}
	if hasT && nearZero(t) {
		if hasV0 && hasV && !nearZero(v-v0) {
			warn(WarnZeroTimeVelocityChange, "Provided time is zero, but initial/final velocities differ.")
		}
		if hasDx && !nearZero(dx) {
			warn(WarnZeroTimeDisplacement, "Provided time is zero, but displacement is non-zero.")
		}
	}
	if hasV0 && hasA && hasDx && v0*v0+2*a*dx < -Epsilon {
		warn(WarnImaginaryFinalVelocity, "Provided inputs imply an imaginary final velocity (v² < 0).")
	}
	if hasV && hasA && hasDx && v*v-2*a*dx < -Epsilon {
		warn(WarnImaginaryInitialVel, "Provided inputs imply an imaginary initial velocity (v₀² < 0).")
	}

	if target == Time && hasDx && hasV0 && hasV && nearZero(v0+v) && !nearZero(dx) {
		out := impossible("Average velocity is zero, but displacement is non-zero. Cannot solve for time.")
		fatal = &out
	}

	return warnings, fatal
}
