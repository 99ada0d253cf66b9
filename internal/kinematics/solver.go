// Package kinematics solves the five constant-acceleration equations of
// one-dimensional motion for a single unknown.
//
// All values are SI (m, m/s, m/s², s). Solve is pure: it holds no state and
// does no I/O, so it is safe to call from any number of goroutines.
//
// Every division in the formula table is guarded the same way. A divisor
// within Epsilon of zero is not a generic "divide by zero": if the paired
// numerator also vanishes the knowns are consistent but underdetermined
// (KindIndeterminate), otherwise they contradict each other (KindImpossible).
package kinematics

import (
	"fmt"
	"math"
)

// Solve computes target from exactly three other knowns.
func Solve(target Variable, k Knowns) Outcome {
	out := solve(target, k)
	out.Target = target
	return out
}

func solve(target Variable, k Knowns) Outcome {
	if out := validate(target, k); out != nil {
		return *out
	}

	warnings, fatal := CheckConsistency(target, k)
	if fatal != nil {
		fatal.Warnings = warnings
		return *fatal
	}
	return solveKnowns(target, k, warnings)
}

// validate is the count gate: the target must be absent and exactly three
// finite knowns present.
func validate(target Variable, k Knowns) *Outcome {
	reject := func(format string, args ...any) *Outcome {
		return &Outcome{Kind: KindInputError, Reason: fmt.Sprintf(format, args...)}
	}

	if !target.Valid() {
		return reject("Please select a variable to calculate.")
	}
	if _, ok := k[target]; ok {
		return reject("'%s' is the variable being calculated and cannot also be supplied.", target.DisplayName())
	}
	for v, x := range k {
		if !v.Valid() {
			return reject("Unknown variable %s.", v)
		}
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return reject("Invalid numeric input for '%s'.", v.DisplayName())
		}
	}
	if n := k.Count(target); n != 3 {
		return reject("Provide exactly 3 known values (found %d).", n)
	}
	return nil
}

func solveKnowns(target Variable, k Knowns, warnings []Warning) Outcome {
	for _, f := range formulaTable[target] {
		if !k.Has(f.needs...) {
			continue
		}
		out := f.solve(k)
		if out.Kind == KindValue && (math.IsNaN(out.Value) || math.IsInf(out.Value, 0)) {
			out = numericError("Numerical overflow. Inputs likely result in excessively large numbers.")
		}
		out.Formula = f.equation
		out.Warnings = warnings
		return out
	}
	return Outcome{
		Kind:     KindNoFormula,
		Reason:   "Could not calculate result. Ensure the provided inputs allow calculation for the selected variable.",
		Warnings: warnings,
	}
}
