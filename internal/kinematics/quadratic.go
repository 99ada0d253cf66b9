package kinematics

import (
	"fmt"
	"math"
	"strconv"
)

// SolveLinearTime solves b·t + c = 0 for a non-negative t.
func SolveLinearTime(b, c float64) Outcome {
	if out := zeroDivisor(b, c,
		"Time cannot be determined (a=0, v=0, Δx=0).",
		"Impossible state (a=0, v=0, Δx≠0)."); out != nil {
		return *out
	}
	return nonNegativeTime(-c / b)
}

// SolveTimeQuadratic solves qa·t² + qb·t + qc = 0 and keeps the non-negative
// roots. When two distinct roots survive the smaller one is the value and
// both are listed in Roots and the note. A vanishing quadratic coefficient
// falls back to SolveLinearTime.
func SolveTimeQuadratic(qa, qb, qc float64) Outcome {
	if nearZero(qa) {
		return SolveLinearTime(qb, qc)
	}

	disc := qb*qb - 4*qa*qc
	if math.IsNaN(disc) || math.IsInf(disc, 0) {
		return numericError("Numerical overflow. Inputs likely result in excessively large numbers.")
	}
	if disc < -Epsilon {
		return numericError("No real solution for time (discriminant < 0).")
	}
	sqrtDisc := math.Sqrt(math.Max(0, disc))
	denom := 2 * qa

	t1 := (-qb + sqrtDisc) / denom
	t2 := (-qb - sqrtDisc) / denom

	var valid []float64
	if t1 >= -Epsilon {
		valid = append(valid, math.Max(0, t1))
	}
	if math.Abs(t1-t2) > Epsilon && t2 >= -Epsilon {
		valid = append(valid, math.Max(0, t2))
	}

	switch len(valid) {
	case 0:
		return impossible("Both calculated time roots are negative or invalid. Check inputs.")
	case 1:
		return valueOf(valid[0])
	}

	lo, hi := math.Min(valid[0], valid[1]), math.Max(valid[0], valid[1])
	out := valueOf(lo)
	out.Roots = []float64{lo, hi}
	return out.withNote(fmt.Sprintf("Two possible positive times found (%ss, %ss). Using the smaller time.",
		strconv.FormatFloat(lo, 'g', 3, 64), strconv.FormatFloat(hi, 'g', 3, 64)))
}
