package kinematics

import (
	"fmt"
	"math"
	"strconv"
)

// Formula describes one input combination for a target, in preference order.
type Formula struct {
	Target   Variable   `json:"target"`
	Needs    []Variable `json:"needs"`
	Equation string     `json:"equation"`
}

type formula struct {
	needs    []Variable
	equation string
	solve    func(k Knowns) Outcome
}

// formulaTable lists the combinations per target. The first combination whose
// inputs are all present wins, so order is part of the contract.
var formulaTable = map[Variable][]formula{
	Displacement: {
		{
			needs:    []Variable{InitialVelocity, Acceleration, Time},
			equation: "Δx = v₀t + ½at²",
			solve: func(k Knowns) Outcome {
				v0, a, t := k[InitialVelocity], k[Acceleration], k[Time]
				return valueOf(v0*t + 0.5*a*t*t)
			},
		},
		{
			needs:    []Variable{InitialVelocity, FinalVelocity, Time},
			equation: "Δx = ½(v₀ + v)t",
			solve: func(k Knowns) Outcome {
				v0, v, t := k[InitialVelocity], k[FinalVelocity], k[Time]
				return valueOf(0.5 * (v0 + v) * t)
			},
		},
		{
			needs:    []Variable{FinalVelocity, Acceleration, Time},
			equation: "Δx = vt − ½at²",
			solve: func(k Knowns) Outcome {
				v, a, t := k[FinalVelocity], k[Acceleration], k[Time]
				return valueOf(v*t - 0.5*a*t*t)
			},
		},
		{
			needs:    []Variable{InitialVelocity, FinalVelocity, Acceleration},
			equation: "Δx = (v² − v₀²) / 2a",
			solve: func(k Knowns) Outcome {
				v0, v, a := k[InitialVelocity], k[FinalVelocity], k[Acceleration]
				if out := zeroDivisor(a, v-v0,
					"Displacement cannot be determined (a=0, v=v₀). Provide time instead.",
					"Inconsistent state (a=0, v≠v₀). Check inputs."); out != nil {
					return *out
				}
				return valueOf((v*v - v0*v0) / (2 * a))
			},
		},
	},
	InitialVelocity: {
		{
			needs:    []Variable{FinalVelocity, Acceleration, Time},
			equation: "v₀ = v − at",
			solve: func(k Knowns) Outcome {
				v, a, t := k[FinalVelocity], k[Acceleration], k[Time]
				return valueOf(v - a*t)
			},
		},
		{
			needs:    []Variable{Displacement, Acceleration, Time},
			equation: "v₀ = (Δx − ½at²) / t",
			solve: func(k Knowns) Outcome {
				dx, a, t := k[Displacement], k[Acceleration], k[Time]
				num := dx - 0.5*a*t*t
				if out := zeroDivisor(t, num,
					"Initial velocity cannot be determined (t=0, Δx=0).",
					"Cannot divide by zero time (t=0, Δx≠0)."); out != nil {
					return *out
				}
				return valueOf(num / t)
			},
		},
		{
			needs:    []Variable{Displacement, FinalVelocity, Time},
			equation: "v₀ = 2Δx/t − v",
			solve: func(k Knowns) Outcome {
				dx, v, t := k[Displacement], k[FinalVelocity], k[Time]
				if out := zeroDivisor(t, 2*dx,
					"Initial velocity cannot be determined (t=0, Δx=0).",
					"Cannot divide by zero time (t=0, Δx≠0)."); out != nil {
					return *out
				}
				return valueOf(2*dx/t - v)
			},
		},
		{
			needs:    []Variable{FinalVelocity, Acceleration, Displacement},
			equation: "v₀ = √(v² − 2aΔx)",
			solve: func(k Knowns) Outcome {
				v, a, dx := k[FinalVelocity], k[Acceleration], k[Displacement]
				return positiveRoot(v*v-2*a*dx, "initial velocity", "v₀")
			},
		},
	},
	FinalVelocity: {
		{
			needs:    []Variable{InitialVelocity, Acceleration, Time},
			equation: "v = v₀ + at",
			solve: func(k Knowns) Outcome {
				v0, a, t := k[InitialVelocity], k[Acceleration], k[Time]
				return valueOf(v0 + a*t)
			},
		},
		{
			needs:    []Variable{Displacement, InitialVelocity, Time},
			equation: "v = 2Δx/t − v₀",
			solve: func(k Knowns) Outcome {
				dx, v0, t := k[Displacement], k[InitialVelocity], k[Time]
				if out := zeroDivisor(t, 2*dx,
					"Final velocity cannot be determined (t=0, Δx=0).",
					"Cannot divide by zero time (t=0, Δx≠0)."); out != nil {
					return *out
				}
				return valueOf(2*dx/t - v0)
			},
		},
		{
			needs:    []Variable{Displacement, Acceleration, Time},
			equation: "v = Δx/t + ½at",
			solve: func(k Knowns) Outcome {
				dx, a, t := k[Displacement], k[Acceleration], k[Time]
				if out := zeroDivisor(t, dx,
					"Final velocity cannot be determined (t=0, Δx=0).",
					"Cannot divide by zero time (t=0, Δx≠0)."); out != nil {
					return *out
				}
				return valueOf(dx/t + 0.5*a*t)
			},
		},
		{
			needs:    []Variable{InitialVelocity, Acceleration, Displacement},
			equation: "v = √(v₀² + 2aΔx)",
			solve: func(k Knowns) Outcome {
				v0, a, dx := k[InitialVelocity], k[Acceleration], k[Displacement]
				return positiveRoot(v0*v0+2*a*dx, "final velocity", "v")
			},
		},
	},
	Acceleration: {
		{
			needs:    []Variable{InitialVelocity, FinalVelocity, Time},
			equation: "a = (v − v₀) / t",
			solve: func(k Knowns) Outcome {
				v0, v, t := k[InitialVelocity], k[FinalVelocity], k[Time]
				if out := zeroDivisor(t, v-v0,
					"Acceleration cannot be determined (t=0, v=v₀).",
					"Infinite acceleration implied (t=0, v≠v₀)."); out != nil {
					return *out
				}
				return valueOf((v - v0) / t)
			},
		},
		{
			needs:    []Variable{Displacement, InitialVelocity, Time},
			equation: "a = 2(Δx − v₀t) / t²",
			solve: func(k Knowns) Outcome {
				dx, v0, t := k[Displacement], k[InitialVelocity], k[Time]
				num := 2 * (dx - v0*t)
				if out := zeroDivisor(t, num,
					"Acceleration cannot be determined (t=0, Δx=0).",
					"Cannot divide by zero time squared (t=0, Δx≠0)."); out != nil {
					return *out
				}
				return valueOf(num / (t * t))
			},
		},
		{
			needs:    []Variable{Displacement, FinalVelocity, Time},
			equation: "a = 2(vt − Δx) / t²",
			solve: func(k Knowns) Outcome {
				dx, v, t := k[Displacement], k[FinalVelocity], k[Time]
				num := 2 * (v*t - dx)
				if out := zeroDivisor(t, num,
					"Acceleration cannot be determined (t=0, Δx=0).",
					"Cannot divide by zero time squared (t=0, Δx≠0)."); out != nil {
					return *out
				}
				return valueOf(num / (t * t))
			},
		},
		{
			needs:    []Variable{InitialVelocity, FinalVelocity, Displacement},
			equation: "a = (v² − v₀²) / 2Δx",
			solve: func(k Knowns) Outcome {
				v0, v, dx := k[InitialVelocity], k[FinalVelocity], k[Displacement]
				num := v*v - v0*v0
				if out := zeroDivisor(dx, num,
					"Acceleration cannot be determined (Δx=0, v²=v₀²).",
					"Inconsistent state (Δx=0, v²≠v₀²)."); out != nil {
					return *out
				}
				return valueOf(num / (2 * dx))
			},
		},
	},
	Time: {
		{
			needs:    []Variable{InitialVelocity, FinalVelocity, Acceleration},
			equation: "t = (v − v₀) / a",
			solve: func(k Knowns) Outcome {
				v0, v, a := k[InitialVelocity], k[FinalVelocity], k[Acceleration]
				if out := zeroDivisor(a, v-v0,
					"Time cannot be determined (a=0, v=v₀).",
					"Impossible state (a=0, v≠v₀). Check inputs."); out != nil {
					return *out
				}
				return nonNegativeTime((v - v0) / a)
			},
		},
		{
			needs:    []Variable{Displacement, InitialVelocity, FinalVelocity},
			equation: "t = 2Δx / (v₀ + v)",
			solve: func(k Knowns) Outcome {
				dx, v0, v := k[Displacement], k[InitialVelocity], k[FinalVelocity]
				if out := zeroDivisor(v0+v, dx,
					"Time cannot be determined (Δx=0, avg v=0).",
					"Impossible state (Δx≠0, avg v=0)."); out != nil {
					return *out
				}
				return nonNegativeTime(2 * dx / (v0 + v))
			},
		},
		{
			needs:    []Variable{Displacement, Acceleration, InitialVelocity},
			equation: "½at² + v₀t − Δx = 0",
			solve: func(k Knowns) Outcome {
				dx, a, v0 := k[Displacement], k[Acceleration], k[InitialVelocity]
				return SolveTimeQuadratic(0.5*a, v0, -dx)
			},
		},
		{
			needs:    []Variable{Displacement, Acceleration, FinalVelocity},
			equation: "½at² − vt + Δx = 0",
			solve: func(k Knowns) Outcome {
				dx, a, v := k[Displacement], k[Acceleration], k[FinalVelocity]
				return SolveTimeQuadratic(0.5*a, -v, dx)
			},
		},
	},
}

// Formulas returns the supported combinations for target in preference order.
func Formulas(target Variable) []Formula {
	rows := formulaTable[target]
	out := make([]Formula, 0, len(rows))
	for _, f := range rows {
		needs := make([]Variable, len(f.needs))
		copy(needs, f.needs)
		out = append(out, Formula{Target: target, Needs: needs, Equation: f.equation})
	}
	return out
}

// zeroDivisor classifies a near-zero divisor. It returns nil when the divisor
// is usable. Otherwise the paired numerator decides: if it also vanishes the
// target is unconstrained (Indeterminate), if not the knowns are inconsistent
// (Impossible).
func zeroDivisor(divisor, numerator float64, indeterminateMsg, impossibleMsg string) *Outcome {
	if !nearZero(divisor) {
		return nil
	}
	var out Outcome
	if nearZero(numerator) {
		out = indeterminate(indeterminateMsg)
	} else {
		out = impossible(impossibleMsg)
	}
	return &out
}

// positiveRoot reports √square. Only the non-negative root is returned; the
// note flags that the negative one may also be physically valid.
func positiveRoot(square float64, name, symbol string) Outcome {
	if square < -Epsilon {
		return numericError(fmt.Sprintf("Resulting %s is imaginary (%s² < 0). Check inputs.", name, symbol))
	}
	root := math.Sqrt(math.Max(0, square))
	out := valueOf(root)
	if root > Epsilon {
		out = out.withNote(fmt.Sprintf("Calculated positive root for %s. Negative root might also be valid.", symbol))
	}
	return out
}

func nonNegativeTime(t float64) Outcome {
	if t < -Epsilon {
		return impossible(fmt.Sprintf("Resulting time is negative (%s).", strconv.FormatFloat(t, 'g', 4, 64)))
	}
	return valueOf(math.Max(0, t))
}
