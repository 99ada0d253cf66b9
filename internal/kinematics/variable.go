package kinematics

import (
	"fmt"
	"math"
	"strings"

	"kinecalc/internal/units"
)

// Variable identifies one of the five kinematic quantities.
type Variable int

const (
	Displacement Variable = iota
	InitialVelocity
	FinalVelocity
	Acceleration
	Time
)

// Epsilon is the tolerance for every near-zero and comparison test.
const Epsilon = 1e-9

type variableInfo struct {
	key      string
	display  string
	symbol   string
	category units.Category
}

var variableTable = [...]variableInfo{
	Displacement:    {key: "displacement", display: "Displacement (Δx)", symbol: "dx", category: units.Length},
	InitialVelocity: {key: "initial_velocity", display: "Initial Velocity (v₀)", symbol: "v0", category: units.Velocity},
	FinalVelocity:   {key: "final_velocity", display: "Final Velocity (v)", symbol: "v", category: units.Velocity},
	Acceleration:    {key: "acceleration", display: "Acceleration (a)", symbol: "a", category: units.Acceleration},
	Time:            {key: "time", display: "Time (t)", symbol: "t", category: units.Time},
}

// Variables returns all five variables in display order.
func Variables() []Variable {
	return []Variable{Displacement, InitialVelocity, FinalVelocity, Acceleration, Time}
}

// Valid reports whether v is one of the five variables.
func (v Variable) Valid() bool {
	return v >= Displacement && v <= Time
}

func (v Variable) info() variableInfo {
	if !v.Valid() {
		return variableInfo{key: fmt.Sprintf("variable(%d)", int(v))}
	}
	return variableTable[v]
}

// String returns the variable's key, e.g. "initial_velocity".
func (v Variable) String() string { return v.info().key }

// DisplayName returns the human label, e.g. "Initial Velocity (v₀)".
func (v Variable) DisplayName() string { return v.info().display }

// Symbol returns the short flag-style name, e.g. "v0".
func (v Variable) Symbol() string { return v.info().symbol }

// Category returns the unit category the variable is measured in.
func (v Variable) Category() units.Category { return v.info().category }

// MarshalText implements encoding.TextMarshaler.
func (v Variable) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid variable %d", int(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variable) UnmarshalText(text []byte) error {
	parsed, err := ParseVariable(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// ParseVariable accepts a key, a symbol or a display name.
func ParseVariable(s string) (Variable, error) {
	needle := strings.TrimSpace(s)
	for _, v := range Variables() {
		info := variableTable[v]
		if strings.EqualFold(needle, info.key) || needle == info.symbol || needle == info.display {
			return v, nil
		}
	}
	switch strings.ToLower(needle) {
	case "δx", "x", "displacement (δx)":
		return Displacement, nil
	case "v₀", "vi", "u":
		return InitialVelocity, nil
	case "vf":
		return FinalVelocity, nil
	}
	return 0, fmt.Errorf("unknown variable %q", s)
}

// Knowns maps variables to values in SI units. Absent keys are unknown.
type Knowns map[Variable]float64

// Get returns the value for v and whether it is present.
func (k Knowns) Get(v Variable) (float64, bool) {
	x, ok := k[v]
	return x, ok
}

// Has reports whether every listed variable is present.
func (k Knowns) Has(vars ...Variable) bool {
	for _, v := range vars {
		if _, ok := k[v]; !ok {
			return false
		}
	}
	return true
}

// Count returns how many variables other than except are present.
func (k Knowns) Count(except Variable) int {
	n := 0
	for v := range k {
		if v != except {
			n++
		}
	}
	return n
}

func nearZero(x float64) bool {
	return math.Abs(x) < Epsilon
}
