// Package present turns solver outcomes into user-facing status and result text.
package present

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"kinecalc/internal/kinematics"
	"kinecalc/internal/units"
)

// Severity orders statuses the way a single status banner does: a higher
// severity replaces a lower one.
type Severity int

const (
	Informational Severity = iota
	Success
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Informational:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return fmt.Sprintf("severity(%d)", int(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Status is one banner message.
type Status struct {
	Title    string   `json:"title"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}

// Common banner texts.
var (
	StatusReady   = Status{Title: "Ready", Message: "Enter 3 known values and select the variable to calculate.", Severity: Informational}
	StatusCleared = Status{Title: "Cleared", Message: "Fields cleared. Enter new values.", Severity: Informational}
	StatusSuccess = Status{Title: "Success", Message: "Calculation successful.", Severity: Success}
)

// Report is everything a front end shows for one calculation.
type Report struct {
	Target    kinematics.Variable `json:"target"`
	Label     string              `json:"label"`
	Kind      kinematics.Kind     `json:"kind"`
	HasValue  bool                `json:"has_value"`
	Value     float64             `json:"value,omitempty"`
	ValueText string              `json:"value_text,omitempty"`
	Unit      string              `json:"unit,omitempty"`
	Formula   string              `json:"formula,omitempty"`
	Roots     []string            `json:"roots,omitempty"`
	Statuses  []Status            `json:"statuses"`
}

// Primary returns the status a single banner would end up showing: the
// highest severity, the latest one on ties.
func (r Report) Primary() Status {
	if len(r.Statuses) == 0 {
		return StatusReady
	}
	best := r.Statuses[0]
	for _, s := range r.Statuses[1:] {
		if s.Severity >= best.Severity {
			best = s
		}
	}
	return best
}

// Failed reports whether any status is an error.
func (r Report) Failed() bool {
	return r.Primary().Severity == Error
}

// ResultLine renders "Final Velocity (v): 19.6 m/s", or "" when no value exists.
func (r Report) ResultLine() string {
	if !r.HasValue {
		return ""
	}
	return fmt.Sprintf("%s: %s %s", r.Label, r.ValueText, r.Unit)
}

// InputError builds a report for a request rejected before solving.
func InputError(target kinematics.Variable, err error) Report {
	return Report{
		Target:   target,
		Label:    target.DisplayName(),
		Kind:     kinematics.KindInputError,
		Statuses: []Status{{Title: "Input Error", Message: "Input Error: " + err.Error(), Severity: Error}},
	}
}

// Render converts the outcome's SI value into unit and builds the status list.
func Render(out kinematics.Outcome, unit string) (Report, error) {
	r := Report{
		Target:  out.Target,
		Label:   out.Target.DisplayName(),
		Kind:    out.Kind,
		Formula: out.Formula,
	}

	for _, w := range out.Warnings {
		r.Statuses = append(r.Statuses, Status{Title: "Input Warning", Message: w.Message, Severity: Warning})
	}

	switch out.Kind {
	case kinematics.KindValue:
		cat := out.Target.Category()
		value, err := units.FromSI(out.Value, unit, cat)
		if err != nil {
			return Report{}, fmt.Errorf("target unit for '%s': %w", r.Label, err)
		}
		r.HasValue = true
		r.Value = value
		r.ValueText = FormatValue(value)
		r.Unit = units.Normalize(unit)
		for _, root := range out.Roots {
			converted, err := units.FromSI(root, unit, cat)
			if err != nil {
				return Report{}, err
			}
			r.Roots = append(r.Roots, FormatValue(converted))
		}
		switch {
		case out.Note != "":
			r.Statuses = append(r.Statuses, Status{Title: "Info", Message: out.Note, Severity: Informational})
		case len(out.Warnings) == 0:
			r.Statuses = append(r.Statuses, StatusSuccess)
		}
	case kinematics.KindIndeterminate:
		r.Statuses = append(r.Statuses, Status{Title: "Indeterminate", Message: out.Reason, Severity: Warning})
	case kinematics.KindImpossible, kinematics.KindNumericError:
		r.Statuses = append(r.Statuses, Status{Title: "Calculation Error", Message: out.Reason, Severity: Error})
	case kinematics.KindNoFormula:
		r.Statuses = append(r.Statuses, Status{Title: "Calculation Warning", Message: out.Reason, Severity: Warning})
	case kinematics.KindInputError:
		r.Statuses = append(r.Statuses, Status{Title: "Input Error", Message: out.Reason, Severity: Error})
	default:
		return Report{}, fmt.Errorf("unexpected outcome kind %s", out.Kind)
	}
	return r, nil
}

// FormatValue renders a magnitude for display: "0" below Epsilon, plain
// decimal with 7 significant digits inside [1e-4, 1e7), scientific with four
// fractional digits elsewhere.
func FormatValue(v float64) string {
	abs := math.Abs(v)
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 0):
		if v > 0 {
			return "∞"
		}
		return "-∞"
	case abs < kinematics.Epsilon:
		return "0"
	case abs >= 1e-4 && abs < 1e7:
		// Rounding to 7 digits can carry into 1e7.
		if s := strconv.FormatFloat(v, 'g', 7, 64); !strings.ContainsRune(s, 'e') {
			return s
		}
	}
	return scientific(v)
}

// scientific formats like 1.2346E+008: four fractional digits, signed
// exponent padded to at least three digits.
func scientific(v float64) string {
	s := strconv.FormatFloat(v, 'E', 4, 64)
	i := strings.IndexByte(s, 'E')
	mantissa, exp := s[:i], s[i+1:]
	sign, digits := exp[:1], exp[1:]
	for len(digits) < 3 {
		digits = "0" + digits
	}
	return mantissa + "E" + sign + digits
}
