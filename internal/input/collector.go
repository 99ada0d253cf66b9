// Package input turns user-entered text fields into SI knowns.
package input

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"kinecalc/internal/kinematics"
	"kinecalc/internal/logging"
	"kinecalc/internal/units"
)

// ErrInput is matched by every *Error via errors.Is.
var ErrInput = errors.New("input error")

// Error reports a field that could not be collected.
type Error struct {
	Variable kinematics.Variable
	Msg      string
	Err      error
}

func (e *Error) Error() string {
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrInput) true for any *Error.
func (e *Error) Is(target error) bool {
	return target == ErrInput
}

// Field is one text box plus its unit selector.
type Field struct {
	Variable kinematics.Variable
	Text     string
	Unit     string
}

// Invariant-culture decimal: optional sign, digits with optional "," grouping,
// optional fraction, optional exponent.
var numberPattern = regexp.MustCompile(`^[+-]?(?:\d[\d,]*(?:\.\d*)?|\.\d+)(?:[eE][+-]?\d+)?$`)

// ParseNumber parses s using '.' as the decimal separator regardless of locale.
// Thousands separators are accepted in the integer part.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !numberPattern.MatchString(s) {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	x, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	return x, nil
}

// SplitQuantity splits "30 mph" into its number and unit parts. The unit is
// empty when only a number is given.
func SplitQuantity(s string) (number, unit string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	// "30mph", "9.8m/s²": number prefix directly followed by a unit
	for i, r := range s {
		if (r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') && !(r == 'e' || r == 'E') {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// Collect parses every non-target field and converts it to SI. Blank fields
// are skipped. The count of knowns is not checked here.
func Collect(target kinematics.Variable, fields []Field) (kinematics.Knowns, error) {
	knowns := make(kinematics.Knowns, len(fields))
	for _, f := range fields {
		if f.Variable == target {
			continue
		}
		text := strings.TrimSpace(f.Text)
		if text == "" {
			continue
		}

		name := f.Variable.DisplayName()
		value, err := ParseNumber(text)
		if err != nil {
			return nil, &Error{Variable: f.Variable, Msg: fmt.Sprintf("Invalid numeric input for '%s'.", name), Err: err}
		}
		if strings.TrimSpace(f.Unit) == "" {
			return nil, &Error{Variable: f.Variable, Msg: fmt.Sprintf("No unit selected for '%s'.", name)}
		}
		si, err := units.ToSI(value, f.Unit, f.Variable.Category())
		if err != nil {
			return nil, &Error{Variable: f.Variable, Msg: err.Error(), Err: err}
		}
		if _, dup := knowns[f.Variable]; dup {
			return nil, &Error{Variable: f.Variable, Msg: fmt.Sprintf("'%s' was supplied more than once.", name)}
		}
		knowns[f.Variable] = si
		logging.Get(logging.CategoryInput).Debug("%s = %g %s (%g SI)", f.Variable, value, units.Normalize(f.Unit), si)
	}
	return knowns, nil
}
