package kinematics

import "fmt"

// Kind classifies the result of a solve.
type Kind int

const (
	// KindValue means a value was computed.
	KindValue Kind = iota
	// KindIndeterminate means the knowns are consistent but leave the target unconstrained.
	KindIndeterminate
	// KindImpossible means the knowns contradict each other under the model.
	KindImpossible
	// KindNoFormula means no supported combination matches the supplied knowns.
	KindNoFormula
	// KindNumericError covers unreal roots and overflow.
	KindNumericError
	// KindInputError means the request was rejected before solving.
	KindInputError
)

var kindNames = map[Kind]string{
	KindValue:         "value",
	KindIndeterminate: "indeterminate",
	KindImpossible:    "impossible",
	KindNoFormula:     "no_applicable_formula",
	KindNumericError:  "numeric_error",
	KindInputError:    "input_error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Warning is a non-fatal pre-solve consistency finding.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Outcome is the result of Solve. Value and Note are meaningful only for KindValue;
// Reason explains every other kind.
type Outcome struct {
	Kind     Kind      `json:"kind"`
	Target   Variable  `json:"target"`
	Value    float64   `json:"value_si"`
	Note     string    `json:"note,omitempty"`
	Reason   string    `json:"reason,omitempty"`
	Formula  string    `json:"formula,omitempty"`
	Roots    []float64 `json:"roots,omitempty"`
	Warnings []Warning `json:"warnings,omitempty"`
}

// HasValue reports whether the outcome carries a computed value.
func (o Outcome) HasValue() bool {
	return o.Kind == KindValue
}

func valueOf(x float64) Outcome {
	return Outcome{Kind: KindValue, Value: x}
}

func indeterminate(reason string) Outcome {
	return Outcome{Kind: KindIndeterminate, Reason: reason}
}

func impossible(reason string) Outcome {
	return Outcome{Kind: KindImpossible, Reason: reason}
}

func numericError(reason string) Outcome {
	return Outcome{Kind: KindNumericError, Reason: reason}
}

func (o Outcome) withNote(note string) Outcome {
	o.Note = note
	return o
}
