package logging

import "time"

// CalculationEvent is the audit record written for every calculation.
type CalculationEvent struct {
	RequestID string
	Source    string // "tui", "cli", "batch"
	Target    string
	Kind      string
	Formula   string
	ValueSI   float64
	Unit      string
	Knowns    int
	Warnings  int
	Duration  time.Duration
}

// Audit writes ev to the audit category as a single structured entry.
func Audit(ev CalculationEvent) {
	Get(CategoryAudit).Infow("calculation",
		"req", ev.RequestID,
		"source", ev.Source,
		"target", ev.Target,
		"kind", ev.Kind,
		"formula", ev.Formula,
		"value_si", ev.ValueSI,
		"unit", ev.Unit,
		"knowns", ev.Knowns,
		"warnings", ev.Warnings,
		"duration", ev.Duration,
	)
}
