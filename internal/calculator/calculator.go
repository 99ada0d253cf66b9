// Package calculator runs one calculation request end to end:
// collect the fields, solve, render the report.
package calculator

import (
	"time"

	"kinecalc/internal/input"
	"kinecalc/internal/kinematics"
	"kinecalc/internal/logging"
	"kinecalc/internal/present"
	"kinecalc/internal/units"

	"github.com/google/uuid"
)

// Request is one calculation as a front end submits it.
type Request struct {
	Target     kinematics.Variable
	Fields     []input.Field
	ResultUnit string // empty means the target category's default unit
	Source     string // "tui", "cli", "batch"
}

// Result pairs the raw outcome with its rendered report.
type Result struct {
	RequestID string             `json:"request_id"`
	Outcome   kinematics.Outcome `json:"outcome"`
	Report    present.Report     `json:"report"`
}

// Calculator is safe for concurrent use; it holds no per-request state.
type Calculator struct {
	newID func() string
	now   func() time.Time
}

// New returns a Calculator.
func New() *Calculator {
	return &Calculator{
		newID: uuid.NewString,
		now:   time.Now,
	}
}

// Calculate runs req and always returns a report; failures show up as
// statuses, never as a Go error.
func (c *Calculator) Calculate(req Request) Result {
	start := c.now()
	res := Result{RequestID: c.newID()}
	log := logging.Get(logging.CategorySolver).With("req", res.RequestID, "source", req.Source)

	unit := req.ResultUnit
	if unit == "" {
		unit = units.DefaultUnit(req.Target.Category())
	}

	knowns, err := input.Collect(req.Target, req.Fields)
	if err != nil {
		log.Warn("collect %s: %v", req.Target, err)
		res.Outcome = kinematics.Outcome{Kind: kinematics.KindInputError, Target: req.Target, Reason: err.Error()}
		res.Report = present.InputError(req.Target, err)
		c.audit(res, req, unit, 0, start)
		return res
	}
	log.Debug("collected %d knowns for %s", len(knowns), req.Target)

	res.Outcome = kinematics.Solve(req.Target, knowns)
	report, err := present.Render(res.Outcome, unit)
	if err != nil {
		log.Warn("render %s: %v", req.Target, err)
		report = present.InputError(req.Target, err)
	}
	res.Report = report

	log.Info("%s -> %s %s", req.Target, res.Outcome.Kind, res.Outcome.Formula)
	if res.Outcome.Formula != "" {
		logging.SolverDebug("req %s formula %q", res.RequestID, res.Outcome.Formula)
	}
	c.audit(res, req, unit, len(knowns), start)
	return res
}

// audit records the calculation in the audit log. It is a no-op unless
// debug logging is on.
func (c *Calculator) audit(res Result, req Request, unit string, knowns int, start time.Time) {
	if !logging.IsDebugMode() {
		return
	}
	logging.Audit(logging.CalculationEvent{
		RequestID: res.RequestID,
		Source:    req.Source,
		Target:    req.Target.String(),
		Kind:      res.Outcome.Kind.String(),
		Formula:   res.Outcome.Formula,
		ValueSI:   res.Outcome.Value,
		Unit:      unit,
		Knowns:    knowns,
		Warnings:  len(res.Outcome.Warnings),
		Duration:  c.now().Sub(start),
	})
}
