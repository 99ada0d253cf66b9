// Package batch solves a file of problems concurrently.
package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"kinecalc/internal/calculator"
	"kinecalc/internal/input"
	"kinecalc/internal/kinematics"
	"kinecalc/internal/logging"
	"kinecalc/internal/present"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Problem is one entry of a batch file.
//
//	problems:
//	  - name: free fall
//	    target: v
//	    known: {v0: "0 m/s", a: "9.8 m/s²", t: "2 s"}
//	    result_unit: mph
type Problem struct {
	Name       string            `yaml:"name"`
	Target     string            `yaml:"target"`
	Known      map[string]string `yaml:"known"`
	ResultUnit string            `yaml:"result_unit,omitempty"`
}

type file struct {
	Problems []Problem `yaml:"problems"`
}

// Item is the result of one problem, at the problem's input position.
type Item struct {
	Index  int
	Name   string
	Result calculator.Result
}

// Calculator is the part of *calculator.Calculator a run needs.
type Calculator interface {
	Calculate(req calculator.Request) calculator.Result
}

// LoadFile reads and parses a batch file.
func LoadFile(path string) ([]Problem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a batch document.
func Parse(data []byte) ([]Problem, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(f.Problems) == 0 {
		return nil, fmt.Errorf("batch file contains no problems")
	}
	for i := range f.Problems {
		if f.Problems[i].Name == "" {
			f.Problems[i].Name = fmt.Sprintf("problem %d", i+1)
		}
	}
	return f.Problems, nil
}

// Request converts the problem into a calculator request.
func (p Problem) Request() (calculator.Request, error) {
	target, err := kinematics.ParseVariable(p.Target)
	if err != nil {
		return calculator.Request{}, fmt.Errorf("target: %w", err)
	}

	keys := make([]string, 0, len(p.Known))
	for k := range p.Known {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	req := calculator.Request{Target: target, ResultUnit: p.ResultUnit, Source: "batch"}
	for _, key := range keys {
		v, err := kinematics.ParseVariable(key)
		if err != nil {
			return calculator.Request{Target: target}, fmt.Errorf("known: %w", err)
		}
		number, unit := input.SplitQuantity(p.Known[key])
		req.Fields = append(req.Fields, input.Field{Variable: v, Text: number, Unit: unit})
	}
	return req, nil
}

// Run solves problems with at most limit in flight (limit <= 0 means one per
// CPU). Items come back in input order. Run stops early only when ctx is done.
func Run(ctx context.Context, calc Calculator, problems []Problem, limit int) ([]Item, error) {
	if limit <= 0 {
		limit = runtime.NumCPU()
	}
	logging.Batch("running %d problems, limit %d", len(problems), limit)

	items := make([]Item, len(problems))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(limit)

	for i, p := range problems {
		if err := egCtx.Err(); err != nil {
			break
		}
		i, p := i, p
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			items[i] = solveOne(calc, i, p)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func solveOne(calc Calculator, i int, p Problem) Item {
	item := Item{Index: i, Name: p.Name}
	req, err := p.Request()
	if err != nil {
		logging.Get(logging.CategoryBatch).Warn("%s: %v", p.Name, err)
		report := present.InputError(req.Target, err)
		if _, terr := kinematics.ParseVariable(p.Target); terr != nil {
			report.Label = p.Target
		}
		item.Result = calculator.Result{
			Outcome: kinematics.Outcome{Kind: kinematics.KindInputError, Target: req.Target, Reason: err.Error()},
			Report:  report,
		}
		return item
	}
	item.Result = calc.Calculate(req)
	return item
}
