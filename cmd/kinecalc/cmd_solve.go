package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"kinecalc/cmd/kinecalc/ui"
	"kinecalc/internal/calculator"
	"kinecalc/internal/input"
	"kinecalc/internal/kinematics"
	"kinecalc/internal/present"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	solveTarget string
	solveUnit   string
	solveJSON   bool
	// Quantity flags by variable, e.g. --v0 "30 mph"
	solveValues = map[kinematics.Variable]*string{}
)

// solveCmd solves for one variable from three others
var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve for one variable from exactly three others",
	Long: `Solves one constant-acceleration problem.

Quantities are "value unit"; a bare number uses the configured unit for
that variable.

Examples:
  kinecalc solve --target v --v0 0 --a "9.8 m/s²" --t "2 s"
  kinecalc solve --target t --dx "100 ft" --v0 "0 ft/s" --a "32.2 ft/s2"
  kinecalc solve --target dx --v0 "60 mph" --a 0 --t "1 h" --unit mi --json`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func initSolveFlags() {
	solveCmd.Flags().StringVarP(&solveTarget, "target", "T", "", "Variable to calculate: dx, v0, v, a or t (default from config)")
	solveCmd.Flags().StringVarP(&solveUnit, "unit", "u", "", "Unit for the result (default from config)")
	solveCmd.Flags().BoolVar(&solveJSON, "json", false, "Print the result as JSON")
	for _, v := range kinematics.Variables() {
		s := new(string)
		solveValues[v] = s
		solveCmd.Flags().StringVar(s, v.Symbol(), "", v.DisplayName()+` as "value unit"`)
	}
}

// solveRequest builds the calculator request from the solve flags.
func solveRequest() (calculator.Request, error) {
	cfg := currentConfig()

	target := cfg.Target()
	if solveTarget != "" {
		v, err := kinematics.ParseVariable(solveTarget)
		if err != nil {
			return calculator.Request{}, err
		}
		target = v
	}

	req := calculator.Request{Target: target, ResultUnit: solveUnit, Source: "cli"}
	if req.ResultUnit == "" {
		req.ResultUnit = cfg.UnitFor(target)
	}
	for _, v := range kinematics.Variables() {
		text := ""
		if p := solveValues[v]; p != nil {
			text = *p
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		number, unit := input.SplitQuantity(text)
		if unit == "" {
			unit = cfg.UnitFor(v)
		}
		req.Fields = append(req.Fields, input.Field{Variable: v, Text: number, Unit: unit})
	}
	return req, nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	req, err := solveRequest()
	if err != nil {
		return err
	}

	res := calculator.New().Calculate(req)
	logger.Debug("solve",
		zap.String("req", res.RequestID),
		zap.String("target", req.Target.String()),
		zap.String("kind", res.Outcome.Kind.String()),
	)

	out := cmd.OutOrStdout()
	if solveJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		printReport(out, ui.NewStyles(ui.ThemeFor(currentConfig().Theme)), res.Report)
	}

	if res.Report.Failed() {
		return fmt.Errorf("%s: %s", res.Report.Primary().Title, res.Report.Primary().Message)
	}
	return nil
}

func printReport(w io.Writer, styles ui.Styles, r present.Report) {
	if r.HasValue {
		fmt.Fprintln(w, styles.Result.Render(r.ResultLine()))
		if r.Formula != "" {
			fmt.Fprintln(w, styles.Muted.Render("  using "+r.Formula))
		}
		if len(r.Roots) > 1 {
			fmt.Fprintln(w, styles.Muted.Render("  roots: "+strings.Join(r.Roots, ", ")+" "+r.Unit))
		}
	}
	for _, st := range r.Statuses {
		fmt.Fprintln(w, styles.Banner(st))
	}
}
