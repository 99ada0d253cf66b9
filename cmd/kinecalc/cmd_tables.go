package main

import (
	"fmt"
	"strconv"
	"strings"

	"kinecalc/cmd/kinecalc/ui"
	"kinecalc/internal/kinematics"
	"kinecalc/internal/units"

	"github.com/spf13/cobra"
)

// unitsCmd lists the supported units
var unitsCmd = &cobra.Command{
	Use:   "units",
	Short: "List supported units and their SI factors",
	Args:  cobra.NoArgs,
	RunE:  runUnits,
}

// formulasCmd lists the equations tried for each target
var formulasCmd = &cobra.Command{
	Use:   "formulas [target]",
	Short: "List the equations used for each target, in preference order",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFormulas,
}

func tableStyles() ui.Styles {
	return ui.NewStyles(ui.ThemeFor(currentConfig().Theme))
}

func runUnits(cmd *cobra.Command, args []string) error {
	table := ui.NewSimpleTable("Units", "Quantity", "Unit", "SI unit", "1 unit in SI")
	table.RightAlign[3] = true

	for _, c := range units.Categories() {
		si := units.DefaultUnit(c)
		for _, symbol := range units.Units(c) {
			u, err := units.Lookup(symbol, c)
			if err != nil {
				return err
			}
			table.AddRow(string(c), symbol, si, strconv.FormatFloat(u.ToSI, 'g', -1, 64))
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), table.View(tableStyles()))
	return nil
}

func runFormulas(cmd *cobra.Command, args []string) error {
	targets := kinematics.Variables()
	if len(args) == 1 {
		v, err := kinematics.ParseVariable(args[0])
		if err != nil {
			return err
		}
		targets = []kinematics.Variable{v}
	}

	table := ui.NewSimpleTable("Formulas", "Target", "Knowns", "Equation")
	for _, target := range targets {
		for _, f := range kinematics.Formulas(target) {
			needs := make([]string, len(f.Needs))
			for i, v := range f.Needs {
				needs[i] = v.Symbol()
			}
			table.AddRow(target.DisplayName(), strings.Join(needs, ", "), f.Equation)
		}
	}

	fmt.Fprint(cmd.OutOrStdout(), table.View(tableStyles()))
	return nil
}
