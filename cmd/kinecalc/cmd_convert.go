package main

import (
	"fmt"

	"kinecalc/internal/input"
	"kinecalc/internal/present"
	"kinecalc/internal/units"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// convertCmd converts a value between two units of one category
var convertCmd = &cobra.Command{
	Use:   "convert [value] [from] [to]",
	Short: "Convert a value between units of the same quantity",
	Long: `Converts between two units of length, velocity, acceleration or time.

Examples:
  kinecalc convert 60 mph km/h
  kinecalc convert 9.8 m/s2 ft/s²`,
	Args: cobra.ExactArgs(3),
	RunE: runConvert,
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := input.ParseNumber(args[0])
	if err != nil {
		return err
	}
	out, category, err := units.Convert(value, args[1], args[2])
	if err != nil {
		return err
	}
	logger.Debug("convert", zap.String("category", string(category)), zap.Float64("value", value))

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
		present.FormatValue(value), units.Normalize(args[1]),
		present.FormatValue(out), units.Normalize(args[2]))
	return nil
}
