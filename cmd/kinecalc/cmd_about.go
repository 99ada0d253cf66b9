package main

import (
	"fmt"

	"kinecalc/cmd/kinecalc/calc"
	"kinecalc/cmd/kinecalc/ui"

	"github.com/spf13/cobra"
)

// aboutCmd prints the about text
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show what kinecalc does and the equations it uses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		theme := ui.ThemeFor(currentConfig().Theme)
		out, err := calc.RenderAbout(theme.IsDark, 80)
		if err != nil {
			return fmt.Errorf("failed to render about: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}
