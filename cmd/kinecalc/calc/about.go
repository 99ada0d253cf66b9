package calc

import (
	"github.com/charmbracelet/glamour"
)

// AboutMarkdown is shown by the About overlay and `kinecalc about`.
const AboutMarkdown = `# kinecalc

Constant-acceleration (1D) kinematics calculator.

Pick the variable to calculate, enter **exactly three** of the other four,
and kinecalc chooses the matching equation:

| Equation | Missing |
|---|---|
| v = v₀ + at | Δx |
| Δx = v₀t + ½at² | v |
| Δx = vt − ½at² | v₀ |
| v² = v₀² + 2aΔx | t |
| Δx = ½(v₀ + v)t | a |

Values may be entered in any supported unit; results are shown in the unit
selected for the calculated variable.

When a time comes from a quadratic with two positive roots, the smaller
one is used and both are reported.
`

// RenderAbout renders AboutMarkdown for the terminal.
func RenderAbout(dark bool, width int) (string, error) {
	if width <= 0 {
		width = 80
	}
	var (
		renderer *glamour.TermRenderer
		err      error
	)
	if dark {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(width),
		)
	} else {
		renderer, err = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(width),
		)
	}
	if err != nil {
		return "", err
	}
	return renderer.Render(AboutMarkdown)
}
