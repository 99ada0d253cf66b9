// Package ui holds the lipgloss styling shared by the kinecalc CLI tables
// and the interactive calculator.
package ui

import (
	"os"
	"strconv"
	"strings"

	"kinecalc/internal/present"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	LightBackground = lipgloss.Color("#f4f5f6")
	LightForeground = lipgloss.Color("#101F38")
	LightPrimary    = lipgloss.Color("#1f4e79")
	LightAccent     = lipgloss.Color("#2e86de")
	LightMuted      = lipgloss.Color("#8a94a3")
	LightBorder     = lipgloss.Color("#c8ced6")
	LightHighlight  = lipgloss.Color("#fff4c2") // calculated-value field

	DarkBackground = lipgloss.Color("#141d2b")
	DarkForeground = lipgloss.Color("#f2f2f2")
	DarkPrimary    = lipgloss.Color("#7fb8f0")
	DarkAccent     = lipgloss.Color("#54a0ff")
	DarkMuted      = lipgloss.Color("#6b7a90")
	DarkBorder     = lipgloss.Color("#2a3850")
	DarkHighlight  = lipgloss.Color("#3d3417")

	// Severity colors, same in both modes
	Destructive = lipgloss.Color("#e53935")
	Success     = lipgloss.Color("#43a047")
	Warning     = lipgloss.Color("#FFC107")
	Info        = lipgloss.Color("#2196F3")
)

// Theme holds the current color scheme.
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light mode theme.
func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Accent:     LightAccent,
		Muted:      LightMuted,
		Border:     LightBorder,
		Highlight:  LightHighlight,
	}
}

// DarkTheme returns the dark mode theme.
func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Accent:     DarkAccent,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		Highlight:  DarkHighlight,
		IsDark:     true,
	}
}

// DetectTheme guesses from COLORFGBG and KINECALC_DARK_MODE, defaulting to light.
func DetectTheme() Theme {
	if os.Getenv("KINECALC_DARK_MODE") == "1" {
		return DarkTheme()
	}
	// "foreground;background"; ANSI 0-6 and 8 are dark backgrounds
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	return LightTheme()
}

// ThemeFor maps the config's theme setting ("auto", "light", "dark") to a Theme.
func ThemeFor(name string) Theme {
	switch name {
	case "dark":
		return DarkTheme()
	case "light":
		return LightTheme()
	default:
		return DetectTheme()
	}
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	Header lipgloss.Style
	Footer lipgloss.Style
	Panel  lipgloss.Style

	Title lipgloss.Style
	Body  lipgloss.Style
	Muted lipgloss.Style
	Bold  lipgloss.Style

	Label      lipgloss.Style
	Focused    lipgloss.Style
	Calculated lipgloss.Style
	Unit       lipgloss.Style
	Result     lipgloss.Style

	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme.
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border).
			Padding(0, 1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Width(24),

		Focused: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true).
			Width(24),

		Calculated: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Background(theme.Highlight).
			Italic(true),

		Unit: lipgloss.NewStyle().
			Foreground(theme.Accent),

		Result: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		Success: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Warning: lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true),

		Info: lipgloss.NewStyle().
			Foreground(Info),
	}
}

// DefaultStyles returns styles for the detected theme.
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// Severity picks the banner style for a status severity.
func (s Styles) Severity(sev present.Severity) lipgloss.Style {
	switch sev {
	case present.Error:
		return s.Error
	case present.Warning:
		return s.Warning
	case present.Success:
		return s.Success
	default:
		return s.Info
	}
}

// Banner renders a status as "Title: message" in its severity color.
func (s Styles) Banner(st present.Status) string {
	return s.Severity(st.Severity).Render(st.Title+":") + " " + s.Body.Render(st.Message)
}
