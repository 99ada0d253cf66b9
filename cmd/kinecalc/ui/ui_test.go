package ui

import (
	"strings"
	"testing"

	"kinecalc/internal/present"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestDetectTheme(t *testing.T) {
	t.Setenv("COLORFGBG", "")

	t.Setenv("KINECALC_DARK_MODE", "1")
	assert.True(t, DetectTheme().IsDark)

	t.Setenv("KINECALC_DARK_MODE", "")
	assert.False(t, DetectTheme().IsDark)

	t.Setenv("COLORFGBG", "15;0")
	assert.True(t, DetectTheme().IsDark, "black background means dark")

	t.Setenv("COLORFGBG", "0;15")
	assert.False(t, DetectTheme().IsDark)
}

func TestThemeFor(t *testing.T) {
	t.Setenv("COLORFGBG", "")
	t.Setenv("KINECALC_DARK_MODE", "")

	assert.True(t, ThemeFor("dark").IsDark)
	assert.False(t, ThemeFor("light").IsDark)
	assert.False(t, ThemeFor("auto").IsDark)
}

func TestSimpleTable(t *testing.T) {
	table := NewSimpleTable("Units", "Category", "Unit", "Per SI")
	table.RightAlign[2] = true
	table.AddRow("length", "ft", "0.3048")
	table.AddRow("time", "h")

	view := table.View(DefaultStyles())
	lines := strings.Split(strings.TrimRight(view, "\n"), "\n")

	assert.Contains(t, lines[0], "Units")
	assert.Contains(t, lines[1], "Category")
	assert.Contains(t, lines[3], "0.3048")
	assert.Len(t, lines, 5)
	assert.Equal(t, lipgloss.Width(lines[3]), lipgloss.Width(lines[4]), "rows are padded to equal width")
}

func TestSimpleTable_Empty(t *testing.T) {
	assert.Equal(t, "", NewSimpleTable("x", "a").View(DefaultStyles()))
}

func TestBanner(t *testing.T) {
	s := NewStyles(LightTheme())
	out := s.Banner(present.Status{Title: "Input Error", Message: "bad", Severity: present.Error})
	assert.Contains(t, out, "Input Error:")
	assert.Contains(t, out, "bad")
}
