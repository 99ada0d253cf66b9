package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SimpleTable renders static rows with a header line and a divider.
type SimpleTable struct {
	Title   string
	Headers []string
	Rows    [][]string

	// RightAlign marks columns (by index) that hold numbers.
	RightAlign map[int]bool
}

// NewSimpleTable creates a new SimpleTable with the given title and headers.
func NewSimpleTable(title string, headers ...string) *SimpleTable {
	return &SimpleTable{
		Title:      title,
		Headers:    headers,
		RightAlign: map[int]bool{},
	}
}

// AddRow adds a row. Missing cells render empty; extra cells are dropped.
func (t *SimpleTable) AddRow(cells ...string) {
	row := make([]string, len(t.Headers))
	copy(row, cells)
	t.Rows = append(t.Rows, row)
}

func (t *SimpleTable) widths() []int {
	w := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		w[i] = lipgloss.Width(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if cw := lipgloss.Width(cell); cw > w[i] {
				w[i] = cw
			}
		}
	}
	return w
}

// View renders the table. An empty table renders as "".
func (t *SimpleTable) View(styles Styles) string {
	if len(t.Rows) == 0 {
		return ""
	}

	widths := t.widths()
	sep := styles.Muted.Render(" │ ")

	cell := func(style lipgloss.Style, col int, text string) string {
		align := lipgloss.Left
		if t.RightAlign[col] {
			align = lipgloss.Right
		}
		return style.Width(widths[col]).Align(align).Render(text)
	}

	var sb strings.Builder
	if t.Title != "" {
		sb.WriteString(styles.Title.Render(t.Title))
		sb.WriteString("\n")
	}

	header := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = cell(styles.Bold, i, h)
	}
	sb.WriteString(strings.Join(header, sep))
	sb.WriteString("\n")

	total := 3 * (len(widths) - 1)
	for _, w := range widths {
		total += w
	}
	sb.WriteString(styles.Muted.Render(strings.Repeat("─", total)))
	sb.WriteString("\n")

	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, text := range row {
			cells[i] = cell(styles.Body, i, text)
		}
		sb.WriteString(strings.Join(cells, sep))
		sb.WriteString("\n")
	}
	return sb.String()
}
