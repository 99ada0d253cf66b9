// Package calc is the interactive calculator: one text field and unit
// selector per variable, a target selector, a result panel and a status
// banner.
package calc

import (
	"fmt"
	"strings"

	"kinecalc/cmd/kinecalc/ui"
	"kinecalc/internal/calculator"
	"kinecalc/internal/config"
	"kinecalc/internal/input"
	"kinecalc/internal/kinematics"
	"kinecalc/internal/logging"
	"kinecalc/internal/present"
	"kinecalc/internal/units"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const calculatedPlaceholder = "Calculated Value"

// ConfigReloadedMsg carries a config reload from the watcher.
type ConfigReloadedMsg config.Reload

// Model is the bubbletea model for the calculator.
type Model struct {
	cfg     *config.Config
	calc    *calculator.Calculator
	watcher *config.Watcher
	styles  ui.Styles

	target kinematics.Variable
	focus  kinematics.Variable
	inputs [5]textinput.Model
	units  [5]string

	report *present.Report
	status present.Status

	showAbout bool
	about     string

	width  int
	height int
}

// New builds the calculator with cfg's default target, units and theme.
func New(cfg *config.Config, calc *calculator.Calculator) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	m := Model{
		cfg:    cfg,
		calc:   calc,
		styles: ui.NewStyles(ui.ThemeFor(cfg.Theme)),
		target: cfg.Target(),
		status: present.StatusReady,
		width:  80,
	}

	for _, v := range kinematics.Variables() {
		ti := textinput.New()
		ti.Placeholder = "enter value"
		ti.Prompt = ""
		ti.CharLimit = 32
		ti.Width = 18
		m.inputs[v] = ti
		m.units[v] = cfg.UnitFor(v)
	}
	m.applyStyles()
	m.setTarget(m.target)
	return m
}

// WithWatcher subscribes the model to live config reloads.
func (m Model) WithWatcher(w *config.Watcher) Model {
	m.watcher = w
	return m
}

// Target returns the variable being calculated.
func (m Model) Target() kinematics.Variable { return m.target }

// Status returns the banner currently shown.
func (m Model) Status() present.Status { return m.status }

// Report returns the last calculation, or nil.
func (m Model) Report() *present.Report { return m.report }

// Unit returns the unit selected for v.
func (m Model) Unit(v kinematics.Variable) string { return m.units[v] }

// Value returns the text entered for v.
func (m Model) Value(v kinematics.Variable) string { return m.inputs[v].Value() }

// SetValue fills the text field for v.
func (m *Model) SetValue(v kinematics.Variable, text string) { m.inputs[v].SetValue(text) }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.watcher != nil {
		cmds = append(cmds, waitForReload(m.watcher))
	}
	return tea.Batch(cmds...)
}

func waitForReload(w *config.Watcher) tea.Cmd {
	return func() tea.Msg {
		return ConfigReloadedMsg(<-w.Updates())
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.showAbout {
			m.renderAbout()
		}
		return m, nil

	case ConfigReloadedMsg:
		m.applyConfig(config.Reload(msg))
		var cmd tea.Cmd
		if m.watcher != nil {
			cmd = waitForReload(m.watcher)
		}
		return m, cmd

	case tea.KeyMsg:
		if m.showAbout {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "esc", "f1", "enter", "q":
				m.showAbout = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			m.calculate()
			return m, nil
		case "tab", "down":
			m.moveFocus(1)
			return m, nil
		case "shift+tab", "up":
			m.moveFocus(-1)
			return m, nil
		case "f2", "ctrl+t":
			m.setTarget(next(m.target, 1))
			return m, nil
		case "f3":
			m.cycleUnit(m.focus)
			return m, nil
		case "f4":
			m.cycleUnit(m.target)
			return m, nil
		case "f5", "ctrl+l":
			m.clear()
			return m, nil
		case "f1":
			m.showAbout = true
			m.renderAbout()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func next(v kinematics.Variable, step int) kinematics.Variable {
	n := len(kinematics.Variables())
	return kinematics.Variable((int(v) + step + n) % n)
}

// setTarget disables and clears the target's field, moves focus off it and
// drops any previous result and banner. The outgoing target's field only
// ever held a displayed result, so it is emptied rather than kept as a known.
func (m *Model) setTarget(v kinematics.Variable) {
	m.inputs[m.target].SetValue("")
	m.target = v
	m.inputs[v].SetValue("")
	m.inputs[v].Placeholder = calculatedPlaceholder
	for _, other := range kinematics.Variables() {
		if other != v {
			m.inputs[other].Placeholder = "enter value"
		}
	}
	m.report = nil
	m.status = present.StatusReady
	if m.focus == v || !m.inputs[m.focus].Focused() {
		m.focusOn(next(v, 1))
	}
	logging.UIDebug("target -> %s", v)
}

func (m *Model) focusOn(v kinematics.Variable) {
	for _, other := range kinematics.Variables() {
		m.inputs[other].Blur()
	}
	m.focus = v
	m.inputs[v].Focus()
}

func (m *Model) moveFocus(step int) {
	v := next(m.focus, step)
	if v == m.target {
		v = next(v, step)
	}
	m.focusOn(v)
}

func (m *Model) cycleUnit(v kinematics.Variable) {
	options := units.Units(v.Category())
	current := 0
	for i, u := range options {
		if u == m.units[v] {
			current = i
			break
		}
	}
	m.units[v] = options[(current+1)%len(options)]
	if v == m.target {
		m.report = nil
		m.inputs[v].SetValue("")
	}
}

func (m *Model) calculate() {
	fields := make([]input.Field, 0, 4)
	for _, v := range kinematics.Variables() {
		if v == m.target {
			continue
		}
		fields = append(fields, input.Field{Variable: v, Text: m.inputs[v].Value(), Unit: m.units[v]})
	}

	res := m.calc.Calculate(calculator.Request{
		Target:     m.target,
		Fields:     fields,
		ResultUnit: m.units[m.target],
		Source:     "tui",
	})
	report := res.Report
	m.report = &report
	m.status = report.Primary()
	m.inputs[m.target].SetValue(report.ValueText)
	logging.UI("calculate %s: %s", m.target, m.status.Title)
}

// clear resets every field and unit to its default, selects the first
// variable as the target and focuses the first enabled field.
func (m *Model) clear() {
	for _, v := range kinematics.Variables() {
		m.inputs[v].SetValue("")
		m.units[v] = m.cfg.UnitFor(v)
	}
	first := kinematics.Variables()[0]
	m.setTarget(first)
	m.focusOn(next(first, 1))
	m.status = present.StatusCleared
}

func (m *Model) applyConfig(r config.Reload) {
	if r.Err != nil {
		m.status = present.Status{Title: "Config Error", Message: r.Err.Error(), Severity: present.Warning}
		return
	}
	m.cfg = r.Config
	m.styles = ui.NewStyles(ui.ThemeFor(m.cfg.Theme))
	m.applyStyles()
	for _, v := range kinematics.Variables() {
		if m.inputs[v].Value() == "" {
			m.units[v] = m.cfg.UnitFor(v)
		}
	}
	m.status = present.Status{Title: "Config Reloaded", Message: "Settings applied.", Severity: present.Informational}
}

func (m *Model) applyStyles() {
	for i := range m.inputs {
		m.inputs[i].TextStyle = m.styles.Body
		m.inputs[i].PlaceholderStyle = m.styles.Muted
	}
}

func (m *Model) renderAbout() {
	out, err := RenderAbout(m.styles.Theme.IsDark, m.width-4)
	if err != nil {
		out = AboutMarkdown
	}
	m.about = out
}

// View implements tea.Model.
func (m Model) View() string {
	s := m.styles
	var sb strings.Builder

	sb.WriteString(s.Header.Render("kinecalc · constant-acceleration kinematics"))
	sb.WriteString("\n\n")

	if m.showAbout {
		sb.WriteString(m.about)
		sb.WriteString(s.Footer.Render("esc close"))
		return sb.String()
	}

	sb.WriteString(s.Muted.Render("Calculate: "))
	sb.WriteString(s.Title.Render(m.target.DisplayName()))
	sb.WriteString("\n\n")

	for _, v := range kinematics.Variables() {
		label := s.Label.Render(v.DisplayName())
		if v == m.focus && v != m.target {
			label = s.Focused.Render("› " + v.DisplayName())
		}

		field := m.inputs[v].View()
		if v == m.target {
			text := calculatedPlaceholder
			if m.inputs[v].Value() != "" {
				text = m.inputs[v].Value()
			}
			field = s.Calculated.Width(18).Render(text)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, field, "  ", s.Unit.Render("["+m.units[v]+"]")))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	sb.WriteString(s.Panel.Render(m.resultView()))
	sb.WriteString("\n")
	sb.WriteString(s.Banner(m.status))
	sb.WriteString("\n\n")
	sb.WriteString(s.Footer.Render("enter calculate · tab next · f2 target · f3 unit · f4 result unit · f5 clear · f1 about · esc quit"))
	return sb.String()
}

func (m Model) resultView() string {
	s := m.styles
	if m.report == nil || !m.report.HasValue {
		return s.Muted.Render(fmt.Sprintf("%s: –", m.target.DisplayName()))
	}
	lines := []string{s.Result.Render(m.report.ResultLine())}
	if m.report.Formula != "" {
		lines = append(lines, s.Muted.Render("using "+m.report.Formula))
	}
	if len(m.report.Roots) > 1 {
		lines = append(lines, s.Muted.Render("roots: "+strings.Join(m.report.Roots, ", ")+" "+m.report.Unit))
	}
	return strings.Join(lines, "\n")
}

// Run starts the calculator full screen and blocks until it quits.
func Run(m Model) error {
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
