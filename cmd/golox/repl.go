package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gosuda/golox"
	"github.com/gosuda/golox/interpreter"
	"github.com/gosuda/golox/loxerr"
)

var (
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	resultStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inputStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("24")).Padding(0, 1)
)

// replModel is the bubbletea model for the interactive prompt described in
// spec.md §9: one persistent interpreter (global environment and closures
// survive across lines), but each submitted line gets its own scan, parse,
// and resolve pass against a freshly reset reporter — the pointer fields
// below are shared across every value-copy bubbletea hands back from Update.
type replModel struct {
	viewport viewport.Model
	input    textinput.Model
	ready    bool
	width    int
	height   int
	history  []string

	interp   *interpreter.Interpreter
	reporter *loxerr.CollectingReporter
	lines    *[]string
}

func runREPL() {
	p := tea.NewProgram(newREPLModel(), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Println("golox:", err)
	}
}

func newREPLModel() replModel {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.CharLimit = 4096
	ti.Focus()

	buf := &[]string{}
	m := replModel{
		input:    ti,
		reporter: loxerr.NewCollectingReporter(),
		lines:    buf,
	}
	m.interp = golox.NewInterpreter(func(s string) { *buf = append(*buf, s) })
	return m
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 1
		inputHeight := 1
		vh := msg.Height - headerHeight - inputHeight
		if vh < 1 {
			vh = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, vh)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = vh
		}
		m.width, m.height = msg.Width, msg.Height
		m.input.Width = msg.Width - len(m.input.Prompt) - 1
		m.renderHistory()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "ctrl+d":
			return m, tea.Quit
		case "enter":
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if line != "" {
				m.submit(line)
				m.renderHistory()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs one line through the shared interpreter. The compile-error
// flag is line-scoped (the reporter is reset before every submission); the
// interpreter's global environment and closures persist across the whole
// session, per spec.md §9.
func (m *replModel) submit(line string) {
	m.history = append(m.history, inputStyle.Render("> "+line))

	m.reporter.Reset()
	*m.lines = nil
	status := golox.RunWithInterpreter(m.interp, line, m.reporter)

	for _, l := range *m.lines {
		m.history = append(m.history, resultStyle.Render(l))
	}
	for _, e := range m.reporter.ParseErrors {
		m.history = append(m.history, errStyle.Render(e.Error()))
	}
	for _, e := range m.reporter.RuntimeErrors {
		m.history = append(m.history, errStyle.Render(e.Error()))
	}
	_ = status
}

func (m *replModel) renderHistory() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(strings.Join(m.history, "\n"))
	m.viewport.GotoBottom()
}

func (m replModel) View() string {
	if !m.ready {
		return "starting golox...\n"
	}
	return m.viewport.View() + "\n" + m.input.View()
}
