// Package tui is the interactive terminal front end of the analyzer: an
// input field, a verdict line, and a scrollable view of the decorated
// derivation tree. It only ever calls Analyze and the two renderers.
package tui

import (
	"fmt"
	"strings"

	maquina "github.com/RPRicardo/maquina-refrescos"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Model holds the TUI state. All analysis happens synchronously inside
// Update; there are no background commands.
type Model struct {
	input    textinput.Model
	viewport viewport.Model

	format   string // "visual" or "indented"
	lastTree *maquina.Node
	verdict  string
	example  int // next canned example to load

	ready  bool
	width  int
	height int
}

// NewModel creates the TUI model.
func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "{ $ $ $ R }"
	ti.Prompt = "input: "
	ti.CharLimit = 200
	ti.Focus()

	return Model{
		input:  ti,
		format: "visual",
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "enter":
			input := strings.TrimSpace(m.input.Value())
			if input != "" {
				m.analyze(input)
			}
			return m, nil

		case "tab":
			if m.format == "visual" {
				m.format = "indented"
			} else {
				m.format = "visual"
			}
			m.refreshContent()
			return m, nil

		case "ctrl+e":
			ex := maquina.Examples[m.example]
			m.example = (m.example + 1) % len(maquina.Examples)
			m.input.SetValue(ex.Input)
			m.analyze(ex.Input)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-8)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 8
		}
		m.input.Width = msg.Width - 12
		m.refreshContent()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)
	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// analyze runs the pipeline on input and refreshes verdict + viewport.
func (m *Model) analyze(input string) {
	res := maquina.Analyze(input)
	m.lastTree = res.Tree

	if res.Tree == nil {
		m.verdict = verdictBadStyle.Render("✗ INVALID STRING")
		m.viewport.SetContent(res.Errors[0])
		m.viewport.GotoTop()
		return
	}
	if res.Valid {
		m.verdict = verdictOKStyle.Render("✓ VALID STRING")
	} else {
		m.verdict = verdictBadStyle.Render("✗ INVALID STRING")
	}

	var b strings.Builder
	b.WriteString(m.renderTree())
	if len(res.Errors) > 0 {
		b.WriteString("\n\nERRORS FOUND:\n")
		for i, e := range res.Errors {
			fmt.Fprintf(&b, "%d. %s\n", i+1, e)
		}
	}
	m.viewport.SetContent(b.String())
	m.viewport.GotoTop()
}

// refreshContent re-renders the last tree, e.g. after a format toggle.
func (m *Model) refreshContent() {
	if m.lastTree == nil {
		return
	}
	m.viewport.SetContent(m.renderTree())
}

func (m *Model) renderTree() string {
	if m.format == "indented" {
		return maquina.RenderIndented(m.lastTree)
	}
	return maquina.RenderVisual(m.lastTree)
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("maquina — vending-machine string analyzer"))
	b.WriteString("  ")
	b.WriteString(noteStyle.Render("format: " + m.format))
	b.WriteString("\n\n")
	b.WriteString(inputBoxStyle.Render(m.input.View()))
	b.WriteString("\n")
	if m.verdict != "" {
		b.WriteString(m.verdict)
	}
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(
		"enter analyze · tab toggle format · ctrl+e next example · ctrl+c quit"))
	return b.String()
}
