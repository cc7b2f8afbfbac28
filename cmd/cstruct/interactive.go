package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tidwall/gjson"

	"github.com/structkit/cstruct"
	"github.com/structkit/cstruct/render"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	itemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	sizeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateSelectStruct browserState = iota
	stateShowTree
	stateInputValue
	stateShowHex
)

type browserModel struct {
	reg      *cstruct.Registry
	names    []string
	selected int
	state    browserState
	input    textinput.Model
	hexDump  string
	errMsg   string
}

func newBrowserModel(reg *cstruct.Registry) *browserModel {
	ti := textinput.New()
	ti.Placeholder = `{"field": 1}`
	ti.CharLimit = 0
	ti.Width = 72
	return &browserModel{
		reg:   reg,
		names: reg.Names(),
		input: ti,
	}
}

func runInteractive(reg *cstruct.Registry) error {
	if len(reg.Names()) == 0 {
		return fmt.Errorf("no structs declared")
	}
	_, err := tea.NewProgram(newBrowserModel(reg), tea.WithAltScreen()).Run()
	return err
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch m.state {
	case stateSelectStruct:
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
			}
		case "down", "j":
			if m.selected < len(m.names)-1 {
				m.selected++
			}
		case "enter":
			m.state = stateShowTree
		}

	case stateShowTree:
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateSelectStruct
		case "p":
			m.errMsg = ""
			m.input.SetValue("")
			m.input.Focus()
			m.state = stateInputValue
			return m, textinput.Blink
		}

	case stateInputValue:
		switch keyMsg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateShowTree
		case "enter":
			m.packInput()
		default:
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

	case stateShowHex:
		switch keyMsg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateShowTree
		}
	}

	return m, nil
}

func (m *browserModel) packInput() {
	raw := strings.TrimSpace(m.input.Value())
	if raw == "" {
		raw = "{}"
	}
	if !gjson.Valid(raw) {
		m.errMsg = "not valid JSON"
		return
	}
	value, ok := gjson.Parse(raw).Value().(map[string]any)
	if !ok {
		m.errMsg = "value must be a JSON object"
		return
	}
	data, err := m.reg.Pack(m.names[m.selected], value)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	m.hexDump = hex.Dump(data)
	m.errMsg = ""
	m.state = stateShowHex
}

func (m *browserModel) View() string {
	var b strings.Builder

	switch m.state {
	case stateSelectStruct:
		b.WriteString(titleStyle.Render("cstruct"))
		b.WriteString("\n\n")
		for i, name := range m.names {
			st, _ := m.reg.LayoutOf(name)
			line := fmt.Sprintf("%s  %s", itemStyle.Render(name), sizeStyle.Render(fmt.Sprintf("%d bytes", st.Size)))
			if i == m.selected {
				line = selectedStyle.Render("> " + name + fmt.Sprintf("  %d bytes", st.Size))
			} else {
				line = "  " + line
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("up/down: select  enter: layout  q: quit"))

	case stateShowTree:
		st, _ := m.reg.LayoutOf(m.names[m.selected])
		b.WriteString(render.Tree(st, true))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("p: pack a value  esc: back  q: quit"))

	case stateInputValue:
		b.WriteString(titleStyle.Render("pack " + m.names[m.selected]))
		b.WriteString("\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if m.errMsg != "" {
			b.WriteString(errorStyle.Render(m.errMsg))
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("enter: pack  esc: back"))

	case stateShowHex:
		b.WriteString(titleStyle.Render(m.names[m.selected]))
		b.WriteString("\n\n")
		b.WriteString(m.hexDump)
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc: back  q: quit"))
	}

	return b.String()
}
