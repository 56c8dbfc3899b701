//go:build darwin && cgo

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	classStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	absentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type interactiveModel struct {
	err       error
	spec      QuerySpec
	items     []itemDetail
	visible   []int
	selected  int
	filter    textinput.Model
	filtering bool
	loaded    bool
	state     modelState
}

type modelState int

const (
	stateList modelState = iota
	stateDetail
)

func newInteractiveModel(spec QuerySpec) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Width = 40
	return &interactiveModel{
		spec:   spec,
		filter: ti,
		state:  stateList,
	}
}

type loadedMsg struct {
	err   error
	items []itemDetail
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.loadItems
}

// loadItems snapshots every matched item up front. The TUI then runs
// entirely on Go memory; no foreign reference outlives this command.
func (m *interactiveModel) loadItems() tea.Msg {
	items, err := collectItems(m.spec)
	if err != nil {
		return loadedMsg{err: err}
	}
	return loadedMsg{items: items}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.filtering {
			switch msg.String() {
			case "enter", "esc":
				m.filtering = false
				m.filter.Blur()
				if msg.String() == "esc" {
					m.filter.SetValue("")
					m.applyFilter()
				}
				return m, nil
			default:
				var cmd tea.Cmd
				m.filter, cmd = m.filter.Update(msg)
				m.applyFilter()
				return m, cmd
			}
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.visible)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateList && len(m.visible) > 0 {
				m.state = stateDetail
			}

		case "esc":
			if m.state == stateDetail {
				m.state = stateList
			}

		case "/":
			if m.state == stateList {
				m.filtering = true
				m.filter.Focus()
				return m, textinput.Blink
			}

		case "r":
			if m.state == stateList {
				m.loaded = false
				return m, m.loadItems
			}
		}

	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.items = msg.items
		m.loaded = true
		m.applyFilter()
	}

	return m, nil
}

// applyFilter recomputes the visible index list from the filter text,
// matching case-insensitively against title and class.
func (m *interactiveModel) applyFilter() {
	needle := strings.ToLower(m.filter.Value())
	m.visible = m.visible[:0]
	for i, item := range m.items {
		if needle == "" ||
			strings.Contains(strings.ToLower(item.title), needle) ||
			strings.Contains(strings.ToLower(item.class), needle) {
			m.visible = append(m.visible, i)
		}
	}
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if !m.loaded {
		return "Loading keychain items..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Keychain Inspector"))
	b.WriteString(fmt.Sprintf(" %d items\n\n", len(m.items)))

	switch m.state {
	case stateList:
		if m.filtering || m.filter.Value() != "" {
			b.WriteString(m.filter.View())
			b.WriteString("\n\n")
		}
		if len(m.visible) == 0 {
			b.WriteString(absentStyle.Render("no items matched"))
			b.WriteString("\n")
		}
		for pos, idx := range m.visible {
			item := m.items[idx]
			line := classStyle.Render(item.class) + "  " + item.title
			if pos == m.selected {
				b.WriteString(selectedStyle.Render("> " + item.class + "  " + item.title))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter details • / filter • r reload • q quit"))

	case stateDetail:
		item := m.items[m.visible[m.selected]]
		b.WriteString(classStyle.Render(item.class))
		b.WriteString("  " + item.title + "\n\n")
		for _, a := range item.attrs {
			b.WriteString("  " + tagStyle.Render(a.tag) + "  ")
			if a.present {
				b.WriteString(a.value)
			} else {
				b.WriteString(absentStyle.Render("(no data)"))
			}
			b.WriteString("\n")
		}
		if item.data != "" {
			b.WriteString("  " + tagStyle.Render("data") + "  " + item.data + "\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("esc back • q quit"))
	}

	return b.String()
}

func runInteractive(spec QuerySpec) error {
	p := tea.NewProgram(newInteractiveModel(spec), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
