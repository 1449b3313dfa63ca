package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/javabind/capgen/internal/catalog"
	"github.com/javabind/capgen/internal/probe"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	bitStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#98FB98"))

	gridStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type inspectorModel struct {
	err     error
	target  probe.Target
	probed  []probe.Probed
	results table.Model
}

func newInspectorModel(target probe.Target) *inspectorModel {
	columns := []table.Column{
		{Title: "Flag", Width: 48},
		{Title: "Offset", Width: 6},
		{Title: "Mask", Width: 6},
		{Title: "Encoded", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(16),
	)
	styles := table.DefaultStyles()
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4"))
	t.SetStyles(styles)

	return &inspectorModel{target: target, results: t}
}

type probedMsg struct {
	err    error
	probed []probe.Probed
}

func (m *inspectorModel) Init() tea.Cmd {
	return m.probeAll
}

func (m *inspectorModel) probeAll() tea.Msg {
	probed, err := probe.All(m.target, catalog.Flags())
	return probedMsg{probed: probed, err: err}
}

func (m *inspectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		}

	case probedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.probed = msg.probed
		rows := make([]table.Row, len(msg.probed))
		for i, p := range msg.probed {
			rows[i] = table.Row{
				p.Flag.Name,
				fmt.Sprintf("%d", p.Fact.Offset),
				fmt.Sprintf("0x%02X", p.Fact.Mask),
				fmt.Sprintf("0x%04X", p.Fact.Encoded()),
			}
		}
		m.results.SetRows(rows)
	}

	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m *inspectorModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}
	if len(m.probed) == 0 {
		return "Probing layout..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Capability Layout"))
	b.WriteString(fmt.Sprintf("  %d flags in %d bytes\n\n", len(m.probed), probe.ImageSize))
	b.WriteString(m.results.View())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ select flag • q quit"))
	return b.String()
}

// renderGrid draws the structure's bytes bit by bit, highlighting the bit
// occupied by the selected flag.
func (m *inspectorModel) renderGrid() string {
	selected := m.results.Cursor()
	if selected < 0 || selected >= len(m.probed) {
		selected = 0
	}
	fact := m.probed[selected].Fact

	var b strings.Builder
	for off := 0; off < probe.ImageSize; off++ {
		b.WriteString(gridStyle.Render(fmt.Sprintf("%2d ", off)))
		for bit := 7; bit >= 0; bit-- {
			mask := byte(1) << bit
			if off == fact.Offset && mask == fact.Mask {
				b.WriteString(bitStyle.Render("1"))
			} else {
				b.WriteString(gridStyle.Render("·"))
			}
		}
		if off%2 == 1 {
			b.WriteString("\n")
		} else {
			b.WriteString("   ")
		}
	}
	return b.String()
}

func runInteractive(target probe.Target) error {
	p := tea.NewProgram(newInspectorModel(target), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(*inspectorModel); ok && m.err != nil {
		return m.err
	}
	return nil
}
