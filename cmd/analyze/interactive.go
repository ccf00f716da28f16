package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/wasm-capture/report"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browseState int

const (
	stateList browseState = iota
	stateSection
)

type browseModel struct {
	capture  string
	sections []report.Section
	viewport viewport.Model
	selected int
	state    browseState
}

func newBrowseModel(capture string, sections []report.Section) *browseModel {
	return &browseModel{
		capture:  capture,
		sections: sections,
		viewport: viewport.New(80, 20),
		state:    stateList,
	}
}

func (m *browseModel) Init() tea.Cmd {
	return nil
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = msg.Height - 4 // title and help lines

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateList && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateList && m.selected < len(m.sections)-1 {
				m.selected++
			}

		case "enter":
			if m.state == stateList && len(m.sections) > 0 {
				m.openSection()
			}

		case "esc":
			if m.state == stateSection {
				m.state = stateList
			}
		}
	}

	if m.state == stateSection {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *browseModel) openSection() {
	s := m.sections[m.selected]
	body := s.Body
	if body == "" {
		body = "(no data)"
	}
	m.viewport.SetContent(body)
	m.viewport.GotoTop()
	m.state = stateSection
}

func (m *browseModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Capture Analysis"))
	b.WriteString(" ")
	b.WriteString(m.capture)
	b.WriteString("\n\n")

	switch m.state {
	case stateList:
		for i, s := range m.sections {
			line := s.Title
			lines := 0
			if s.Body != "" {
				lines = strings.Count(s.Body, "\n") + 1
			}
			suffix := countStyle.Render(fmt.Sprintf(" (%d lines)", lines))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + sectionStyle.Render(line))
			}
			b.WriteString(suffix)
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter view • q quit"))

	case stateSection:
		b.WriteString(sectionStyle.Render(m.sections[m.selected].Title))
		b.WriteString("\n")
		b.WriteString(m.viewport.View())
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ scroll • esc back • q quit"))
	}

	return b.String()
}

func browse(capture string, sections []report.Section) error {
	p := tea.NewProgram(newBrowseModel(capture, sections), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
