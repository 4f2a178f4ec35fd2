package main

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/zwtext/carrier"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateEditing modelState = iota
	stateHidden
	stateRevealed
)

type interactiveModel struct {
	err    error
	app    *app
	input  textarea.Model
	output string
	status string
	state  modelState
}

type copiedMsg struct {
	err   error
	runes int
}

func newInteractiveModel(a *app) *interactiveModel {
	ta := textarea.New()
	ta.Placeholder = "Type text to hide, or paste a carrier to reveal"
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.SetWidth(72)
	ta.SetHeight(6)
	ta.Focus()

	return &interactiveModel{
		app:   a,
		input: ta,
		state: stateEditing,
	}
}

func runInteractive(a *app) error {
	p := tea.NewProgram(newInteractiveModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return textarea.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "ctrl+s":
			return m, m.hide()

		case "ctrl+r":
			return m, m.reveal()

		case "ctrl+y":
			if m.output == "" {
				return m, nil
			}
			return m, m.copy(m.output)

		case "ctrl+l":
			m.input.Reset()
			m.output = ""
			m.status = ""
			m.err = nil
			m.state = stateEditing
			return m, nil
		}

	case tea.WindowSizeMsg:
		if msg.Width > 4 {
			m.input.SetWidth(msg.Width - 4)
		}

	case copiedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = fmt.Sprintf("Copied %d characters to the clipboard", msg.runes)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *interactiveModel) hide() tea.Cmd {
	m.err = nil
	m.status = ""
	hidden := m.app.codec.Encode(m.input.Value())
	if hidden == "" {
		m.output = ""
		m.state = stateEditing
		m.status = "Nothing to hide"
		return nil
	}
	m.output = hidden
	m.state = stateHidden
	if m.app.cfg.AutoCopy(true) {
		return m.copy(hidden)
	}
	return nil
}

func (m *interactiveModel) reveal() tea.Cmd {
	m.err = nil
	m.status = ""
	s := m.input.Value()
	if carrier.IsEscaped(s) {
		s = carrier.Unescape(s)
	}
	text, err := m.app.codec.DecodeStrict(s)
	if err != nil {
		m.output = ""
		m.state = stateEditing
		m.err = fmt.Errorf("reveal failed: %w", err)
		return nil
	}
	m.output = text
	m.state = stateRevealed
	if m.app.cfg.AutoCopy(true) {
		return m.copy(text)
	}
	return nil
}

func (m *interactiveModel) copy(text string) tea.Cmd {
	cb := m.app.clipboard
	return func() tea.Msg {
		if err := cb.WriteAll(text); err != nil {
			return copiedMsg{err: err}
		}
		return copiedMsg{runes: utf8.RuneCountInString(text)}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Zero-Width Text"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	switch m.state {
	case stateHidden:
		b.WriteString(labelStyle.Render(fmt.Sprintf("Hidden (%d invisible characters):", utf8.RuneCountInString(m.output))))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(carrier.Escape(m.output)))
		b.WriteString("\n\n")
	case stateRevealed:
		b.WriteString(labelStyle.Render("Revealed:"))
		b.WriteString("\n")
		b.WriteString(resultStyle.Render(m.output))
		b.WriteString("\n\n")
	}

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	} else if m.status != "" {
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n\n")
	}

	b.WriteString(helpStyle.Render("ctrl+s hide • ctrl+r reveal • ctrl+y copy • ctrl+l clear • esc quit"))
	return b.String()
}
