package main

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	firestorecodec "github.com/wippyai/firestore-codec"
)

type modelState int

const (
	stateEditing modelState = iota
	stateShowResult
)

type interactiveModel struct {
	err     error
	logger  *zap.Logger
	result  string
	history []string
	input   textinput.Model
	styles  styles
	state   modelState
}

type encodedMsg struct {
	err  error
	tree string
}

func newInteractiveModel(logger *zap.Logger) *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = `{"name": "Oslo", "tags": ["capital"], "population": 709037}`
	ti.Prompt = "value: "
	ti.Width = 60
	ti.Focus()
	return &interactiveModel{
		logger: logger,
		input:  ti,
		styles: newStyles(true),
		state:  stateEditing,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "esc":
			if m.state == stateShowResult {
				m.state = stateEditing
				m.result = ""
				m.err = nil
				return m, nil
			}
			return m, tea.Quit

		case "enter":
			if m.state == stateShowResult {
				m.state = stateEditing
				m.result = ""
				m.err = nil
				return m, nil
			}
			src := strings.TrimSpace(m.input.Value())
			if src == "" {
				return m, nil
			}
			m.history = append(m.history, src)
			return m, m.encode(src)
		}

	case encodedMsg:
		m.result = msg.tree
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	if m.state == stateEditing {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *interactiveModel) encode(src string) tea.Cmd {
	st := m.styles
	logger := m.logger
	return func() tea.Msg {
		v, err := parseJSON([]byte(src))
		if err != nil {
			return encodedMsg{err: err}
		}
		val, err := firestorecodec.Encode(v)
		if err != nil {
			logger.Debug("encode failed", zap.Error(err))
			return encodedMsg{err: err}
		}
		return encodedMsg{tree: renderTree(val, st)}
	}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(m.styles.title.Render("Firestore Value Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateEditing:
		b.WriteString("Type a JSON value (comments allowed):\n\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		if n := len(m.history); n > 0 {
			b.WriteString(m.styles.help.Render("last: " + m.history[n-1]))
			b.WriteString("\n")
		}
		b.WriteString(m.styles.help.Render("enter encode • esc quit"))

	case stateShowResult:
		if m.err != nil {
			b.WriteString(m.styles.err.Render("Error: " + m.err.Error()))
		} else {
			b.WriteString(m.result)
		}
		b.WriteString("\n")
		b.WriteString(m.styles.help.Render("enter edit • esc back • ctrl+c quit"))
	}

	return b.String()
}

func runInteractive(logger *zap.Logger) error {
	p := tea.NewProgram(newInteractiveModel(logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
