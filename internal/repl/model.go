// ============================================================================
// kyotamd - Command Language Interpreter
// ============================================================================
//
// Package:     repl
// Description: Main Bubbletea model for the interactive REPL
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Config holds TUI configuration
type Config struct {
	Prompt  string
	Title   string // Shown in the header, e.g. "kyotamd v0.1.0"
	NoColor bool
	History *History
}

// Model is the Bubbletea model for the REPL
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	running  bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Transcript
	entries []entry
	session *Session
	styles  Styles
	title   string

	// Input history
	history      *History
	historyIndex int    // -1 while editing a new line
	currentInput string // line being edited before navigating history
}

// New creates a new REPL model
func New(session *Session, cfg Config) Model {
	styles := DefaultStyles()
	if cfg.NoColor {
		styles = PlainStyles()
	}
	if cfg.History == nil {
		cfg.History = LoadHistory("", 0)
	}
	if cfg.Title == "" {
		cfg.Title = "kyotamd"
	}

	ti := textinput.New()
	ti.Placeholder = "Command, or :help"
	ti.Prompt = cfg.Prompt
	ti.PromptStyle = styles.Prompt
	ti.CharLimit = 4096
	ti.Width = 76
	ti.Focus()

	return Model{
		input:        ti,
		session:      session,
		styles:       styles,
		title:        cfg.Title,
		history:      cfg.History,
		historyIndex: -1,
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // Title + blank line
		footerHeight := 5 // Input panel + help
		viewportHeight := msg.Height - headerHeight - footerHeight - 2
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - 8 - len(m.input.Prompt)
		m.updateViewportContent()

	case evalDoneMsg:
		m.running = false
		m.appendResponse(msg.resp)
		m.updateViewportContent()
		m.viewport.GotoBottom()
		if msg.resp.Quit {
			return m.quit()
		}
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyCtrlD:
		return m.quit()

	case tea.KeyCtrlL:
		m.entries = nil
		m.updateViewportContent()
		return m, nil

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil
	}

	if m.running {
		return m, nil
	}

	switch msg.Type {
	case tea.KeyEnter:
		line := strings.TrimSpace(m.input.Value())
		m.input.Reset()
		m.historyIndex = -1
		m.currentInput = ""
		if line == "" {
			return m, nil
		}

		m.history.Add(line)
		m.entries = append(m.entries, entry{kind: entryInput, text: line})
		m.updateViewportContent()
		m.viewport.GotoBottom()

		m.running = true
		return m, m.evaluate(line)

	case tea.KeyUp:
		if m.history.Len() > 0 {
			if m.historyIndex == -1 {
				m.currentInput = m.input.Value()
				m.historyIndex = m.history.Len() - 1
			} else if m.historyIndex > 0 {
				m.historyIndex--
			}
			m.input.SetValue(m.history.At(m.historyIndex))
			m.input.CursorEnd()
		}
		return m, nil

	case tea.KeyDown:
		if m.historyIndex != -1 {
			if m.historyIndex < m.history.Len()-1 {
				m.historyIndex++
				m.input.SetValue(m.history.At(m.historyIndex))
			} else {
				m.historyIndex = -1
				m.input.SetValue(m.currentInput)
			}
			m.input.CursorEnd()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// evaluate runs line off the update loop
func (m Model) evaluate(line string) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		return evalDoneMsg{resp: session.Handle(line)}
	}
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	_ = m.history.Save()
	return m, tea.Quit
}

// appendResponse adds the parts of a response to the transcript
func (m *Model) appendResponse(resp Response) {
	if resp.Output != "" {
		m.entries = append(m.entries, entry{kind: entryOutput, text: strings.TrimSuffix(resp.Output, "\n")})
	}
	if resp.Info != "" {
		m.entries = append(m.entries, entry{kind: entryInfo, text: resp.Info})
	}
	if resp.HasValue() {
		m.entries = append(m.entries, entry{kind: entryValue, text: "=> " + resp.Value})
	}
	if resp.Err != nil {
		kind := entryError
		if resp.Alert() {
			kind = entryAlert
		}
		m.entries = append(m.entries, entry{kind: kind, text: resp.ErrorText()})
	}
}

// Transcript returns the transcript as plain text
func (m Model) Transcript() string {
	lines := make([]string, len(m.entries))
	for i, e := range m.entries {
		if e.kind == entryInput {
			lines[i] = m.input.Prompt + e.text
			continue
		}
		lines[i] = e.text
	}
	return strings.Join(lines, "\n")
}

// View renders the UI
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Starting REPL..."
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		m.renderTranscript(),
		m.renderInputArea(),
		m.renderHelpBar(),
	)
}

func (m Model) renderHeader() string {
	status := "running..."
	if !m.running {
		status = fmt.Sprintf("%d evaluated", m.session.Count())
	}
	return m.styles.Title.Render(m.title) + "  " + m.styles.Header.Render(status) + "\n"
}

func (m Model) renderTranscript() string {
	return m.styles.Panel.Width(m.width - 2).Render(m.viewport.View())
}

func (m Model) renderInputArea() string {
	return m.styles.Input.Width(m.width - 2).Render(m.input.View())
}

func (m Model) renderHelpBar() string {
	return m.styles.Help.Render("Enter run  ↑/↓ history  PgUp/PgDn scroll  Ctrl+L clear  Ctrl+C quit")
}

// updateViewportContent renders the transcript into the viewport
func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}

	rendered := make([]string, len(m.entries))
	for i, e := range m.entries {
		switch e.kind {
		case entryInput:
			rendered[i] = m.styles.Prompt.Render(m.input.Prompt) + m.styles.Echo.Render(e.text)
		case entryOutput:
			rendered[i] = m.styles.Output.Render(e.text)
		case entryValue:
			rendered[i] = m.styles.Value.Render(e.text)
		case entryInfo:
			rendered[i] = m.styles.Info.Render(e.text)
		case entryError:
			rendered[i] = m.styles.Error.Render(e.text)
		case entryAlert:
			rendered[i] = m.styles.Alert.Render(e.text)
		}
	}
	m.viewport.SetContent(strings.Join(rendered, "\n"))
}

// Run starts the REPL TUI
func Run(session *Session, cfg Config) error {
	p := tea.NewProgram(New(session, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
