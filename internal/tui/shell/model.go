// ============================================================================
// findpay - Payment filter command parsing
// ============================================================================
//
// Package:     shell
// Description: Bubbletea model for the interactive findpay shell
// Author:      Mike Stoffels
// Created:     2025-10-17
// License:     MIT
// ============================================================================

package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/findpay/foundation/core/log"
	"github.com/msto63/findpay/internal/command"
	"github.com/msto63/findpay/internal/render"
)

const helpText = "enter: run • ↑/↓: history • help • clear • exit/quit/ctrl+c: leave"

// Config holds shell configuration
type Config struct {
	Prompt      string
	HistorySize int
	SessionID   string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Prompt:      "findpay> ",
		HistorySize: 100,
	}
}

// entryKind distinguishes scrollback lines
type entryKind int

const (
	entryResult entryKind = iota
	entryInfo
)

// entry is one item of scrollback
type entry struct {
	kind   entryKind
	input  string
	result render.Result
	text   string
}

// Model is the Bubbletea model for the shell
type Model struct {
	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Components
	input    textinput.Model
	viewport viewport.Model

	// Session
	entries   []entry
	history   *History
	registry  *command.Registry
	logger    *mdwlog.Logger
	sessionID string
	prompt    string
}

// New creates a shell model dispatching lines through registry
func New(registry *command.Registry, logger *mdwlog.Logger, cfg Config) Model {
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultConfig().Prompt
	}
	if logger == nil {
		logger = mdwlog.Nop()
	}

	ti := textinput.New()
	ti.Prompt = PromptStyle.Render(cfg.Prompt)
	ti.TextStyle = InputTextStyle
	ti.Placeholder = "findpayment 1 a/23.50"
	ti.CharLimit = 4096
	ti.Focus()

	return Model{
		input:     ti,
		history:   NewHistory(cfg.HistorySize),
		registry:  registry,
		logger:    logger.WithName("shell").WithField("session", cfg.SessionID),
		sessionID: cfg.SessionID,
		prompt:    cfg.Prompt,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2 // title + blank
		footerHeight := 4 // input panel + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.input.Width = msg.Width - lipgloss.Width(m.input.Prompt) - 6
		m.updateViewportContent()
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "ctrl+d":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		return m.submit()

	case "up":
		if line, ok := m.history.Prev(m.input.Value()); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case "down":
		if line, ok := m.history.Next(); ok {
			m.input.SetValue(line)
			m.input.CursorEnd()
		}
		return m, nil

	case "pgup", "pgdown":
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the current input line
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if line == "" {
		return m, nil
	}
	m.history.Add(line)

	switch line {
	case "exit", "quit":
		m.quitting = true
		return m, tea.Quit
	case "clear":
		m.entries = nil
		m.updateViewportContent()
		return m, nil
	case "help":
		m.entries = append(m.entries, entry{kind: entryInfo, input: line, text: m.registry.Usage()})
		m.updateViewportContent()
		return m, nil
	}

	inv, err := m.registry.Dispatch(line)
	result := render.FromInvocation(line, inv, err)
	if err != nil {
		m.logger.LogError(err)
	} else {
		m.logger.Debug("Command parsed", mdwlog.Fields{
			"command": inv.Command,
			"request": inv.Request.String(),
		})
	}

	m.entries = append(m.entries, entry{kind: entryResult, input: line, result: result})
	m.updateViewportContent()
	return m, nil
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderEntries())
	m.viewport.GotoBottom()
}

func (m Model) renderEntries() string {
	var b strings.Builder
	for _, e := range m.entries {
		b.WriteString(EchoStyle.Render(m.prompt + e.input))
		b.WriteString("\n")

		switch {
		case e.kind == entryInfo:
			b.WriteString(InfoStyle.Render(e.text))
		case e.result.OK:
			b.WriteString(SuccessStyle.Render(fmt.Sprintf("✓ index %d, %s = %s",
				e.result.Index, e.result.Filter, e.result.Value)))
		default:
			b.WriteString(ErrorStyle.Render(CodeStyle.Render(e.result.Code) + " " +
				strings.TrimRight(e.result.Message, "\n ")))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// View implements tea.Model
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Initializing..."
	}

	header := LogoStyle.Render("findpay shell")
	if m.sessionID != "" {
		header += " " + SessionStyle.Render("session "+m.sessionID)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.viewport.View(),
		InputPanelStyle.Width(m.width-2).Render(m.input.View()),
		HelpStyle.Render(helpText),
	)
}

// Results returns the results shown so far, oldest first
func (m Model) Results() []render.Result {
	var out []render.Result
	for _, e := range m.entries {
		if e.kind == entryResult {
			out = append(out, e.result)
		}
	}
	return out
}

// Run starts the shell on the given terminal streams and blocks until it exits
func Run(m Model, in io.Reader, out io.Writer) error {
	p := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	_, err := p.Run()
	return err
}
