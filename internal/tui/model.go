// Package tui is the Bubble Tea front end of a session: a scrollback
// viewport over the history and a prompt line that submits commands.
package tui

import (
	"strings"

	"webterm/internal/session"
	"webterm/pkg/types"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// Model is the terminal view of one session
type Model struct {
	session  *session.Session
	renderer *lipgloss.Renderer
	keys     types.KeyMap
	styles   Styles
	theme    types.Theme

	input    textinput.Model
	viewport viewport.Model
	help     help.Model

	width  int
	height int

	// prompts remembers the prompt each entry was submitted under
	prompts map[uint64]string

	// submitted lines for up/down recall
	recall    []string
	recallPos int

	markdown      *glamour.TermRenderer
	markdownWidth int
	markdownTheme types.Theme
}

// New creates the view of sess. A nil renderer uses lipgloss' default.
func New(sess *session.Session, r *lipgloss.Renderer) *Model {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.ShowSuggestions = true
	ti.Focus()

	m := &Model{
		session:  sess,
		renderer: r,
		keys:     types.DefaultKeyMap(),
		input:    ti,
		viewport: viewport.New(defaultWidth, defaultHeight),
		help:     help.New(),
		prompts:  make(map[uint64]string),
	}
	m.applyTheme()
	m.resize(defaultWidth, defaultHeight)
	m.syncInput()
	m.refresh()
	return m
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Submit):
		m.submit()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)
		return m, nil
	case key.Matches(msg, m.keys.PrevInput):
		m.recallStep(-1)
		return m, nil
	case key.Matches(msg, m.keys.NextInput):
		m.recallStep(1)
		return m, nil
	case key.Matches(msg, m.keys.ClearInput):
		m.input.Reset()
		return m, nil
	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	case key.Matches(msg, m.keys.GotoTop):
		m.viewport.GotoTop()
		return m, nil
	case key.Matches(msg, m.keys.GotoBottom):
		m.viewport.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit runs the input line through the session. exit is an ordinary
// command here; only the quit binding ends the program.
func (m *Model) submit() {
	line := m.input.Value()
	prompt := m.session.Prompt()
	m.input.Reset()

	entry, cleared := m.session.Submit(line)
	if cleared {
		m.prompts = make(map[uint64]string)
	} else {
		m.prompts[entry.ID] = prompt
	}

	if strings.TrimSpace(line) != "" {
		m.recall = append(m.recall, line)
	}
	m.recallPos = len(m.recall)

	if m.session.Theme() != m.theme {
		m.applyTheme()
	}
	m.syncInput()
	m.refresh()
}

func (m *Model) recallStep(delta int) {
	if len(m.recall) == 0 {
		return
	}
	pos := m.recallPos + delta
	switch {
	case pos < 0:
		pos = 0
	case pos >= len(m.recall):
		m.recallPos = len(m.recall)
		m.input.Reset()
		return
	}
	m.recallPos = pos
	m.input.SetValue(m.recall[pos])
	m.input.CursorEnd()
}

func (m *Model) applyTheme() {
	m.theme = m.session.Theme()
	m.styles = NewStyles(m.renderer, m.theme)
	m.input.PromptStyle = m.styles.Prompt
	m.input.TextStyle = m.styles.Input
	m.input.PlaceholderStyle = m.styles.Muted
	m.input.CompletionStyle = m.styles.Muted
	m.help.Styles.ShortKey = m.styles.Muted.Bold(true)
	m.help.Styles.ShortDesc = m.styles.Muted
	m.help.Styles.FullKey = m.styles.Muted.Bold(true)
	m.help.Styles.FullDesc = m.styles.Muted
}

// syncInput updates the prompt and completions after the session changed
func (m *Model) syncInput() {
	m.input.Prompt = m.session.Prompt()
	m.input.SetSuggestions(m.session.Suggestions())
	m.input.Width = max(m.width-lipgloss.Width(m.input.Prompt)-1, 1)
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	// title, input line and help footer
	chrome := 2 + lipgloss.Height(m.help.View(m.keys))
	m.viewport.Width = width
	m.viewport.Height = max(height-chrome, 1)
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
}

// refresh re-renders the scrollback and pins it to the bottom
func (m *Model) refresh() {
	retained := make(map[uint64]bool, len(m.prompts))
	for _, e := range m.session.History() {
		retained[e.ID] = true
	}
	for id := range m.prompts {
		if !retained[id] {
			delete(m.prompts, id)
		}
	}
	m.viewport.SetContent(m.scrollback())
	m.viewport.GotoBottom()
}

// Session returns the session driven by the model
func (m *Model) Session() *session.Session {
	return m.session
}
