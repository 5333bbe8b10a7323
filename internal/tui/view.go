package tui

import (
	"fmt"
	"strings"

	"webterm/internal/history"
	"webterm/internal/shell"
	"webterm/pkg/types"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

const banner = "welcome to webterm. type help to get started."

// View implements tea.Model
func (m *Model) View() string {
	title := m.styles.Title.Render("webterm")
	status := m.styles.Status.Render(m.session.User() + " · " + m.session.Cwd() + " · " + m.theme.String())

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, title, status))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// scrollback renders the banner and every retained history entry
func (m *Model) scrollback() string {
	parts := []string{m.styles.Muted.Render(banner)}
	if n := m.session.Dropped(); n > 0 {
		parts = append(parts, m.styles.Muted.Render(fmt.Sprintf("(%d earlier entries not shown)", n)))
	}
	for _, e := range m.session.History() {
		parts = append(parts, m.renderEntry(e))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderEntry(e history.Entry) string {
	prompt, ok := m.prompts[e.ID]
	if !ok {
		prompt = "$ "
	}
	line := m.styles.Prompt.Render(prompt) + m.styles.Input.Render(e.Request)

	out := m.renderResult(e.Result)
	if out == "" {
		return line
	}
	return line + "\n" + out
}

func (m *Model) renderResult(r shell.Result) string {
	if !r.OK() {
		return m.styles.Error.Render(r.Err.Error())
	}

	var parts []string
	if text := r.Content.Text; text != "" {
		if r.Content.Format == shell.FormatMarkdown {
			parts = append(parts, m.renderMarkdown(text))
		} else {
			parts = append(parts, m.styles.Output.Render(text))
		}
	}
	if len(r.Content.Rows) > 0 {
		parts = append(parts, m.renderRows(r.Content.Rows))
	}
	return strings.Join(parts, "\n")
}

// renderRows lays rows out as a borderless table. Directory listings get a
// size column, help tables a description column.
func (m *Model) renderRows(rows []types.Row) string {
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false)

	for _, r := range rows {
		second := r.Detail
		if r.Kind == types.RowFile {
			second = humanize.Bytes(uint64(r.Size))
		}
		t.Row(r.Name, second)
	}

	t.StyleFunc(func(row, col int) lipgloss.Style {
		if row < 0 || row >= len(rows) {
			return m.styles.Output
		}
		if col == 1 {
			return m.styles.Detail.PaddingLeft(1)
		}
		switch rows[row].Kind {
		case types.RowDirectory:
			return m.styles.Directory
		case types.RowFile:
			return m.styles.File
		default:
			return m.styles.Prompt
		}
	})

	lines := strings.Split(t.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// renderMarkdown renders md with glamour, falling back to plain text.
func (m *Model) renderMarkdown(md string) string {
	width := m.width - 2
	if width < 20 {
		width = 20
	}

	if m.markdown == nil || m.markdownWidth != width || m.markdownTheme != m.theme {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(markdownStyle(m.theme)),
			glamour.WithColorProfile(m.renderer.ColorProfile()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return m.styles.Output.Render(md)
		}
		m.markdown = r
		m.markdownWidth = width
		m.markdownTheme = m.theme
	}

	out, err := m.markdown.Render(md)
	if err != nil {
		return m.styles.Output.Render(md)
	}
	return strings.Trim(out, "\n")
}
