package tui

import (
	"webterm/internal/config"
	"webterm/pkg/types"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles of one theme, bound to a renderer so SSH
// sessions get the colour profile of their own terminal.
type Styles struct {
	Title     lipgloss.Style
	Status    lipgloss.Style
	Prompt    lipgloss.Style
	Input     lipgloss.Style
	Output    lipgloss.Style
	Error     lipgloss.Style
	Directory lipgloss.Style
	File      lipgloss.Style
	Detail    lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles builds the styles for t. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer, t types.Theme) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	p := config.PaletteFor(t)

	return Styles{
		Title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.Background)).
			Background(lipgloss.Color(p.Prompt)).
			Padding(0, 1),
		Status: r.NewStyle().
			Foreground(lipgloss.Color(p.Muted)).
			Padding(0, 1),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color(p.Prompt)).
			Bold(true),
		Input: r.NewStyle().
			Foreground(lipgloss.Color(p.Foreground)),
		Output: r.NewStyle().
			Foreground(lipgloss.Color(p.Foreground)),
		Error: r.NewStyle().
			Foreground(lipgloss.Color(p.Error)),
		Directory: r.NewStyle().
			Foreground(lipgloss.Color(p.Directory)).
			Bold(true),
		File: r.NewStyle().
			Foreground(lipgloss.Color(p.File)),
		Detail: r.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
		Muted: r.NewStyle().
			Foreground(lipgloss.Color(p.Muted)),
	}
}

// markdownStyle maps a theme to a glamour standard style
func markdownStyle(t types.Theme) string {
	switch t {
	case types.ThemeLight:
		return "light"
	case types.ThemeDracula:
		return "dracula"
	default:
		return "dark"
	}
}
