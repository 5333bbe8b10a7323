package tui

import (
	"webterm/internal/session"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives sess in the local terminal until the user quits.
func Run(sess *session.Session, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithMouseCellMotion()}, opts...)
	p := tea.NewProgram(New(sess, nil), opts...)
	_, err := p.Run()
	return err
}
