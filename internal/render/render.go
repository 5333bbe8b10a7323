// Package render projects interpreter results to plain text.
package render

import (
	"fmt"
	"strings"

	"webterm/internal/history"
	"webterm/internal/shell"
	"webterm/pkg/types"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Result renders r as plain text: the error message on failure, otherwise
// the text followed by the rows.
func Result(r shell.Result) string {
	if !r.OK() {
		return r.Err.Error()
	}

	var parts []string
	if r.Content.Text != "" {
		parts = append(parts, r.Content.Text)
	}
	if len(r.Content.Rows) > 0 {
		parts = append(parts, Rows(r.Content.Rows))
	}
	return strings.Join(parts, "\n")
}

// Rows renders rows as a borderless two-column table, or as one name per
// line when no row has a detail.
func Rows(rows []types.Row) string {
	hasDetail := false
	for _, r := range rows {
		if r.Detail != "" {
			hasDetail = true
			break
		}
	}

	if !hasDetail {
		names := make([]string, 0, len(rows))
		for _, r := range rows {
			names = append(names, r.Name)
		}
		return strings.Join(names, "\n")
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false)
	for _, r := range rows {
		t.Row(r.Name, r.Detail)
	}

	lines := strings.Split(t.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

// Entry renders one history entry with its prompt line.
func Entry(prompt string, e history.Entry) string {
	out := Result(e.Result)
	if out == "" {
		return prompt + e.Request
	}
	return prompt + e.Request + "\n" + out
}

// Numbered renders an entry prefixed by its id, as used by script mode.
func Numbered(e history.Entry) string {
	out := Result(e.Result)
	status := "ok"
	if !e.Result.OK() {
		status = "err"
	}
	return fmt.Sprintf("[%d %s] %s\n%s", e.ID, status, e.Request, out)
}
