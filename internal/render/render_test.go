package render

import (
	"strings"
	"testing"

	"webterm/internal/errors"
	"webterm/internal/history"
	"webterm/internal/shell"
	"webterm/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestResultText(t *testing.T) {
	assert.Equal(t, "/about/", Result(shell.Text("/about/")))
}

func TestResultError(t *testing.T) {
	r := shell.Fail(errors.NewShellError(errors.CommandNotFound, "", "sudo", ""))
	assert.Equal(t, "command not found: sudo", Result(r))
}

func TestResultListing(t *testing.T) {
	r := shell.Ok(shell.Content{Rows: []types.Row{
		{Name: "..", Kind: types.RowDirectory},
		{Name: ".", Kind: types.RowDirectory},
		{Name: "bio.txt", Kind: types.RowFile},
	}})
	assert.Equal(t, "..\n.\nbio.txt", Result(r))
}

func TestResultTable(t *testing.T) {
	r := shell.Ok(shell.Content{
		Text: "available commands:",
		Rows: []types.Row{
			{Name: "ls", Detail: "list"},
			{Name: "theme", Detail: "change theme"},
		},
	})
	out := Result(r)
	lines := strings.Split(out, "\n")
	assert.Equal(t, "available commands:", lines[0])
	assert.Contains(t, out, "ls")
	assert.Contains(t, out, "change theme")
	for _, line := range lines {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestEntry(t *testing.T) {
	e := history.Entry{ID: 3, Request: "pwd", Result: shell.Text("/")}
	assert.Equal(t, "$ pwd\n/", Entry("$ ", e))
	assert.Equal(t, "[3 ok] pwd\n/", Numbered(e))

	empty := history.Entry{Request: "x", Result: shell.Text("")}
	assert.Equal(t, "$ x", Entry("$ ", empty))

	failed := history.Entry{ID: 1, Request: "cd x", Result: shell.Fail(errors.NewShellError(errors.DirectoryNotFound, "cd", "x", ""))}
	assert.Equal(t, "[1 err] cd x\ncd: x: no such directory", Numbered(failed))
}
