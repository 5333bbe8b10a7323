package shell

import (
	"webterm/internal/errors"
	"webterm/pkg/types"
)

// Format tells presentation layers how to treat Content.Text
type Format int

const (
	// FormatPlain is literal text
	FormatPlain Format = iota
	// FormatMarkdown is file content from a *.md file
	FormatMarkdown
)

// Content is the renderable payload of a successful command: an optional
// line of text followed by an optional table of rows.
type Content struct {
	Text   string
	Rows   []types.Row
	Format Format
}

// Result is either Ok(Content) or Err(kind). Handlers never return both.
type Result struct {
	Content Content
	Err     error
}

// Ok wraps content in a successful result
func Ok(c Content) Result {
	return Result{Content: c}
}

// Text is shorthand for a successful plain-text result
func Text(s string) Result {
	return Ok(Content{Text: s})
}

// Fail wraps an interpreter error
func Fail(err *errors.ShellError) Result {
	return Result{Err: err}
}

// OK reports whether the command succeeded
func (r Result) OK() bool {
	return r.Err == nil
}

// Kind returns the error kind, or errors.Unknown on success
func (r Result) Kind() errors.ErrorKind {
	if r.Err == nil {
		return errors.Unknown
	}
	return errors.KindOf(r.Err)
}
