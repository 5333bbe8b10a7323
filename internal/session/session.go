// Package session drives one interactive shell: it owns the session's
// navigator, theme and history and turns submitted lines into history entries.
package session

import (
	"fmt"
	"strings"

	"webterm/internal/catalog"
	"webterm/internal/history"
	"webterm/internal/log"
	"webterm/internal/navigator"
	"webterm/internal/shell"
	"webterm/pkg/types"

	"github.com/google/uuid"
)

// ClearCommand wipes the history. It is matched before tokenizing, so it
// cannot take arguments or be aliased.
const ClearCommand = "clear"

// Options configures new sessions
type Options struct {
	User         string
	Host         string
	Theme        types.Theme
	HistoryLimit int
	Tables       shell.Tables
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		User:   "guest",
		Host:   "webterm",
		Theme:  types.ThemeDark,
		Tables: shell.DefaultTables(),
	}
}

// Session is the private state of one user. Submit must be called from a
// single goroutine; sessions share nothing mutable with each other.
type Session struct {
	id      string
	user    string
	host    string
	nav     *navigator.Navigator
	theme   *shell.ThemeState
	history *history.Log
	interp  *shell.Interpreter
	logger  *log.Logger
}

// New creates a session at the root of c.
func New(c *catalog.Catalog, opts Options) *Session {
	if opts.User == "" {
		opts.User = "guest"
	}
	if opts.Host == "" {
		opts.Host = "webterm"
	}
	if opts.Tables.Help == nil && opts.Tables.Themes == nil {
		opts.Tables = shell.DefaultTables()
	}

	id := uuid.NewString()
	return &Session{
		id:      id,
		user:    opts.User,
		host:    opts.Host,
		nav:     navigator.New(c),
		theme:   shell.NewThemeState(opts.Theme),
		history: history.New(opts.HistoryLimit),
		interp:  shell.NewInterpreter(opts.Tables),
		logger:  log.LogWithFields(log.F("session", id), log.F("user", opts.User)),
	}
}

// Submit runs one input line. A line that trims to "clear" wipes the
// history and reports cleared; anything else is dispatched and appended.
func (s *Session) Submit(line string) (entry history.Entry, cleared bool) {
	if strings.TrimSpace(line) == ClearCommand {
		s.history.Clear()
		s.logger.Debug("history cleared")
		return history.Entry{}, true
	}

	words := shell.Tokenize(line)
	result := s.interp.Dispatch(words, shell.Env{Nav: s.nav, Theme: s.theme})
	entry = s.history.Append(line, result)

	if s.logger != nil {
		l := s.logger.With(log.F("id", entry.ID))
		if len(words) > 0 {
			l = l.With(log.F("command", words[0]))
		}
		if !result.OK() {
			l = l.With(log.F("kind", result.Kind().String()))
		}
		l.Debug("command executed")
	}
	return entry, false
}

// ID returns the session id
func (s *Session) ID() string {
	return s.id
}

// User returns the session user name
func (s *Session) User() string {
	return s.user
}

// Cwd returns the current absolute directory
func (s *Session) Cwd() string {
	return s.nav.Current()
}

// Theme returns the selected theme
func (s *Session) Theme() types.Theme {
	return s.theme.Current()
}

// History returns the retained history entries in order
func (s *Session) History() []history.Entry {
	return s.history.Entries()
}

// HistoryLen returns the number of retained entries
func (s *Session) HistoryLen() int {
	return s.history.Len()
}

// Dropped returns how many entries the history limit has discarded since the
// last clear
func (s *Session) Dropped() int {
	return s.history.Dropped()
}

// Prompt returns the prompt shown before the input line, e.g. "guest@webterm:/about/$ ".
func (s *Session) Prompt() string {
	return fmt.Sprintf("%s@%s:%s$ ", s.user, s.host, s.nav.Current())
}

// Commands returns the command words known to the interpreter, plus clear
func (s *Session) Commands() []string {
	return append(s.interp.Commands(), ClearCommand)
}

// Suggestions returns complete input lines for the current directory: every
// command word, then "cd" for each child directory and "cat" for each file.
func (s *Session) Suggestions() []string {
	out := s.Commands()
	children, err := s.nav.Catalog().ListChildren(s.nav.Current())
	if err != nil {
		return out
	}
	for _, child := range children {
		switch {
		case child == "":
		case strings.HasSuffix(child, "/"):
			out = append(out, "cd "+child)
		default:
			out = append(out, "cat "+child)
		}
	}
	return out
}
