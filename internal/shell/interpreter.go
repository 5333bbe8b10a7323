// Package shell implements the command interpreter: tokenizing input,
// dispatching the first word to a handler and producing a Result.
//
// Handlers are pure functions of their arguments and the session state
// passed in Env. Nothing here renders, logs or performs I/O.
package shell

import (
	"sort"

	"webterm/internal/errors"
	"webterm/internal/navigator"
)

// Env is the session state a handler may read or mutate.
type Env struct {
	Nav   *navigator.Navigator
	Theme *ThemeState
}

type handlerFunc func(i *Interpreter, name string, args []string, env Env) Result

// Interpreter maps command words to handlers. It holds no per-session state
// and may be shared by many sessions.
type Interpreter struct {
	tables   Tables
	handlers map[string]handlerFunc
}

// NewInterpreter creates an interpreter that displays the given tables.
func NewInterpreter(tables Tables) *Interpreter {
	return &Interpreter{
		tables: tables,
		handlers: map[string]handlerFunc{
			"ls":    (*Interpreter).ls,
			"cd":    (*Interpreter).cd,
			"pwd":   (*Interpreter).pwd,
			"cat":   (*Interpreter).cat,
			"dog":   (*Interpreter).cat,
			"help":  (*Interpreter).help,
			"exit":  (*Interpreter).exit,
			"theme": (*Interpreter).theme,
		},
	}
}

// Commands returns the dispatchable command words, sorted.
func (i *Interpreter) Commands() []string {
	names := make([]string, 0, len(i.handlers))
	for name := range i.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute tokenizes line and dispatches it.
func (i *Interpreter) Execute(line string, env Env) Result {
	return i.Dispatch(Tokenize(line), env)
}

// Dispatch runs the handler selected by words[0]. An empty word list or an
// unknown command yields CommandNotFound and leaves env untouched.
func (i *Interpreter) Dispatch(words []string, env Env) Result {
	if len(words) == 0 {
		return Fail(errors.NewShellError(errors.CommandNotFound, "", "", ""))
	}
	h, ok := i.handlers[words[0]]
	if !ok {
		return Fail(errors.NewShellError(errors.CommandNotFound, "", words[0], ""))
	}
	return h(i, words[0], words[1:], env)
}

func tooManyArgs(name string) Result {
	return Fail(errors.NewShellError(errors.ExtraParametersPassed, name, "", ""))
}
