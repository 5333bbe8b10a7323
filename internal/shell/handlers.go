package shell

import (
	"fmt"
	"strings"

	"webterm/internal/errors"
	"webterm/pkg/types"
)

func (i *Interpreter) ls(name string, args []string, env Env) Result {
	if len(args) > 0 {
		return tooManyArgs(name)
	}

	current := env.Nav.Current()
	cat := env.Nav.Catalog()
	children, err := cat.ListChildren(current)
	if err != nil {
		return Fail(errors.NewShellError(errors.PathNotFound, name, current, ""))
	}

	rows := make([]types.Row, 0, len(children)+2)
	if !env.Nav.AtRoot() {
		rows = append(rows, types.Row{Name: "..", Kind: types.RowDirectory})
	}
	rows = append(rows, types.Row{Name: ".", Kind: types.RowDirectory})

	for _, child := range children {
		if child == "" {
			continue
		}
		if strings.HasSuffix(child, "/") {
			rows = append(rows, types.Row{Name: child, Kind: types.RowDirectory})
			continue
		}
		row := types.Row{Name: child, Kind: types.RowFile}
		if content, err := cat.ReadFile(current + child); err == nil {
			row.Size = len(content)
		}
		rows = append(rows, row)
	}

	return Ok(Content{Rows: rows})
}

// cd accepts a single hop: ".", "..", or one child name, each optionally
// followed by a trailing slash.
func (i *Interpreter) cd(name string, args []string, env Env) Result {
	switch {
	case len(args) > 1:
		return tooManyArgs(name)
	case len(args) == 0:
		env.Nav.ResetToRoot()
		return Text("changed to root")
	}

	arg := args[0]
	parts := strings.Split(arg, "/")
	if len(parts) > 2 || (len(parts) == 2 && parts[1] != "") {
		return Fail(errors.NewShellError(errors.DirectoryNotFound, name, arg, "nested paths are not supported"))
	}

	switch target := parts[0]; target {
	case ".":
		return Text("no change")
	case "..":
		if !env.Nav.Leave() {
			return Text("already at root")
		}
	case "":
		return Fail(errors.NewShellError(errors.DirectoryNotFound, name, arg, ""))
	default:
		if err := env.Nav.Enter(target); err != nil {
			var shellErr *errors.ShellError
			if errors.As(err, &shellErr) {
				return Fail(errors.NewShellError(shellErr.Kind(), name, target, ""))
			}
			return Fail(errors.NewShellError(errors.DirectoryNotFound, name, target, ""))
		}
	}

	return Text("changed to " + env.Nav.Current())
}

func (i *Interpreter) pwd(name string, args []string, env Env) Result {
	if len(args) > 0 {
		return tooManyArgs(name)
	}
	return Text(env.Nav.Current())
}

// cat serves both cat and dog. The argument is appended to the current
// directory as-is and looked up in the file table.
func (i *Interpreter) cat(name string, args []string, env Env) Result {
	switch {
	case len(args) > 1:
		return tooManyArgs(name)
	case len(args) == 0:
		return Fail(errors.NewShellError(errors.FileNotFound, name, "", "missing file operand"))
	}

	file := args[0]
	content, err := env.Nav.Catalog().ReadFile(env.Nav.Current() + file)
	if err != nil {
		return Fail(errors.NewShellError(errors.FileNotFound, name, file, ""))
	}

	format := FormatPlain
	if strings.HasSuffix(file, ".md") {
		format = FormatMarkdown
	}
	return Ok(Content{Text: content, Format: format})
}

func (i *Interpreter) help(name string, args []string, env Env) Result {
	if len(args) > 0 {
		return tooManyArgs(name)
	}
	return Ok(Content{
		Text: "available commands:",
		Rows: append([]types.Row(nil), i.tables.Help...),
	})
}

func (i *Interpreter) exit(name string, args []string, env Env) Result {
	if len(args) > 0 {
		return tooManyArgs(name)
	}
	return Text("there is no exiting. you live here now.")
}

func (i *Interpreter) theme(name string, args []string, env Env) Result {
	switch {
	case len(args) > 1:
		return tooManyArgs(name)
	case len(args) == 0:
		return Text(fmt.Sprintf("theme is set to %s", env.Theme.Current()))
	}

	arg := args[0]
	if arg == "help" {
		return Ok(Content{Text: "available themes:", Rows: i.themeRows()})
	}

	t, ok := types.ParseTheme(arg)
	if !ok {
		return Ok(Content{
			Text: fmt.Sprintf("theme not found: %s", arg),
			Rows: i.themeRows(),
		})
	}
	if !env.Theme.Set(t) {
		return Text(fmt.Sprintf("theme already set to %s", t))
	}
	return Text(fmt.Sprintf("theme set to %s", t))
}

func (i *Interpreter) themeRows() []types.Row {
	return append([]types.Row(nil), i.tables.Themes...)
}
