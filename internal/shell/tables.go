package shell

import "webterm/pkg/types"

// Tables is the static display data injected into an Interpreter.
type Tables struct {
	// Help rows shown by the help command
	Help []types.Row
	// Themes rows shown by "theme help" and after an unknown theme
	Themes []types.Row
}

// DefaultTables returns the built-in help and theme tables.
func DefaultTables() Tables {
	themes := make([]types.Row, 0, len(types.Themes()))
	for _, t := range types.Themes() {
		themes = append(themes, types.Row{Name: t.String(), Detail: t.Description()})
	}

	return Tables{
		Help: []types.Row{
			{Name: "ls", Detail: "list the contents of the current directory"},
			{Name: "cd", Detail: "change directory: cd <dir>, cd .., cd"},
			{Name: "pwd", Detail: "print the current directory"},
			{Name: "cat", Detail: "print a file: cat <file>"},
			{Name: "dog", Detail: "like cat, but friendlier"},
			{Name: "theme", Detail: "show or change the theme: theme <name>, theme help"},
			{Name: "clear", Detail: "clear the terminal"},
			{Name: "help", Detail: "show this help"},
			{Name: "exit", Detail: "try to leave"},
		},
		Themes: themes,
	}
}
