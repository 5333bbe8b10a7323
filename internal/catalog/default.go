package catalog

// defaultDirs is the built-in directory tree.
var defaultDirs = map[string][]string{
	"/":                {"about/", "projects/", "work/", "random/"},
	"/about/":          {"bio.txt", "contact.txt", "skills.md"},
	"/projects/":       {"webterm.md", "dotfiles.txt", "games/"},
	"/projects/games/": {"snake.txt", "tetris.txt"},
	"/work/":           {"resume.md", "experience.txt"},
	"/random/":         {"quotes.txt", "fortune.txt", "hello.txt"},
}

var defaultFiles = map[string]string{
	"/about/bio.txt": "Hi, I'm Raghu. I write software, mostly backends and tools,\n" +
		"and occasionally a terminal that lives in a browser.",
	"/about/contact.txt": "email:  raghu@example.com\n" +
		"github: github.com/raghu\n" +
		"web:    https://example.com",
	"/about/skills.md": "# Skills\n\n" +
		"- Go, Rust, TypeScript\n" +
		"- distributed systems\n" +
		"- terminals, compilers and other text-shaped things\n",
	"/projects/webterm.md": "# webterm\n\n" +
		"A fake shell with a tiny read-only filesystem.\n\n" +
		"Try `ls`, `cd`, `cat` and `theme matrix`.\n",
	"/projects/dotfiles.txt":       "My editor, shell and tmux configuration. Nothing to see here.",
	"/projects/games/snake.txt":    "A snake game in 200 lines. The snake always wins.",
	"/projects/games/tetris.txt":   "Tetris clone. The long piece never comes.",
	"/work/resume.md":              "# Resume\n\n## Experience\n\nSee experience.txt.\n",
	"/work/experience.txt":         "2021-now   backend engineer\n2018-2021  tools engineer\n2016-2018  intern, coffee operator",
	"/random/quotes.txt":           "\"Talk is cheap. Show me the code.\" - Linus Torvalds",
	"/random/fortune.txt":          "You will find a bug in the code you wrote yesterday.",
	"/random/hello.txt":            "hello, world",
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultDirs, defaultFiles)
	if err != nil {
		// the built-in tables are covered by tests
		panic(err)
	}
	return c
}
