// Package testutils holds fixtures shared by package tests.
package testutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

// SmallCatalog is a valid catalog file with one directory and two files
const SmallCatalog = `directories:
  /: [docs/, motd.txt]
  /docs/: [readme.md]
files:
  /motd.txt: be nice
  /docs/readme.md: "# docs"
`

// CreateTestFilesWithContent creates test files with specific content
func CreateTestFilesWithContent(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644)
		require.NoError(t, err)
	}
}

// WriteFile writes content to name inside a fresh temp dir and returns its path
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	dir := t.TempDir()
	CreateTestFilesWithContent(t, dir, map[string]string{name: content})
	return filepath.Join(dir, name)
}

// StripANSI removes ANSI escape sequences from a string
func StripANSI(str string) string {
	return ansi.Strip(str)
}
