package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"webterm/internal/catalog"
	"webterm/pkg/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the CLI with a throwaway config file so the user's own
// configuration never leaks into tests.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cfgPath := testutils.WriteFile(t, "config.yaml", "logging:\n  level: error\n")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", cfgPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestRunArguments(t *testing.T) {
	out, err := execute(t, "", "run", "cd about", "pwd", "nope")
	require.NoError(t, err)

	assert.Contains(t, out, "[0 ok] cd about\nchanged to /about/\n")
	assert.Contains(t, out, "[1 ok] pwd\n/about/\n")
	assert.Contains(t, out, "[2 err] nope\ncommand not found: nope\n")
}

func TestRunStdinClear(t *testing.T) {
	out, err := execute(t, "ls\nclear\ncd work\npwd\n", "run")
	require.NoError(t, err)

	assert.Contains(t, out, "[0 ok] ls\n")
	assert.Contains(t, out, "[0 ok] cd work\n")
	assert.Contains(t, out, "[1 ok] pwd\n/work/\n")
	assert.NotContains(t, out, "clear")
}

func TestRunTranscript(t *testing.T) {
	out, err := execute(t, "", "run", "--transcript", "cd about", "pwd", "nope")
	require.NoError(t, err)

	assert.Contains(t, out, "guest@webterm:/$ cd about\nchanged to /about/\n")
	assert.Contains(t, out, "guest@webterm:/about/$ pwd\n/about/\n")
	assert.Contains(t, out, "guest@webterm:/about/$ nope\ncommand not found: nope\n")
	assert.NotContains(t, out, "[0 ok]")
}

func TestRunStrict(t *testing.T) {
	_, err := execute(t, "", "run", "--strict", "ls", "cat missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 command(s) failed")
	assert.Equal(t, 1, exitCode(err))
	assert.Equal(t, 0, exitCode(nil))

	_, err = execute(t, "", "run", "--strict", "ls")
	assert.NoError(t, err)
}

func TestRunUsesConfiguredCatalog(t *testing.T) {
	catPath := testutils.WriteFile(t, "catalog.yaml", testutils.SmallCatalog)
	cfgPath := testutils.WriteFile(t, "config.yaml", "catalog:\n  path: "+catPath+"\nlogging:\n  level: error\n")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", cfgPath, "run", "cat motd.txt", "cd docs", "ls"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "[0 ok] cat motd.txt\nbe nice\n")
	assert.Contains(t, out.String(), "readme.md")
}

func TestCatalogDumpRoundTrips(t *testing.T) {
	out, err := execute(t, "", "catalog", "dump")
	require.NoError(t, err)

	c, err := catalog.Load([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Directories(), c.Directories())
	assert.Equal(t, catalog.Default().Files(), c.Files())
}

func TestCatalogCheck(t *testing.T) {
	good := testutils.WriteFile(t, "good.yaml", testutils.SmallCatalog)
	bad := testutils.WriteFile(t, "bad.yaml", "directories:\n  /: [sub/]\n")

	out, err := execute(t, "", "catalog", "check", good)
	require.NoError(t, err)
	assert.Contains(t, out, "ok (2 directories, 2 files)")

	_, err = execute(t, "", "catalog", "check", bad)
	assert.Error(t, err)
	assert.Equal(t, 2, exitCode(err))

	_, err = execute(t, "", "catalog", "check")
	assert.Error(t, err)
}

func TestCatalogCheckWarnsAboutMissingContent(t *testing.T) {
	path := testutils.WriteFile(t, "gaps.yaml", "directories:\n  /: [a.txt, b.txt]\nfiles:\n  /a.txt: hi\n")

	out, err := execute(t, "", "catalog", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "warning: /b.txt is listed but has no content")
	assert.NotContains(t, out, "/a.txt is listed")
	assert.Contains(t, out, "ok (1 directories, 1 files)")
}

func TestInvalidConfigIsFatal(t *testing.T) {
	cfgPath := testutils.WriteFile(t, "config.yaml", "session:\n  theme: neon\n")

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", cfgPath, "run", "ls"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Equal(t, 2, exitCode(err))
}

func TestServeRejectsBadPort(t *testing.T) {
	_, err := execute(t, "", "serve", "--port", "70000")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "port out of range")
}

func TestConfigInitAndShow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "wrote "+path)

	cmd = NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", path, "config", "init"})
	assert.Error(t, cmd.Execute(), "init must not overwrite without --force")

	out.Reset()
	cmd = NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "config", "show"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "port: 2222")
	assert.Contains(t, out.String(), "theme: dark")
}
