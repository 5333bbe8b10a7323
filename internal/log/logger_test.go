package log

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"webterm/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.Info("info message")
	assert.Contains(t, buf.String(), "level=info")
	assert.Contains(t, buf.String(), "info message")
	buf.Reset()

	l.Warn("warn message")
	assert.Contains(t, buf.String(), "level=warning")
	buf.Reset()

	l.Error("error message")
	assert.Contains(t, buf.String(), "level=error")
	buf.Reset()

	l.Infof("formatted %s", "message")
	assert.Contains(t, buf.String(), "formatted message")
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	SetDebug(false)
	l.Debug("debug message")
	assert.Empty(t, buf.String())

	SetDebug(true)
	l.Debug("debug message")
	assert.Contains(t, buf.String(), "level=debug")
	assert.Contains(t, buf.String(), "debug message")
	buf.Reset()

	l.Debugf("formatted %s", "debug")
	assert.Contains(t, buf.String(), "formatted debug")

	SetDebug(false)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithLevel("warn"))

	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.Warn("shown")
	assert.Contains(t, buf.String(), "shown")

	err := Configure(WithLevel("loud"))
	assert.Error(t, err)
}

func TestStructuredLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf))

	l.With(F("key1", "value1"), F("key2", 123)).Info("structured message")
	output := buf.String()
	assert.Contains(t, output, "structured message")
	assert.Contains(t, output, "key1=value1")
	assert.Contains(t, output, "key2=123")
	buf.Reset()

	l.With(F("session", "abc")).With(F("command", "ls")).Info("chained fields")
	assert.Contains(t, buf.String(), "session=abc")
	assert.Contains(t, buf.String(), "command=ls")
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(WithOutput(&buf), WithJSON())

	l.With(F("key1", "value1")).Info("json message")

	var logEntry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &logEntry))
	assert.Equal(t, "json message", logEntry["message"])
	assert.Equal(t, "info", logEntry["level"])
	assert.Equal(t, "value1", logEntry["key1"])
}

func TestErrorLogging(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(WithOutput(&buf)))
	defer func() { _ = Configure() }()

	shellErr := errors.NewShellError(errors.FileNotFound, "cat", "nope.txt", "")
	LogWithError(shellErr).Error("command failed")
	assert.Contains(t, buf.String(), "kind=FileNotFound")
	assert.Contains(t, buf.String(), "no such file")
	assert.Contains(t, buf.String(), "command=cat")
	assert.Contains(t, buf.String(), "subject=nope.txt")
	buf.Reset()

	configErr := errors.NewConfigError("port out of range", "server.port", errors.InvalidConfig, nil)
	LogWithError(configErr).Error("bad config")
	assert.Contains(t, buf.String(), "kind=InvalidConfig")
	assert.Contains(t, buf.String(), "param=server.port")
	buf.Reset()

	// Nil errors leave the logger untouched
	LogWithError(nil).Error("nil error test")
	assert.Contains(t, buf.String(), "nil error test")
	assert.NotContains(t, buf.String(), "error=")
	buf.Reset()

	LogWithFields(F("user", "guest")).Warn("field test")
	assert.Contains(t, buf.String(), "user=guest")
}

func TestPackageLevelHelpers(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Configure(WithOutput(&buf)))
	defer func() { _ = Configure() }()

	Info("starting %s", "webterm")
	assert.Contains(t, buf.String(), "starting webterm")
	buf.Reset()

	Warn("catalog reload failed", "boom")
	assert.Contains(t, buf.String(), "catalog reload failed: boom")
	buf.Reset()

	Error("reload", "catalog.yaml", 3)
	assert.Contains(t, buf.String(), "reload: catalog.yaml 3")
	assert.NotContains(t, buf.String(), "EXTRA")
	buf.Reset()

	Warn("rate 100%")
	assert.Contains(t, buf.String(), "rate 100%")
	assert.NotContains(t, buf.String(), "MISSING")
	buf.Reset()

	Errorf("code %d", 7)
	assert.Contains(t, buf.String(), "code 7")
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webterm.log")
	require.NoError(t, Configure(WithFile(path)))
	defer func() { _ = Configure() }()

	Info("to file")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to file")

	err = Configure(WithFile(filepath.Join(t.TempDir(), "missing", "dir", "x.log")))
	assert.Error(t, err)
}
