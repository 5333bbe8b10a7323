package main

import (
	"bytes"
	"testing"

	alsrt "github.com/alecthomas/assert"
)

func TestVersionCmd(t *testing.T) {
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	alsrt.NoError(t, cmd.Execute())
	alsrt.Contains(t, out.String(), "webterm "+version)
}
