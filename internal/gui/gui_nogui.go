//go:build nogui

package gui

import (
	"fmt"

	"webterm/internal/session"
)

// Run is a stub implementation for builds with GUI disabled
func Run(_ *session.Session) error {
	return fmt.Errorf("GUI not available in this build")
}

// Available returns whether the GUI is available in this build
func Available() bool {
	return false
}
