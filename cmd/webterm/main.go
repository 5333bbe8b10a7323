package main

import (
	"fmt"
	"os"

	"webterm/internal/errors"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps an error to the process exit status: 2 for a broken config
// or catalog, 1 otherwise.
func exitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.IsInvalidConfig(err), errors.IsInvalidCatalog(err):
		return 2
	default:
		return 1
	}
}
