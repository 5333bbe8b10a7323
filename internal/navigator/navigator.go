// Package navigator tracks the current directory of one shell session.
package navigator

import (
	"strings"

	"webterm/internal/catalog"
	"webterm/internal/errors"
)

// Navigator holds the current path as a stack of segments. Segment 0 is
// always "/" and every other segment is "name/", so joining the segments
// yields an absolute directory path that exists in the catalog.
//
// A Navigator belongs to a single session and is not safe for concurrent use.
type Navigator struct {
	catalog  *catalog.Catalog
	segments []string
}

// New creates a navigator positioned at the root of c.
func New(c *catalog.Catalog) *Navigator {
	return &Navigator{
		catalog:  c,
		segments: []string{catalog.Root},
	}
}

// Catalog returns the catalog the navigator resolves against
func (n *Navigator) Catalog() *catalog.Catalog {
	return n.catalog
}

// Current returns the absolute path of the current directory.
func (n *Navigator) Current() string {
	return strings.Join(n.segments, "")
}

// AtRoot reports whether the navigator is at "/"
func (n *Navigator) AtRoot() bool {
	return len(n.segments) == 1
}

// Enter descends into the child directory name of the current directory.
// It returns FileNotDirectory when name is a file in the current directory
// and DirectoryNotFound when there is no such child at all.
func (n *Navigator) Enter(name string) error {
	current := n.Current()
	if name != "" && n.catalog.HasChild(current, name+"/") && n.catalog.IsDir(current+name+"/") {
		n.segments = append(n.segments, name+"/")
		return nil
	}
	if name != "" && n.catalog.HasChild(current, name) {
		return errors.NewShellError(errors.FileNotDirectory, "cd", name, "")
	}
	return errors.NewShellError(errors.DirectoryNotFound, "cd", name, "")
}

// Leave moves to the parent directory. It reports false and leaves the path
// untouched when already at root.
func (n *Navigator) Leave() bool {
	if n.AtRoot() {
		return false
	}
	n.segments = n.segments[:len(n.segments)-1]
	return true
}

// ResetToRoot truncates the path to "/".
func (n *Navigator) ResetToRoot() {
	n.segments = n.segments[:1]
}
