// Package catalog holds the read-only virtual filesystem served by the shell.
//
// A Catalog maps absolute directory paths (always ending in "/") to their
// ordered children, and absolute file paths to file contents. Child names
// ending in "/" are subdirectories. A Catalog is never mutated after New
// returns, so it can be shared by any number of sessions without locking.
package catalog

import (
	"sort"
	"strings"

	"webterm/internal/errors"
)

// Root is the absolute path of the root directory
const Root = "/"

// Catalog is an immutable directory tree plus file-content table.
type Catalog struct {
	dirs  map[string][]string
	files map[string]string
}

// New validates and copies the given tables into a Catalog.
// Every child ending in "/" must have its own directory key, and the root
// directory must exist.
func New(dirs map[string][]string, files map[string]string) (*Catalog, error) {
	if _, ok := dirs[Root]; !ok {
		return nil, errors.NewConfigError("missing root directory", Root, errors.InvalidCatalog, nil)
	}

	c := &Catalog{
		dirs:  make(map[string][]string, len(dirs)),
		files: make(map[string]string, len(files)),
	}

	for path, children := range dirs {
		if !strings.HasPrefix(path, "/") || !strings.HasSuffix(path, "/") {
			return nil, errors.NewConfigError("directory path must start and end with /", path, errors.InvalidCatalog, nil)
		}
		copied := make([]string, 0, len(children))
		for _, child := range children {
			if child == "" {
				// ls skips empty names
				copied = append(copied, child)
				continue
			}
			name := strings.TrimSuffix(child, "/")
			if name == "" || strings.Contains(name, "/") || name == "." || name == ".." {
				return nil, errors.NewConfigError("invalid child name", path+child, errors.InvalidCatalog, nil)
			}
			if strings.HasSuffix(child, "/") {
				if _, ok := dirs[path+child]; !ok {
					return nil, errors.NewConfigError("directory entry has no catalog key", path+child, errors.InvalidCatalog, nil)
				}
			}
			copied = append(copied, child)
		}
		c.dirs[path] = copied
	}

	for path, content := range files {
		if !strings.HasPrefix(path, "/") || strings.HasSuffix(path, "/") {
			return nil, errors.NewConfigError("invalid file path", path, errors.InvalidCatalog, nil)
		}
		c.files[path] = content
	}

	return c, nil
}

// ListChildren returns the children of the directory at path, in catalog order.
func (c *Catalog) ListChildren(path string) ([]string, error) {
	children, ok := c.dirs[path]
	if !ok {
		return nil, errors.NewShellError(errors.PathNotFound, "", path, "")
	}
	out := make([]string, len(children))
	copy(out, children)
	return out, nil
}

// ReadFile returns the content of the file at path.
func (c *Catalog) ReadFile(path string) (string, error) {
	content, ok := c.files[path]
	if !ok {
		return "", errors.NewShellError(errors.FileNotFound, "", path, "")
	}
	return content, nil
}

// IsDir reports whether path is a directory key
func (c *Catalog) IsDir(path string) bool {
	_, ok := c.dirs[path]
	return ok
}

// HasFile reports whether path has file content
func (c *Catalog) HasFile(path string) bool {
	_, ok := c.files[path]
	return ok
}

// HasChild reports whether name is listed as a child of dir.
func (c *Catalog) HasChild(dir, name string) bool {
	for _, child := range c.dirs[dir] {
		if child == name {
			return true
		}
	}
	return false
}

// Directories returns all directory paths, sorted.
func (c *Catalog) Directories() []string {
	paths := make([]string, 0, len(c.dirs))
	for p := range c.dirs {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Files returns all file paths, sorted.
func (c *Catalog) Files() []string {
	paths := make([]string, 0, len(c.files))
	for p := range c.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
