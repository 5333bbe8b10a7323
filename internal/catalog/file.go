package catalog

import (
	"os"

	"webterm/internal/errors"

	"gopkg.in/yaml.v3"
)

// Document is the on-disk YAML form of a catalog.
//
//	directories:
//	  /: [about/, notes.txt]
//	  /about/: [bio.txt]
//	files:
//	  /notes.txt: hello
//	  /about/bio.txt: hi
type Document struct {
	Directories map[string][]string `yaml:"directories"`
	Files       map[string]string   `yaml:"files"`
}

// Load parses and validates a YAML catalog.
func Load(data []byte) (*Catalog, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewConfigError("error parsing catalog", "", errors.InvalidCatalog, err)
	}
	return New(doc.Directories, doc.Files)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "error reading catalog file")
	}
	return Load(data)
}

// Document returns a copy of the catalog tables for serialisation.
func (c *Catalog) Document() Document {
	doc := Document{
		Directories: make(map[string][]string, len(c.dirs)),
		Files:       make(map[string]string, len(c.files)),
	}
	for p, children := range c.dirs {
		doc.Directories[p] = append([]string(nil), children...)
	}
	for p, content := range c.files {
		doc.Files[p] = content
	}
	return doc
}

// Marshal encodes the catalog as YAML.
func (c *Catalog) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c.Document())
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal catalog")
	}
	return data, nil
}
