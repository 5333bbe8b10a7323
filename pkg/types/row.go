package types

// RowKind tags a row so presentation layers can style it
type RowKind int

const (
	// RowText is a plain (name, description) row
	RowText RowKind = iota
	// RowDirectory is a directory listing entry
	RowDirectory
	// RowFile is a file listing entry
	RowFile
)

// Row is a single line of a tabular result such as ls, help or theme help.
type Row struct {
	Name   string
	Detail string
	Kind   RowKind
	// Size is the content length in bytes for file rows, zero otherwise
	Size int
}

// IsDir reports whether the row is a directory entry
func (r Row) IsDir() bool {
	return r.Kind == RowDirectory
}
