package shell

import "strings"

// Tokenize splits a raw input line into words separated by runs of
// whitespace. Blank input yields an empty slice.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	if fields == nil {
		return []string{}
	}
	return fields
}
