// Package table holds the positional row model shared by the reader, filter
// and output layers.
//
// A Row is nothing more than an ordered slice of string fields. The first row
// of a file usually acts as the header; everything that needs to translate a
// column name into a position goes through FindColumn so the trimming and
// case-folding rules stay in one place.
package table

import "strings"

// Row is an ordered, 0-indexed sequence of string fields. Rows may be
// ragged: a data row can carry fewer fields than the header implies.
type Row []string

// Field returns the field at position idx, or "" when the row is too short.
func (r Row) Field(idx int) string {
	if idx >= 0 && idx < len(r) {
		return r[idx]
	}
	return ""
}

// FindColumn returns the position of the named column in header. Header
// cells are trimmed of surrounding whitespace and compared
// case-insensitively. Returns -1 when the column is not present.
func FindColumn(header Row, name string) int {
	for i, cell := range header {
		if strings.EqualFold(strings.TrimSpace(cell), name) {
			return i
		}
	}
	return -1
}

// MatchesPattern reports whether any field of row contains pattern,
// case-insensitively. An empty pattern matches every row.
func MatchesPattern(row Row, pattern string) bool {
	if pattern == "" {
		return true
	}
	p := strings.ToLower(pattern)
	for _, field := range row {
		if strings.Contains(strings.ToLower(field), p) {
			return true
		}
	}
	return false
}
