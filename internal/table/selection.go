package table

import (
	"strconv"
	"strings"
)

// Selection is an ordered list of column positions to project. It covers
// both the --select flag (explicit names or indices, possibly reordered)
// and the --hide flag (everything except the hidden indices).
type Selection []int

// ParseSelection turns a spec like "name,age" or "0,2,1" into column
// positions. Numeric tokens are taken as positions directly; anything else
// is resolved against the header. Tokens that resolve to nothing are
// skipped and returned so the caller can warn about them.
func ParseSelection(spec string, header Row) (Selection, []string) {
	var sel Selection
	var skipped []string

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		if idx, err := strconv.Atoi(tok); err == nil && idx >= 0 {
			sel = append(sel, idx)
			continue
		}
		if idx := FindColumn(header, tok); idx >= 0 {
			sel = append(sel, idx)
			continue
		}
		skipped = append(skipped, tok)
	}
	return sel, skipped
}

// Apply projects row to the selected columns. Positions beyond the row's
// end come out as empty strings, so ragged rows stay legal.
func (s Selection) Apply(row Row) Row {
	out := make(Row, len(s))
	for i, idx := range s {
		out[i] = row.Field(idx)
	}
	return out
}

// HiddenSet tracks column positions excluded from output.
type HiddenSet map[int]struct{}

// ParseHidden parses a comma-separated list of column positions such as
// "0,2,5". Tokens that are not non-negative integers are skipped and
// returned for the caller to warn about.
func ParseHidden(spec string) (HiddenSet, []string) {
	hidden := make(HiddenSet)
	var skipped []string

	for _, tok := range strings.Split(spec, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		idx, err := strconv.Atoi(tok)
		if err != nil || idx < 0 {
			skipped = append(skipped, tok)
			continue
		}
		hidden[idx] = struct{}{}
	}
	return hidden, skipped
}

// Visible returns the selection of positions 0..columns-1 that are not
// hidden.
func (h HiddenSet) Visible(columns int) Selection {
	sel := make(Selection, 0, columns)
	for i := 0; i < columns; i++ {
		if _, ok := h[i]; !ok {
			sel = append(sel, i)
		}
	}
	return sel
}
