package table

import (
	"sort"
	"strconv"
	"strings"
)

// SortRows stably sorts rows in place by the given column. When both cells
// parse fully as numbers they are ordered numerically, otherwise they fall
// back to a case-insensitive string comparison. Cells beyond a ragged row's
// end compare as empty strings.
func SortRows(rows []Row, col int, desc bool) {
	sort.SliceStable(rows, func(i, j int) bool {
		c := compareCells(rows[i].Field(col), rows[j].Field(col))
		if desc {
			return c > 0
		}
		return c < 0
	})
}

// compareCells returns -1, 0 or 1 ordering a before, equal to, or after b.
func compareCells(a, b string) int {
	na, errA := strconv.ParseFloat(strings.TrimSpace(a), 64)
	nb, errB := strconv.ParseFloat(strings.TrimSpace(b), 64)
	if a != "" && b != "" && errA == nil && errB == nil {
		switch {
		case na < nb:
			return -1
		case na > nb:
			return 1
		}
		return 0
	}
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}
