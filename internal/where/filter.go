package where

import (
	"strconv"
	"strings"

	"github.com/abiiranathan/csvq/internal/table"
)

// Resolve binds every clause's column name to its position in header.
// Matching is case-insensitive and ignores surrounding whitespace in the
// header cells. Names that do not appear in the header are returned so the
// caller can warn; the affected clauses simply never match.
//
// Resolve is idempotent: clauses that are already bound are left alone, so
// running it a second time is a no-op.
func (f *Filter) Resolve(header table.Row) []string {
	if f == nil || f.root == nil {
		return nil
	}
	var missing []string
	f.root.resolve(header, &missing)
	return missing
}

// Match reports whether row satisfies the predicate. A nil or empty filter
// matches every row.
func (f *Filter) Match(row table.Row) bool {
	if f == nil || f.root == nil {
		return true
	}
	return f.root.match(row)
}

func (n *logicNode) resolve(header table.Row, missing *[]string) {
	n.left.resolve(header, missing)
	n.right.resolve(header, missing)
}

// match short-circuits: the right subtree is not evaluated when the left
// operand already decides the outcome.
func (n *logicNode) match(row table.Row) bool {
	if n.op == LogicAnd {
		return n.left.match(row) && n.right.match(row)
	}
	return n.left.match(row) || n.right.match(row)
}

func (n *condNode) resolve(header table.Row, missing *[]string) {
	c := n.clause
	if c.index != unresolvedIndex {
		return
	}
	if idx := table.FindColumn(header, c.Column); idx >= 0 {
		c.index = idx
		return
	}
	*missing = append(*missing, c.Column)
}

// match evaluates one clause against one row. Semantic problems never
// error: an unresolved column, a row too short for the resolved index, or a
// non-numeric operand under an ordering operator all make the clause
// evaluate to false.
func (n *condNode) match(row table.Row) bool {
	c := n.clause
	if c.index == unresolvedIndex || c.index >= len(row) {
		return false
	}
	field := strings.TrimSpace(row[c.index])

	switch c.Op {
	case OpContains:
		return strings.Contains(strings.ToLower(field), strings.ToLower(c.Value))
	case OpEquals:
		return strings.EqualFold(field, c.Value)
	case OpNotEquals:
		return !strings.EqualFold(field, c.Value)
	}

	fieldNum, errField := strconv.ParseFloat(field, 64)
	valueNum, errValue := strconv.ParseFloat(strings.TrimSpace(c.Value), 64)
	if errField != nil || errValue != nil {
		return false
	}

	switch c.Op {
	case OpGreater:
		return fieldNum > valueNum
	case OpLess:
		return fieldNum < valueNum
	case OpGreaterEq:
		return fieldNum >= valueNum
	case OpLessEq:
		return fieldNum <= valueNum
	}
	return false
}
