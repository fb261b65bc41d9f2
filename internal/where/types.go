// Package where implements the boolean predicate language used to filter
// rows.
//
// A predicate is a free-text expression such as
//
//	age > 25 AND (status = active OR role contains admin)
//
// Parse compiles it into an AST, Resolve binds the symbolic column names to
// positional indices once a header row is known, and Match tests one data
// row at a time against the resolved tree.
//
// The grammar has two precedence levels with AND binding tighter than OR:
//
//	Expression := Term (OR Term)*
//	Term       := Factor (AND Factor)*
//	Factor     := '(' Expression ')' | Condition
//
// AND and OR are matched case-insensitively and only as whole words, so a
// column named "brand" is never misread. A condition is split on the first
// comparison operator found in a fixed longest-first order: contains, >=,
// <=, !=, >, <, =. The four ordering operators compare numerically; the
// rest compare as case-insensitive text.
//
// Splitting scans for operator substrings rather than tokenizing, so a
// value that itself contains operator-like text (a literal ">" inside a
// column name, " or " inside an unquoted value) can be mis-split. The
// longest-first order removes the common ">=" vs ">" hazard but the
// ambiguity is inherent to the surface syntax.
package where

import (
	"errors"

	"github.com/abiiranathan/csvq/internal/table"
)

// CompareOp identifies the comparison performed by a single clause.
type CompareOp int

const (
	OpContains  CompareOp = iota // case-insensitive substring match
	OpEquals                     // case-insensitive equality
	OpNotEquals                  // case-insensitive inequality
	OpGreater                    // numeric >
	OpLess                       // numeric <
	OpGreaterEq                  // numeric >=
	OpLessEq                     // numeric <=
)

// numeric reports whether the operator requires numeric comparison.
func (op CompareOp) numeric() bool {
	switch op {
	case OpGreater, OpLess, OpGreaterEq, OpLessEq:
		return true
	}
	return false
}

// LogicOp combines two sub-predicates.
type LogicOp int

const (
	LogicAnd LogicOp = iota
	LogicOr
)

// unresolvedIndex marks a clause whose column name has not been bound to a
// header position yet.
const unresolvedIndex = -1

// Clause is a single leaf comparison: column OP value. Column and Value are
// always non-empty after trimming; the parser rejects anything else.
type Clause struct {
	Column  string
	Value   string
	Op      CompareOp
	Numeric bool // true for the four ordering operators

	index int // resolved column position, unresolvedIndex until bound
}

// Index returns the clause's resolved column position and whether it has
// been bound by Resolve.
func (c *Clause) Index() (int, bool) {
	return c.index, c.index != unresolvedIndex
}

// node is implemented by the two AST variants: logicNode combines two
// sub-trees with AND/OR, condNode wraps a single Clause. The tree shape is
// immutable after parsing; only the clause index mutates, once, during
// resolution.
type node interface {
	resolve(header table.Row, missing *[]string)
	match(row table.Row) bool
}

type logicNode struct {
	op    LogicOp
	left  node
	right node
}

type condNode struct {
	clause *Clause
}

// Filter owns one parsed predicate. A nil Filter, or one with no root,
// matches every row.
type Filter struct {
	root node
}

// Parse failure conditions. All of them reject the predicate as a whole; no
// partial filter is ever applied. Callers are expected to log the error and
// continue without filtering rather than abort the run.
var (
	ErrEmptyPredicate = errors.New("empty predicate")
	ErrNoOperator     = errors.New("no comparison operator")
	ErrEmptyColumn    = errors.New("missing column name")
	ErrEmptyValue     = errors.New("missing comparison value")
	ErrMissingOperand = errors.New("missing operand")
	ErrUnmatchedParen = errors.New("mismatched parenthesis")
	ErrTrailingInput  = errors.New("unexpected trailing characters")
)
