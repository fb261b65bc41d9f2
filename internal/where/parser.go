package where

import (
	"errors"
	"fmt"
	"strings"
)

// operators lists every comparison operator in scan order. The order is
// longest-first and must stay that way: scanning ">" before ">=" would
// split "age>=25" at the first ">" and leave "=25" as the value.
var operators = []struct {
	text string
	op   CompareOp
}{
	{"contains", OpContains},
	{">=", OpGreaterEq},
	{"<=", OpLessEq},
	{"!=", OpNotEquals},
	{">", OpGreater},
	{"<", OpLess},
	{"=", OpEquals},
}

// Parse compiles a predicate string into a Filter. The input is never
// mutated; the parser tracks offsets into the original string.
func Parse(predicate string) (*Filter, error) {
	p := &parser{input: predicate}
	p.skipSpace()
	if p.pos >= len(p.input) {
		return nil, ErrEmptyPredicate
	}

	root, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	p.skipSpace()
	if p.pos < len(p.input) {
		return nil, fmt.Errorf("%w: %q", ErrTrailingInput, p.input[p.pos:])
	}
	return &Filter{root: root}, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
		p.pos++
	}
}

// token consumes tok at the cursor if present, skipping leading whitespace.
// Alphabetic tokens only match as whole words: "AND" does not match inside
// "ANDROID" or "brand".
func (p *parser) token(tok string) bool {
	p.skipSpace()
	end := p.pos + len(tok)
	if end > len(p.input) || !strings.EqualFold(p.input[p.pos:end], tok) {
		return false
	}
	if isWordByte(tok[0]) && end < len(p.input) && isWordByte(p.input[end]) {
		return false
	}
	p.pos = end
	return true
}

// atKeyword reports whether the cursor sits on kw as a whole word, without
// consuming it. Used while scanning condition text for the AND/OR boundary.
func (p *parser) atKeyword(kw string) bool {
	if p.pos > 0 && isWordByte(p.input[p.pos-1]) {
		return false
	}
	end := p.pos + len(kw)
	if end > len(p.input) || !strings.EqualFold(p.input[p.pos:end], kw) {
		return false
	}
	return end == len(p.input) || !isWordByte(p.input[end])
}

// parseExpression parses Term (OR Term)*. OR chains fold left-associatively
// into a left-leaning binary tree.
func (p *parser) parseExpression() (node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.token("OR") {
		right, err := p.parseTerm()
		if err != nil {
			if errors.Is(err, ErrMissingOperand) {
				return nil, fmt.Errorf("%w after OR", ErrMissingOperand)
			}
			return nil, err
		}
		left = &logicNode{op: LogicOr, left: left, right: right}
	}
	return left, nil
}

// parseTerm parses Factor (AND Factor)*. AND binds tighter than OR.
func (p *parser) parseTerm() (node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.token("AND") {
		right, err := p.parseFactor()
		if err != nil {
			if errors.Is(err, ErrMissingOperand) {
				return nil, fmt.Errorf("%w after AND", ErrMissingOperand)
			}
			return nil, err
		}
		left = &logicNode{op: LogicAnd, left: left, right: right}
	}
	return left, nil
}

// parseFactor parses a parenthesized sub-expression or a single condition.
// Condition text runs up to the next top-level AND/OR keyword or
// parenthesis.
func (p *parser) parseFactor() (node, error) {
	if p.token("(") {
		n, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if !p.token(")") {
			return nil, ErrUnmatchedParen
		}
		return n, nil
	}

	p.skipSpace()
	start := p.pos
	for p.pos < len(p.input) {
		ch := p.input[p.pos]
		if ch == '(' || ch == ')' {
			break
		}
		if p.atKeyword("AND") || p.atKeyword("OR") {
			break
		}
		p.pos++
	}

	clause, err := parseCondition(p.input[start:p.pos])
	if err != nil {
		return nil, err
	}
	return &condNode{clause: clause}, nil
}

// parseCondition splits raw condition text like "age > 25" into a Clause.
// The first operator found in the fixed longest-first scan order wins;
// everything before it is the column name, everything after the value.
func parseCondition(raw string) (*Clause, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil, ErrMissingOperand
	}

	for _, cand := range operators {
		idx := indexFold(text, cand.text)
		if idx < 0 {
			continue
		}

		column := strings.TrimSpace(text[:idx])
		value := strings.TrimSpace(text[idx+len(cand.text):])
		if column == "" {
			return nil, fmt.Errorf("%w in condition %q", ErrEmptyColumn, text)
		}
		if value == "" {
			return nil, fmt.Errorf("%w in condition %q", ErrEmptyValue, text)
		}

		return &Clause{
			Column:  column,
			Value:   value,
			Op:      cand.op,
			Numeric: cand.op.numeric(),
			index:   unresolvedIndex,
		}, nil
	}
	return nil, fmt.Errorf("%w in condition %q", ErrNoOperator, text)
}

// indexFold returns the first case-insensitive occurrence of sub in s, or
// -1. Operator text is ASCII, so byte-wise lowering is enough.
func indexFold(s, sub string) int {
	return strings.Index(strings.ToLower(s), sub)
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
