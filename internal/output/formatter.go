// Package output renders filtered rows in the supported serialization
// formats.
//
// Supported formats:
//   - table: ASCII box table with optional per-column colors (default)
//   - csv, tsv: delimited text
//   - json: array of objects keyed by the header, keys in column order
//   - markdown: pipe table
//   - html: a plain <table> fragment
//   - xml: Excel 2003 SpreadsheetML workbook
//
// Column selection and hiding happen upstream, so formatters only ever see
// the visible columns.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/abiiranathan/csvq/internal/table"
)

// Formatter writes a header row plus data rows in a specific format.
// A nil header means the input had none; formatters that need field names
// fall back to positional ones.
type Formatter interface {
	Format(header table.Row, rows []table.Row) error
}

// New returns the formatter registered for the given format name.
func New(format string, w io.Writer, colored bool) (Formatter, error) {
	switch strings.ToLower(format) {
	case "", "table":
		return NewTableFormatter(w, colored), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "tsv":
		return NewTSVFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "markdown", "md":
		return NewMarkdownFormatter(w), nil
	case "html":
		return NewHTMLFormatter(w), nil
	case "xml", "excel":
		return NewXMLFormatter(w), nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// columnCount returns the widest row so ragged input still renders every
// cell.
func columnCount(header table.Row, rows []table.Row) int {
	n := len(header)
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// fieldName returns the trimmed header cell for col, or a positional
// fallback when the input had no header.
func fieldName(header table.Row, col int) string {
	if col < len(header) {
		if name := strings.TrimSpace(header[col]); name != "" {
			return name
		}
	}
	return fmt.Sprintf("field%d", col)
}

// sanitizeCell flattens control characters that would break line-oriented
// layouts.
func sanitizeCell(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\t', '\n', '\r':
			return ' '
		}
		return r
	}, s)
}

// pad returns row extended with empty cells up to n fields.
func pad(row table.Row, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = row.Field(i)
	}
	return out
}
