package output

import (
	"bytes"
	"html"
	"io"

	"github.com/abiiranathan/csvq/internal/table"
)

// HTMLFormatter writes a plain <table> fragment with escaped cell text,
// ready for embedding in a page.
type HTMLFormatter struct {
	writer io.Writer
}

// NewHTMLFormatter creates an HTML table formatter.
func NewHTMLFormatter(w io.Writer) *HTMLFormatter {
	return &HTMLFormatter{writer: w}
}

// Format renders the rows as an HTML table.
func (h *HTMLFormatter) Format(header table.Row, rows []table.Row) error {
	n := columnCount(header, rows)

	var buf bytes.Buffer
	buf.WriteString("<table>\n")

	if header != nil {
		buf.WriteString("  <thead>\n    <tr>")
		for col := 0; col < n; col++ {
			buf.WriteString("<th>")
			buf.WriteString(html.EscapeString(fieldName(header, col)))
			buf.WriteString("</th>")
		}
		buf.WriteString("</tr>\n  </thead>\n")
	}

	buf.WriteString("  <tbody>\n")
	for _, row := range rows {
		buf.WriteString("    <tr>")
		for col := 0; col < n; col++ {
			buf.WriteString("<td>")
			buf.WriteString(html.EscapeString(row.Field(col)))
			buf.WriteString("</td>")
		}
		buf.WriteString("</tr>\n")
	}
	buf.WriteString("  </tbody>\n</table>\n")

	_, err := h.writer.Write(buf.Bytes())
	return err
}
