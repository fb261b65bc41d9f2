package output

import (
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/abiiranathan/csvq/internal/table"
)

// MarkdownFormatter writes a GitHub-style pipe table.
type MarkdownFormatter struct {
	writer io.Writer
}

// NewMarkdownFormatter creates a markdown table formatter.
func NewMarkdownFormatter(w io.Writer) *MarkdownFormatter {
	return &MarkdownFormatter{writer: w}
}

// Format renders the rows as a pipe table.
func (m *MarkdownFormatter) Format(header table.Row, rows []table.Row) error {
	n := columnCount(header, rows)

	tw := tablewriter.NewWriter(m.writer)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetCenterSeparator("|")
	tw.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})

	if header != nil {
		cells := make([]string, n)
		for i := 0; i < n; i++ {
			cells[i] = fieldName(header, i)
		}
		tw.SetHeader(cells)
	}

	for _, row := range rows {
		cells := pad(row, n)
		for i, cell := range cells {
			cells[i] = sanitizeCell(cell)
		}
		tw.Append(cells)
	}
	tw.Render()
	return nil
}
