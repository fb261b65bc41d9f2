package output

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/abiiranathan/csvq/internal/table"
)

// columnColors cycles per visible column: cyan, yellow, magenta, green,
// blue, then the bright variants, then red.
var columnColors = []tablewriter.Colors{
	{tablewriter.FgCyanColor},
	{tablewriter.FgYellowColor},
	{tablewriter.FgMagentaColor},
	{tablewriter.FgGreenColor},
	{tablewriter.FgBlueColor},
	{tablewriter.FgHiRedColor},
	{tablewriter.FgHiGreenColor},
	{tablewriter.FgHiYellowColor},
	{tablewriter.FgHiBlueColor},
	{tablewriter.FgHiMagentaColor},
	{tablewriter.FgHiCyanColor},
	{tablewriter.FgRedColor},
}

// TableFormatter renders an ASCII box table with a row-count footer.
type TableFormatter struct {
	writer  io.Writer
	colored bool
}

// NewTableFormatter creates the default table formatter. When colored is
// true each column is rendered in its own ANSI color.
func NewTableFormatter(w io.Writer, colored bool) *TableFormatter {
	return &TableFormatter{writer: w, colored: colored}
}

// Format renders the table and a trailing row count.
func (t *TableFormatter) Format(header table.Row, rows []table.Row) error {
	n := columnCount(header, rows)

	tw := tablewriter.NewWriter(t.writer)
	tw.SetAutoWrapText(false)
	tw.SetAutoFormatHeaders(false)

	if header != nil {
		cells := make([]string, n)
		for i := 0; i < n; i++ {
			cells[i] = fieldName(header, i)
		}
		tw.SetHeader(cells)
	}

	if t.colored && n > 0 {
		colors := make([]tablewriter.Colors, n)
		for i := range colors {
			colors[i] = columnColors[i%len(columnColors)]
		}
		tw.SetColumnColor(colors...)
		if header != nil {
			headerColors := make([]tablewriter.Colors, n)
			for i := range headerColors {
				headerColors[i] = tablewriter.Colors{tablewriter.Bold}
			}
			tw.SetHeaderColor(headerColors...)
		}
	}

	for _, row := range rows {
		cells := pad(row, n)
		for i, cell := range cells {
			cells[i] = sanitizeCell(cell)
		}
		tw.Append(cells)
	}
	tw.Render()

	_, err := fmt.Fprintf(t.writer, "(%d rows)\n", len(rows))
	return err
}
