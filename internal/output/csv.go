package output

import (
	"encoding/csv"
	"io"

	"github.com/abiiranathan/csvq/internal/table"
)

// CSVFormatter writes rows as delimited text.
type CSVFormatter struct {
	writer io.Writer
	comma  rune
}

// NewCSVFormatter creates a comma-separated formatter.
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, comma: ','}
}

// NewTSVFormatter creates a tab-separated formatter.
func NewTSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w, comma: '\t'}
}

// Format writes the header (when present) followed by every row. Quoting
// is handled by encoding/csv.
func (c *CSVFormatter) Format(header table.Row, rows []table.Row) error {
	cw := csv.NewWriter(c.writer)
	cw.Comma = c.comma
	defer cw.Flush()

	if header != nil {
		if err := cw.Write(header); err != nil {
			return err
		}
	}
	for _, row := range rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
