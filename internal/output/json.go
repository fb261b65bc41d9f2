package output

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"

	"github.com/abiiranathan/csvq/internal/table"
)

// JSONFormatter writes an array of objects keyed by the header. Object keys
// keep the column order of the table and both keys and values are trimmed,
// mirroring the table layout. encoding/json maps would randomize key order,
// so objects are assembled by hand with per-string marshaling for escaping.
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a JSON array formatter.
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// Format writes the rows as one JSON array of flat string objects.
func (j *JSONFormatter) Format(header table.Row, rows []table.Row) error {
	n := columnCount(header, rows)

	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, row := range rows {
		buf.WriteString("  {")
		for col := 0; col < n; col++ {
			if col > 0 {
				buf.WriteString(", ")
			}
			key, err := json.Marshal(fieldName(header, col))
			if err != nil {
				return err
			}
			value, err := json.Marshal(strings.TrimSpace(row.Field(col)))
			if err != nil {
				return err
			}
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(value)
		}
		if i < len(rows)-1 {
			buf.WriteString("},\n")
		} else {
			buf.WriteString("}\n")
		}
	}
	buf.WriteString("]\n")

	_, err := j.writer.Write(buf.Bytes())
	return err
}
