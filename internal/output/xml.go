package output

import (
	"bytes"
	"encoding/xml"
	"io"
	"strconv"
	"strings"

	"github.com/abiiranathan/csvq/internal/table"
)

const spreadsheetNS = "urn:schemas-microsoft-com:office:spreadsheet"

// XMLFormatter writes an Excel 2003 SpreadsheetML workbook, the XML dialect
// Excel opens directly as a single-sheet spreadsheet. Cells whose text
// parses fully as a number are tagged ss:Type="Number" so Excel treats them
// numerically.
//
// The markup is assembled by hand: encoding/xml cannot marshal the ss:
// prefixed attributes without inventing its own namespace declarations.
type XMLFormatter struct {
	writer io.Writer
}

// NewXMLFormatter creates a SpreadsheetML formatter.
func NewXMLFormatter(w io.Writer) *XMLFormatter {
	return &XMLFormatter{writer: w}
}

// Format renders the rows as a single-worksheet workbook.
func (x *XMLFormatter) Format(header table.Row, rows []table.Row) error {
	n := columnCount(header, rows)

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	buf.WriteString("<?mso-application progid=\"Excel.Sheet\"?>\n")
	buf.WriteString(`<Workbook xmlns="` + spreadsheetNS + `" xmlns:ss="` + spreadsheetNS + "\">\n")
	buf.WriteString("  <Worksheet ss:Name=\"Sheet1\">\n    <Table>\n")

	if header != nil {
		buf.WriteString("      <Row>\n")
		for col := 0; col < n; col++ {
			writeCell(&buf, "String", fieldName(header, col))
		}
		buf.WriteString("      </Row>\n")
	}

	for _, row := range rows {
		buf.WriteString("      <Row>\n")
		for col := 0; col < n; col++ {
			value := row.Field(col)
			if trimmed := strings.TrimSpace(value); trimmed != "" && isNumber(trimmed) {
				writeCell(&buf, "Number", trimmed)
			} else {
				writeCell(&buf, "String", value)
			}
		}
		buf.WriteString("      </Row>\n")
	}

	buf.WriteString("    </Table>\n  </Worksheet>\n</Workbook>\n")

	_, err := x.writer.Write(buf.Bytes())
	return err
}

func writeCell(buf *bytes.Buffer, typ, value string) {
	buf.WriteString(`        <Cell><Data ss:Type="` + typ + `">`)
	xml.EscapeText(buf, []byte(value))
	buf.WriteString("</Data></Cell>\n")
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}
