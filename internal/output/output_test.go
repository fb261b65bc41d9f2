package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abiiranathan/csvq/internal/table"
)

var (
	testHeader = table.Row{"name", "age"}
	testRows   = []table.Row{
		{"Ann", "30"},
		{"Bo", "20"},
	}
)

func TestNew_KnownFormats(t *testing.T) {
	for _, format := range []string{"", "table", "csv", "tsv", "json", "markdown", "md", "html", "xml", "excel", "TABLE"} {
		if _, err := New(format, &bytes.Buffer{}, false); err != nil {
			t.Errorf("New(%q) error = %v", format, err)
		}
	}
}

func TestNew_UnknownFormat(t *testing.T) {
	if _, err := New("yaml", &bytes.Buffer{}, false); err == nil {
		t.Error("New(\"yaml\") succeeded, want error")
	}
}

func TestCSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(testHeader, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "name,age\nAnn,30\nBo,20\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_QuotesSpecialFields(t *testing.T) {
	var buf bytes.Buffer
	rows := []table.Row{{"Smith, John", `said "hi"`}}
	if err := NewCSVFormatter(&buf).Format(table.Row{"name", "note"}, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"Smith, John"`) {
		t.Errorf("comma field not quoted: %q", buf.String())
	}
	if !strings.Contains(buf.String(), `"said ""hi"""`) {
		t.Errorf("quote field not escaped: %q", buf.String())
	}
}

func TestTSVFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTSVFormatter(&buf).Format(testHeader, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "name\tage\nAnn\t30\nBo\t20\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestCSVFormatter_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(nil, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if strings.HasPrefix(buf.String(), "name") {
		t.Errorf("header written despite nil header: %q", buf.String())
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(testHeader, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	want := "[\n  {\"name\": \"Ann\", \"age\": \"30\"},\n  {\"name\": \"Bo\", \"age\": \"20\"}\n]\n"
	if buf.String() != want {
		t.Errorf("Format() = %q, want %q", buf.String(), want)
	}
}

func TestJSONFormatter_TrimsAndEscapes(t *testing.T) {
	var buf bytes.Buffer
	header := table.Row{" name "}
	rows := []table.Row{{` say "hi" `}}
	if err := NewJSONFormatter(&buf).Format(header, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"name": "say \"hi\""`) {
		t.Errorf("Format() = %q, want trimmed key and escaped value", buf.String())
	}
}

func TestJSONFormatter_NoHeaderUsesPositionalKeys(t *testing.T) {
	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(nil, []table.Row{{"x", "y"}}); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"field0": "x"`) {
		t.Errorf("Format() = %q, want positional field keys", buf.String())
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf, false).Format(testHeader, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{"name", "age", "Ann", "30", "(2 rows)"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
}

func TestTableFormatter_Colored(t *testing.T) {
	var buf bytes.Buffer
	if err := NewTableFormatter(&buf, true).Format(testHeader, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "\033[") {
		t.Error("colored output carries no ANSI escape sequences")
	}
}

func TestTableFormatter_SanitizesControlChars(t *testing.T) {
	var buf bytes.Buffer
	rows := []table.Row{{"a\tb\nc"}}
	if err := NewTableFormatter(&buf, false).Format(table.Row{"col"}, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(buf.String(), "a b c") {
		t.Errorf("control characters not flattened:\n%s", buf.String())
	}
}

func TestMarkdownFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewMarkdownFormatter(&buf).Format(testHeader, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "| name | age |") {
		t.Errorf("markdown header row missing:\n%s", out)
	}
	if !strings.Contains(out, "|------|-----|") {
		t.Errorf("markdown separator missing:\n%s", out)
	}
	if !strings.Contains(out, "| Ann  | 30  |") {
		t.Errorf("markdown data row missing:\n%s", out)
	}
}

func TestHTMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	rows := []table.Row{{"<b>Ann</b>", "30"}}
	if err := NewHTMLFormatter(&buf).Format(testHeader, rows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<th>name</th>") {
		t.Errorf("header cell missing:\n%s", out)
	}
	if !strings.Contains(out, "&lt;b&gt;Ann&lt;/b&gt;") {
		t.Errorf("cell text not escaped:\n%s", out)
	}
}

func TestXMLFormatter(t *testing.T) {
	var buf bytes.Buffer
	if err := NewXMLFormatter(&buf).Format(testHeader, testRows); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"<?xml",
		"urn:schemas-microsoft-com:office:spreadsheet",
		`ss:Type="Number">30<`,
		`ss:Type="String">Ann<`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("xml output missing %q:\n%s", want, out)
		}
	}
}

func TestFormatters_RaggedRows(t *testing.T) {
	header := table.Row{"a", "b", "c"}
	rows := []table.Row{{"1"}, {"1", "2", "3", "4"}}

	formats := []string{"table", "csv", "json", "markdown", "html", "xml"}
	for _, format := range formats {
		t.Run(format, func(t *testing.T) {
			f, err := New(format, &bytes.Buffer{}, false)
			if err != nil {
				t.Fatalf("New(%q) error = %v", format, err)
			}
			if err := f.Format(header, rows); err != nil {
				t.Errorf("Format() error = %v on ragged rows", err)
			}
		})
	}
}
