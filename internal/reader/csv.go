// Package reader loads tabular input files into positional rows.
//
// Delimited text (CSV, TSV, or any single-rune separator) is read with
// encoding/csv. Parquet files are read with segmentio/parquet-go and
// flattened to strings in schema field order, so downstream code sees the
// same positional row shape regardless of the input format.
package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/abiiranathan/csvq/internal/table"
)

// Options control how delimited text input is parsed.
type Options struct {
	Delimiter rune // field separator, ',' when zero
	Comment   rune // lines starting with this rune are skipped; zero disables
}

// Read loads path with the reader matching its extension: ".parquet" uses
// the parquet reader, everything else is treated as delimited text.
func Read(path string, opts Options) ([]table.Row, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return ReadParquet(path)
	}
	return ReadCSV(path, opts)
}

// ReadCSV reads every record from a delimited text file. Records may be
// ragged and quoting is lax, so real-world files load without fuss.
func ReadCSV(path string, opts Options) ([]table.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	rows, err := parseCSV(f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return rows, nil
}

func parseCSV(r io.Reader, opts Options) ([]table.Row, error) {
	cr := csv.NewReader(r)
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}
	cr.Comment = opts.Comment
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		rows[i] = table.Row(rec)
	}
	return rows, nil
}
