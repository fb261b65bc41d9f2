package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"

	"github.com/abiiranathan/csvq/internal/table"
)

// ReadParquet loads every row of a parquet file. The first returned row is
// a synthesized header of column names in schema order; each data row
// carries the stringified values in the same order. The entire file is
// loaded into memory, matching the CSV path.
func ReadParquet(path string) ([]table.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make(table.Row, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	rows := []table.Row{columns}

	pr := parquet.NewReader(pqFile)
	defer pr.Close()

	for {
		record := make(map[string]interface{})
		if err := pr.Read(&record); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}

		row := make(table.Row, len(columns))
		for i, name := range columns {
			row[i] = formatValue(record[name])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// formatValue renders a parquet value the way it would appear in a CSV
// cell.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case bool:
		return strconv.FormatBool(val)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}
