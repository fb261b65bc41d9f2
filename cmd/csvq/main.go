// Command csvq queries and pretty-prints tabular files.
//
// It reads CSV, TSV or Parquet input, filters rows with a free-text where
// clause (e.g. "age > 25 AND (status = active OR role contains admin)"),
// optionally sorts and selects columns, and serializes the result as an
// ASCII table, CSV, TSV, JSON, Markdown, HTML or Excel XML.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/abiiranathan/csvq/internal/config"
	"github.com/abiiranathan/csvq/internal/output"
	"github.com/abiiranathan/csvq/internal/reader"
	"github.com/abiiranathan/csvq/internal/table"
	"github.com/abiiranathan/csvq/internal/where"
)

// options collects the flag and config surface of one invocation.
type options struct {
	header     bool
	skipHeader bool
	color      bool
	comment    string
	delimiter  string
	hide       string
	pattern    string
	whereStr   string
	selectStr  string
	format     string
	sortCol    string
	sortDesc   bool
	limit      int
	configPath string
}

func main() {
	flags := pflag.NewFlagSet("csvq", pflag.ExitOnError)
	var opt options

	flags.BoolVar(&opt.header, "header", true, "The input file has a header row")
	flags.BoolVarP(&opt.skipHeader, "skip-header", "s", false, "Skip the header row")
	flags.BoolVarP(&opt.color, "color", "C", false, "Color each column in table output")
	flags.StringVarP(&opt.comment, "comment", "c", "", "Comment character; lines starting with it are skipped")
	flags.StringVarP(&opt.delimiter, "delimiter", "d", "", `Field delimiter (use '\t' for tab)`)
	flags.StringVar(&opt.hide, "hide", "", "Comma-separated column indices to hide (e.g. 0,2,5)")
	flags.StringVarP(&opt.pattern, "filter", "f", "", "Show only rows containing this pattern")
	flags.StringVarP(&opt.whereStr, "where", "w", "", "Filter rows with a condition (e.g. 'age > 25 AND status = active')")
	flags.StringVarP(&opt.selectStr, "select", "S", "", "Select and order columns (e.g. 'name,age' or '0,2,1')")
	flags.StringVarP(&opt.format, "output", "o", "", "Output format: table, csv, tsv, json, markdown, html, xml")
	flags.StringVarP(&opt.sortCol, "sort", "b", "", "Sort by column name or index")
	flags.BoolVarP(&opt.sortDesc, "desc", "D", false, "Sort in descending order")
	flags.IntVarP(&opt.limit, "limit", "n", 0, "Limit number of output rows (0 = unlimited)")
	flags.StringVar(&opt.configPath, "config", "", "Path to a YAML config file")

	flags.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Query and format CSV, TSV or Parquet files.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -w 'age > 25 AND status = active' data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -o json -S name,age -b age data.csv\n", os.Args[0])
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Error: missing input file argument\n\n")
		flags.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(opt.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	mergeConfig(&opt, cfg, flags)

	// Colors only make sense on a terminal.
	opt.color = opt.color && isatty.IsTerminal(os.Stdout.Fd())

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if err := run(opt, flags.Arg(0), os.Stdout, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// mergeConfig fills in options the user did not set on the command line
// from the config file.
func mergeConfig(opt *options, cfg *config.Config, flags *pflag.FlagSet) {
	if !flags.Changed("output") {
		opt.format = cfg.Format
	}
	if !flags.Changed("color") {
		opt.color = cfg.Color
	}
	if !flags.Changed("delimiter") {
		opt.delimiter = cfg.Delimiter
	}
	if !flags.Changed("comment") {
		opt.comment = cfg.Comment
	}
	if !flags.Changed("limit") {
		opt.limit = cfg.Limit
	}
}

// run executes the whole pipeline: read, filter, sort, project, format.
func run(opt options, path string, w io.Writer, logger *slog.Logger) error {
	if opt.skipHeader {
		opt.header = false
	}

	rows, err := reader.Read(path, reader.Options{
		Delimiter: parseDelimiter(opt.delimiter),
		Comment:   firstRune(opt.comment),
	})
	if err != nil {
		return err
	}
	if opt.skipHeader && len(rows) > 0 {
		rows = rows[1:]
	}
	if len(rows) == 0 {
		return errors.New("no rows in input")
	}

	var header table.Row
	data := rows
	if opt.header {
		header = rows[0]
		data = rows[1:]
	}

	// A malformed where clause disables filtering; it never aborts the run.
	var filter *where.Filter
	if opt.whereStr != "" {
		filter, err = where.Parse(opt.whereStr)
		if err != nil {
			logger.Warn("ignoring where clause", "error", err)
			filter = nil
		} else if header != nil {
			for _, name := range filter.Resolve(header) {
				logger.Warn("column in where clause not found in header", "column", name)
			}
		}
	}

	filtered := make([]table.Row, 0, len(data))
	for _, row := range data {
		if !table.MatchesPattern(row, opt.pattern) {
			continue
		}
		if !filter.Match(row) {
			continue
		}
		filtered = append(filtered, row)
	}
	matched, total := len(filtered), len(data)

	if opt.sortCol != "" {
		if idx := resolveColumn(opt.sortCol, header); idx >= 0 {
			table.SortRows(filtered, idx, opt.sortDesc)
		} else {
			logger.Warn("could not resolve sort column, sorting skipped", "column", opt.sortCol)
		}
	}

	if sel := buildSelection(opt, header, data, logger); sel != nil {
		if header != nil {
			header = sel.Apply(header)
		}
		for i, row := range filtered {
			filtered[i] = sel.Apply(row)
		}
	}

	if opt.limit > 0 && len(filtered) > opt.limit {
		filtered = filtered[:opt.limit]
	}

	formatter, err := output.New(opt.format, w, opt.color)
	if err != nil {
		logger.Warn("unknown output format, using table", "format", opt.format)
		formatter = output.NewTableFormatter(w, opt.color)
	}
	if err := formatter.Format(header, filtered); err != nil {
		return err
	}

	if isMarkdown(opt.format) && (opt.pattern != "" || filter != nil) {
		fmt.Fprintf(w, "\nFiltered: %d/%d rows matched\n", matched, total)
	}
	return nil
}

// buildSelection turns --select or --hide into a column projection.
// --select wins when both are given.
func buildSelection(opt options, header table.Row, data []table.Row, logger *slog.Logger) table.Selection {
	if opt.selectStr != "" {
		sel, skipped := table.ParseSelection(opt.selectStr, header)
		for _, tok := range skipped {
			logger.Warn("column not found, skipping", "column", tok)
		}
		if len(sel) == 0 {
			return nil
		}
		return sel
	}

	if opt.hide != "" {
		hidden, skipped := table.ParseHidden(opt.hide)
		for _, tok := range skipped {
			logger.Warn("invalid column index, skipping", "token", tok)
		}
		columns := len(header)
		for _, row := range data {
			if len(row) > columns {
				columns = len(row)
			}
		}
		return hidden.Visible(columns)
	}
	return nil
}

// resolveColumn interprets spec as a 0-based index or a header column name.
func resolveColumn(spec string, header table.Row) int {
	if idx, err := parseIndex(spec); err == nil {
		return idx
	}
	return table.FindColumn(header, spec)
}

func parseIndex(s string) (int, error) {
	idx, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return -1, err
	}
	if idx < 0 {
		return -1, fmt.Errorf("negative index %d", idx)
	}
	return idx, nil
}

// parseDelimiter converts the flag text into a single rune, accepting the
// two-character escape "\t" because a literal tab is painful to pass on the
// command line.
func parseDelimiter(s string) rune {
	if s == `\t` {
		return '\t'
	}
	return firstRune(s)
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return 0
}

func isMarkdown(format string) bool {
	f := strings.ToLower(format)
	return f == "markdown" || f == "md"
}
