package main

import (
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/zombor/facturas/internal/tabular"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

const usage = "sumador [FLAGS] <csv_file> [column]"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := ff.NewFlagSet("sumador")
	var (
		columnFlag  = fs.String('c', "column", "", "Column index (0-based), alternative to the positional argument")
		debug       = fs.Bool('d', "debug", "Echo per-row diagnostics")
		showVersion = fs.BoolLong("version", "Show version information")
	)

	flagArgs, positional := splitArgs(args)
	if err := ff.Parse(fs, flagArgs,
		ff.WithEnvVarPrefix("SUMADOR"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs, usage))
		if errors.Is(err, ff.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if *showVersion {
		fmt.Println(version)
		return 0
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	path, column, err := resolveArgs(append(positional, fs.GetArgs()...), *columnFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs, usage))
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	table, err := tabular.ReadCSV(path)
	if err != nil {
		if errors.Is(err, tabular.ErrFileNotFound) {
			slog.Error("File not found", "file", path)
		} else {
			slog.Error("Failed to read file", "file", path, "error", err)
		}
		return 1
	}

	slog.Debug("Loaded file", "file", path, "columns", strings.Join(table.Header, ", "), "rows", len(table.Rows))

	summary, err := tabular.SumColumn(table, column)
	if err != nil {
		slog.Error("Invalid column", "column", column, "valid", fmt.Sprintf("0-%d", table.ColumnCount()-1))
		return 1
	}

	if *debug {
		echoRows(table, column)
	}
	printSummary(summary)
	return 0
}

// valueFlags are the spellings of the only flag that takes a value
var valueFlags = map[string]bool{"-c": true, "--column": true}

// splitArgs separates flags from positional arguments so flags may follow
// the file and column. Negative numbers are positional unless they are the
// value of a flag. Everything after "--" is positional.
func splitArgs(args []string) (flags, positional []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "--":
			return flags, append(positional, args[i+1:]...)
		case !strings.HasPrefix(arg, "-") || arg == "-" || isInteger(arg):
			positional = append(positional, arg)
		case valueFlags[arg] && i+1 < len(args):
			// --column=-5 keeps a negative value attached to its flag
			flags = append(flags, "--column="+args[i+1])
			i++
		default:
			flags = append(flags, arg)
		}
	}
	return flags, positional
}

func isInteger(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

// resolveArgs takes the file from the first positional argument and the
// column from the second one, falling back to the flag. The index is not
// range-checked here.
func resolveArgs(args []string, columnFlag string) (string, int, error) {
	if len(args) == 0 || len(args) > 2 {
		return "", 0, errors.New("expected <csv_file> [column]")
	}
	raw := columnFlag
	if len(args) == 2 {
		raw = args[1]
	}
	if raw == "" {
		return "", 0, errors.New("a column index is required")
	}
	column, err := strconv.Atoi(raw)
	if err != nil {
		return "", 0, fmt.Errorf("column must be an integer: %q", raw)
	}
	return args[0], column, nil
}

func echoRows(table *tabular.Table, column int) {
	for row, cell := range table.Column(column) {
		if n, ok := tabular.ParseNumber(cell); ok {
			slog.Debug("Row", "row", row, "value", cell, "number", n.String())
		} else {
			slog.Debug("Row", "row", row, "value", cell, "number", "ignored")
		}
	}
}

func printSummary(s *tabular.ColumnSummary) {
	p := message.NewPrinter(language.English)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"column", "index", "rows", "summed", "ignored", "total"})
	table.Append([]string{
		s.ColumnName,
		strconv.Itoa(s.ColumnIndex),
		p.Sprintf("%d", s.TotalRows),
		p.Sprintf("%d", s.ValidRows),
		p.Sprintf("%d", s.InvalidRows),
		p.Sprintf("%.2f", s.Sum.InexactFloat64()),
	})
	table.Render()

	for _, c := range s.Invalid {
		slog.Debug("Ignored cell", "row", c.Row, "value", c.Value)
	}
}
