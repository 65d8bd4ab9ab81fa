package main

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/olekukonko/tablewriter"
	"github.com/peterbourgon/ff/v4"
	"github.com/peterbourgon/ff/v4/ffhelp"

	"github.com/zombor/facturas/internal/batch"
	"github.com/zombor/facturas/internal/history"
	"github.com/zombor/facturas/internal/invoice"
	"github.com/zombor/facturas/internal/prompt"
	"github.com/zombor/facturas/internal/scanning"
	"github.com/zombor/facturas/internal/tabular"
)

//go:embed VERSION.txt
var versionFile string

var version = strings.TrimSpace(versionFile)

const (
	exitOK      = 0
	exitError   = 1
	exitAborted = 130
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout))
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	fs := ff.NewFlagSet("facturas")
	var (
		output       = fs.String('o', "output", "", "CSV output path (default facturas_<client>_<timestamp>.csv)")
		clientFlag   = fs.StringLong("client", "", "Client name; prompted for when empty")
		xlsxPath     = fs.StringLong("xlsx", "", "Also write the dataset to this XLSX file")
		amountWindow = fs.IntLong("amount-window", invoice.DefaultAmountWindow, "Trailing characters searched for amounts")
		historyPath  = fs.StringLong("history", "", "Run history database path (disabled when empty)")
		listHistory  = fs.BoolLong("list-history", "Print recorded runs and exit")
		showRun      = fs.StringLong("show-run", "", "Print the recorded run with this ID and exit")
		showVersion  = fs.BoolLong("version", "Show version information")
	)

	if err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("FACTURAS"),
	); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs, "facturas [FLAGS] <source_folder>"))
		if errors.Is(err, ff.ErrHelp) {
			return exitOK
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return exitError
	}

	if *showVersion {
		fmt.Fprintln(stdout, version)
		return exitOK
	}

	var recorder *history.Recorder
	if *historyPath != "" {
		db, err := history.NewBoltDB(*historyPath)
		if err != nil {
			slog.Error("Failed to open run history", "path", *historyPath, "error", err)
			return exitError
		}
		defer db.Close()
		recorder = history.NewRecorder(db)
	}

	if *listHistory || *showRun != "" {
		if recorder == nil {
			slog.Error("--list-history and --show-run require --history")
			return exitError
		}
		if *showRun != "" {
			return showHistoryRun(stdout, recorder, *showRun)
		}
		return printHistory(stdout, recorder)
	}

	if len(fs.GetArgs()) != 1 {
		fmt.Fprintf(os.Stderr, "%s\n", ffhelp.Flags(fs, "facturas [FLAGS] <source_folder>"))
		fmt.Fprintln(os.Stderr, "error: exactly one source folder is required")
		return exitError
	}
	folder := fs.GetArgs()[0]

	source, err := batch.NewLocalFolder(folder)
	if err != nil {
		slog.Error("Source folder not available", "folder", folder, "error", err)
		return exitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := strings.TrimSpace(*clientFlag)
	if client == "" {
		client, err = prompt.ClientName(ctx, stdin, stdout)
		switch {
		case errors.Is(err, prompt.ErrAborted):
			slog.Info("Cancelled")
			return exitAborted
		case err != nil:
			slog.Error("Client name required", "error", err)
			return exitError
		}
	}

	service := batch.NewService(source, scanning.NewFitz(), invoice.Builder{AmountWindow: *amountWindow})

	slog.Info("Processing folder", "folder", folder, "client", client)
	dataset, report, err := service.Run(ctx, client)
	switch {
	case errors.Is(err, context.Canceled):
		slog.Info("Cancelled", "processed", report.Processed)
		return exitAborted
	case err != nil:
		slog.Error("Run failed", "processed", report.Processed, "error", err)
		return exitError
	}

	outputPath := *output
	if outputPath == "" {
		outputPath = service.OutputName(client)
	}
	table := dataset.Table()
	if err := tabular.WriteCSV(outputPath, table); err != nil {
		slog.Error("Failed to write CSV", "path", outputPath, "error", err)
		return exitError
	}
	if *xlsxPath != "" {
		if err := tabular.WriteXLSX(*xlsxPath, "Facturas", table, batch.AmountColumns...); err != nil {
			slog.Error("Failed to write XLSX", "path", *xlsxPath, "error", err)
			return exitError
		}
	}

	withTotal := dataset.WithTotal()
	slog.Info("Completed",
		"included", report.Included,
		"processed", report.Processed,
		"skipped", len(report.Skipped),
		"output", outputPath,
	)
	slog.Info("Totals detected",
		"with_total", withTotal,
		"records", dataset.Len(),
		"percent", fmt.Sprintf("%.1f", 100*float64(withTotal)/float64(dataset.Len())),
	)
	printPreview(stdout, dataset)

	if recorder != nil {
		saved, err := recorder.Record(history.Run{
			Client:    client,
			Folder:    folder,
			Output:    outputPath,
			Processed: report.Processed,
			Included:  report.Included,
			WithTotal: withTotal,
		})
		if err != nil {
			// The export already succeeded
			slog.Warn("Failed to record run", "error", err)
		} else {
			slog.Info("Run recorded", "id", saved.ID)
		}
	}

	return exitOK
}

// printPreview prints supplier, client, total and source for every record
func printPreview(w io.Writer, dataset *batch.Dataset) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"supplier", "client", "total", "source_name"})
	for _, r := range dataset.Records() {
		table.Append([]string{r.Supplier, r.Client, batch.FormatAmount(r.Total), r.SourceName})
	}
	table.Render()
}

var historyHeader = []string{"id", "created_at", "client", "included", "processed", "with_total", "output"}

func historyRow(r *history.Run) []string {
	return []string{
		r.ID,
		r.CreatedAt.Format("2006-01-02 15:04:05"),
		r.Client,
		fmt.Sprint(r.Included),
		fmt.Sprint(r.Processed),
		fmt.Sprint(r.WithTotal),
		r.Output,
	}
}

func printHistory(w io.Writer, recorder *history.Recorder) int {
	runs, err := recorder.List()
	if err != nil {
		slog.Error("Failed to list runs", "error", err)
		return exitError
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(historyHeader)
	for _, r := range runs {
		table.Append(historyRow(r))
	}
	table.Render()
	return exitOK
}

func showHistoryRun(w io.Writer, recorder *history.Recorder, id string) int {
	r, err := recorder.Get(id)
	if err != nil {
		slog.Error("Run not available", "id", id, "error", err)
		return exitError
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(historyHeader)
	table.Append(historyRow(r))
	table.Render()
	fmt.Fprintf(w, "folder: %s\n", r.Folder)
	return exitOK
}
