package batch

import (
	"log/slog"
	"strings"

	"github.com/zombor/facturas/internal/invoice"
	"github.com/zombor/facturas/internal/scanning"
)

// Document is the normalized text of one source document. Err is set
// when the text could not be extracted.
type Document struct {
	Name string
	Text string
	Err  error
}

// Skip records a document that did not produce a record
type Skip struct {
	Name   string
	Reason error
}

// Report summarizes a run
type Report struct {
	Processed int
	Included  int
	Skipped   []Skip
}

// Aggregator builds one record per document for a single client
type Aggregator struct {
	builder invoice.Builder
	client  string
	dataset *Dataset
	report  Report
}

// NewAggregator creates an Aggregator for client
func NewAggregator(builder invoice.Builder, client string) *Aggregator {
	return &Aggregator{
		builder: builder,
		client:  client,
		dataset: &Dataset{},
	}
}

// Add processes doc. Documents with an extraction error or no text are
// counted and skipped.
func (a *Aggregator) Add(doc Document) (invoice.Record, bool) {
	a.report.Processed++

	reason := doc.Err
	if reason == nil && strings.TrimSpace(doc.Text) == "" {
		reason = scanning.ErrNoText
	}
	if reason != nil {
		slog.Warn("Skipping document", "file", doc.Name, "reason", reason)
		a.report.Skipped = append(a.report.Skipped, Skip{Name: doc.Name, Reason: reason})
		return invoice.Record{}, false
	}

	record := a.builder.Build(doc.Text, doc.Name, a.client)
	a.dataset.append(record)
	a.report.Included++
	return record, true
}

// Dataset returns the records built so far
func (a *Aggregator) Dataset() *Dataset {
	return a.dataset
}

// Report returns the counters so far
func (a *Aggregator) Report() Report {
	r := a.report
	r.Skipped = append([]Skip(nil), a.report.Skipped...)
	return r
}
