package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/zombor/facturas/internal/invoice"
	"github.com/zombor/facturas/internal/scanning"
)

var (
	// ErrNoDocuments is returned when the source lists no documents
	ErrNoDocuments = errors.New("no documents found")

	// ErrNoRecords is returned when no document produced a record
	ErrNoRecords = errors.New("no valid documents")
)

// TimeSource provides the current time
type TimeSource interface {
	Now() time.Time
}

// defaultTimeSource provides the current time
type defaultTimeSource struct{}

func (t *defaultTimeSource) Now() time.Time {
	return time.Now()
}

// Service runs the extraction over every document of a source
type Service struct {
	source     Source
	extractor  scanning.TextExtractor
	builder    invoice.Builder
	timeSource TimeSource
}

// NewService creates a new Service with the default time source
func NewService(source Source, extractor scanning.TextExtractor, builder invoice.Builder) *Service {
	return &Service{
		source:     source,
		extractor:  extractor,
		builder:    builder,
		timeSource: &defaultTimeSource{},
	}
}

// NewServiceWithDeps creates a new Service with a custom time source for testing
func NewServiceWithDeps(source Source, extractor scanning.TextExtractor, builder invoice.Builder, timeSrc TimeSource) *Service {
	return &Service{
		source:     source,
		extractor:  extractor,
		builder:    builder,
		timeSource: timeSrc,
	}
}

// Run extracts one record per document for client. Unreadable documents
// are skipped and reported; the run fails only when nothing was found,
// nothing could be read, or ctx is cancelled between documents.
func (s *Service) Run(ctx context.Context, client string) (*Dataset, Report, error) {
	paths, err := s.source.List()
	if err != nil {
		return nil, Report{}, fmt.Errorf("discovering documents: %w", err)
	}
	if len(paths) == 0 {
		return nil, Report{}, ErrNoDocuments
	}

	agg := NewAggregator(s.builder, client)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, agg.Report(), fmt.Errorf("run interrupted: %w", err)
		}

		doc := s.load(path)
		if record, ok := agg.Add(doc); ok {
			slog.Info("Processed document",
				"file", doc.Name,
				"total", FormatAmount(record.Total),
				"supplier", record.Supplier,
			)
		}
	}

	report := agg.Report()
	if report.Included == 0 {
		return nil, report, ErrNoRecords
	}
	return agg.Dataset(), report, nil
}

// load extracts and normalizes one document
func (s *Service) load(path string) Document {
	name := filepath.Base(path)
	text, err := s.extractor.ExtractText(path)
	if err != nil {
		return Document{Name: name, Err: err}
	}
	return Document{Name: name, Text: invoice.NormalizeLeadingNoise(text)}
}

// OutputName returns the default export file name for client
func (s *Service) OutputName(client string) string {
	return fmt.Sprintf("facturas_%s_%s.csv", sanitizeName(client), s.timeSource.Now().Format("20060102_150405"))
}

var (
	unsafeNameChars = regexp.MustCompile(`[^\p{L}\p{N}\s\-_]`)
	spaceRuns       = regexp.MustCompile(`\s+`)
)

// sanitizeName makes a client name safe to embed in a file name
func sanitizeName(name string) string {
	name = unsafeNameChars.ReplaceAllString(name, "")
	name = spaceRuns.ReplaceAllString(strings.TrimSpace(name), " ")

	// Truncate to reasonable length
	if r := []rune(name); len(r) > 50 {
		name = string(r[:50])
	}

	if name == "" {
		name = "cliente"
	}
	return name
}

// FormatAmount renders an optional amount with two decimals, or NotDetected
func FormatAmount(v *float64) string {
	if v == nil {
		return invoice.NotDetected
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}
