package scanning

import "errors"

var (
	// ErrNoText is returned when a document has no extractable text layer.
	ErrNoText = errors.New("no text extracted")

	// ErrMalformedDocument is returned when a document cannot be opened or decoded.
	ErrMalformedDocument = errors.New("malformed document")

	// ErrUnsupported is returned for file types the extractor cannot read.
	ErrUnsupported = errors.New("unsupported document type")
)

// TextExtractor defines the interface for document text extraction
type TextExtractor interface {
	// ExtractText returns the raw text of every page, joined by newlines.
	// Each call opens and closes its own document.
	ExtractText(path string) (string, error)
}
