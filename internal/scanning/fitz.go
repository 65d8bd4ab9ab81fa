package scanning

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Fitz implements the TextExtractor interface using MuPDF
type Fitz struct{}

// NewFitz creates a new Fitz extractor
func NewFitz() *Fitz {
	return &Fitz{}
}

// ExtractText reads the text layer of a PDF. Failures are reported as
// ErrUnsupported, ErrMalformedDocument or ErrNoText.
func (f *Fitz) ExtractText(path string) (text string, err error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("opening document: %w", err)
	}

	// MuPDF can panic on badly broken files
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrMalformedDocument, r)
		}
	}()

	doc, err := fitz.New(path)
	if err != nil {
		return "", fmt.Errorf("%w: opening PDF: %v", ErrMalformedDocument, err)
	}
	defer doc.Close()

	var b strings.Builder
	for n := 0; n < doc.NumPage(); n++ {
		page, err := doc.Text(n)
		if err != nil {
			return "", fmt.Errorf("%w: reading page %d: %v", ErrMalformedDocument, n+1, err)
		}
		b.WriteString(page)
		b.WriteString("\n")
	}

	text = b.String()
	if strings.TrimSpace(text) == "" {
		return "", ErrNoText
	}
	return text, nil
}
