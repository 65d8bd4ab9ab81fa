package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ErrFileNotFound is returned when the tabular file does not exist
var ErrFileNotFound = errors.New("file not found")

// EncodeCSV writes t as UTF-8 with a byte-order mark, header first.
func EncodeCSV(w io.Writer, t *Table) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)

	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	if err := cw.WriteAll(t.Rows); err != nil {
		return fmt.Errorf("writing rows: %w", err)
	}
	if err := bw.Close(); err != nil {
		return fmt.Errorf("flushing: %w", err)
	}
	return nil
}

// DecodeCSV reads a delimited file whose first record is the header.
// A leading byte-order mark is dropped and ragged rows are accepted.
func DecodeCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing csv: %w", err)
	}
	if len(records) == 0 {
		return &Table{}, nil
	}
	return &Table{Header: records[0], Rows: records[1:]}, nil
}

// WriteCSV writes t to path, replacing any existing file.
func WriteCSV(path string, t *Table) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()
	return EncodeCSV(f, t)
}

// ReadCSV reads the table stored at path.
func ReadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return DecodeCSV(f)
}
