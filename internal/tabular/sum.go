package tabular

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidColumn is returned when a column index is out of range
var ErrInvalidColumn = errors.New("invalid column")

// maxInvalidSamples bounds ColumnSummary.Invalid.
const maxInvalidSamples = 5

// Cell is a single value of a column together with its zero-based row.
type Cell struct {
	Row   int
	Value string
}

// ColumnSummary is the result of summing one column.
type ColumnSummary struct {
	ColumnIndex int
	ColumnName  string
	TotalRows   int
	ValidRows   int
	InvalidRows int
	Sum         decimal.Decimal
	// Invalid holds the first few cells that were not numeric
	Invalid []Cell
}

// ParseNumber coerces a cell to a number. Empty and non-numeric cells
// report false.
func ParseNumber(s string) (decimal.Decimal, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// SumColumn sums every numeric cell of column. Cells that do not parse
// are counted as invalid and left out of the sum.
func SumColumn(t *Table, column int) (*ColumnSummary, error) {
	if column < 0 || column >= t.ColumnCount() {
		return nil, fmt.Errorf("%w: %d (valid 0-%d)", ErrInvalidColumn, column, t.ColumnCount()-1)
	}

	summary := &ColumnSummary{
		ColumnIndex: column,
		ColumnName:  t.Header[column],
		Sum:         decimal.Zero,
	}
	for row, v := range t.Column(column) {
		summary.TotalRows++
		n, ok := ParseNumber(v)
		if !ok {
			summary.InvalidRows++
			if len(summary.Invalid) < maxInvalidSamples {
				summary.Invalid = append(summary.Invalid, Cell{Row: row, Value: v})
			}
			continue
		}
		summary.ValidRows++
		summary.Sum = summary.Sum.Add(n)
	}
	return summary, nil
}
