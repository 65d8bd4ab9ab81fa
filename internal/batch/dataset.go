package batch

import (
	"github.com/zombor/facturas/internal/invoice"
	"github.com/zombor/facturas/internal/tabular"
)

// AmountColumns are the indexes of the numeric columns in invoice.Columns
var AmountColumns = []int{4, 5, 6}

// Dataset is the ordered list of records produced by one run
type Dataset struct {
	records []invoice.Record
}

func (d *Dataset) append(r invoice.Record) {
	d.records = append(d.records, r)
}

// Records returns a copy of the records in processing order
func (d *Dataset) Records() []invoice.Record {
	return append([]invoice.Record(nil), d.records...)
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.records)
}

// WithTotal counts the records that have a detected total
func (d *Dataset) WithTotal() int {
	n := 0
	for _, r := range d.records {
		if r.Total != nil {
			n++
		}
	}
	return n
}

// Table renders the dataset with the fixed invoice column order
func (d *Dataset) Table() *tabular.Table {
	t := &tabular.Table{
		Header: append([]string(nil), invoice.Columns...),
		Rows:   make([][]string, 0, len(d.records)),
	}
	for _, r := range d.records {
		t.Rows = append(t.Rows, r.Row())
	}
	return t
}
