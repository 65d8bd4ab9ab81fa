package invoice

import "strconv"

// NotDetected is stored in text fields that must never be empty when
// no pattern produced a value.
const NotDetected = "N/D"

// maxTextLen bounds supplier and client names.
const maxTextLen = 80

// Columns is the fixed column order of an exported dataset.
var Columns = []string{
	"invoice_number",
	"invoice_date",
	"supplier",
	"client",
	"subtotal",
	"tax",
	"total",
	"source_name",
}

// Record holds the fields extracted from a single invoice document.
// Amounts are nil when they were not found or could not be parsed,
// so a detected zero stays distinguishable from a miss.
type Record struct {
	InvoiceNumber string   `json:"invoice_number"`
	InvoiceDate   string   `json:"invoice_date"`
	Supplier      string   `json:"supplier"`
	Client        string   `json:"client"`
	Subtotal      *float64 `json:"subtotal"`
	Tax           *float64 `json:"tax"`
	Total         *float64 `json:"total"`
	SourceName    string   `json:"source_name"`
}

// Row renders the record in Columns order. Missing amounts become empty cells.
func (r Record) Row() []string {
	return []string{
		r.InvoiceNumber,
		r.InvoiceDate,
		r.Supplier,
		r.Client,
		formatAmount(r.Subtotal),
		formatAmount(r.Tax),
		formatAmount(r.Total),
		r.SourceName,
	}
}

func formatAmount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
