package invoice

import "strings"

// DefaultAmountWindow is how many trailing characters of a document are
// searched for amounts.
const DefaultAmountWindow = 3000

// Builder turns normalized document text into a Record.
type Builder struct {
	// AmountWindow overrides DefaultAmountWindow when positive.
	AmountWindow int
}

// Build extracts a Record from text. Fields that cannot be detected fall
// back to the source name, NotDetected or nil amounts; Build never fails.
func (b Builder) Build(text, sourceName, client string) Record {
	window := b.AmountWindow
	if window <= 0 {
		window = DefaultAmountWindow
	}

	number := MatchInvoiceNumber(text, sourceName)
	date := MatchDate(text)
	amounts := MatchAmounts(text, window)
	supplier := MatchSupplier(text)

	return Record{
		InvoiceNumber: number,
		InvoiceDate:   date,
		Supplier:      supplier,
		Client:        ClientName(client),
		Subtotal:      amounts.Subtotal,
		Tax:           amounts.Tax,
		Total:         amounts.Total,
		SourceName:    sourceName,
	}
}

// ClientName trims and truncates a client name, using NotDetected for
// blank input.
func ClientName(client string) string {
	client = truncate(strings.TrimSpace(client), maxTextLen)
	if client == "" {
		return NotDetected
	}
	return client
}
