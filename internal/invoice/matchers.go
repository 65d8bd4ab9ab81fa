package invoice

import (
	"path/filepath"
	"regexp"
	"strings"
)

const (
	capitalizedWord   = `[A-ZÁÉÍÓÚÑÜ][A-ZÁÉÍÓÚÑÜa-záéíóúñü]+`
	legalEntitySuffix = `S\.?[ ]?L\.?(?:[ ]?U\.?)?(?:[^\p{L}\p{N}]|$)`
)

// Supplier names anchored on an S.L. / S.L.U. suffix, most specific first.
var legalEntityPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(` + capitalizedWord + `(?:[ \t]+` + capitalizedWord + `)*?)[ \t]*[.,]?[ \t]*` + legalEntitySuffix),
	regexp.MustCompile(`(` + capitalizedWord + `(?:[ \t]+` + capitalizedWord + `)*?)[ \t]+` + legalEntitySuffix),
	regexp.MustCompile(`([A-ZÁÉÍÓÚÑÜ][A-ZÁÉÍÓÚÑÜa-záéíóúñü]{2,}(?:[ \t]+` + capitalizedWord + `)*?)[ \t]*,[ \t]*` + legalEntitySuffix),
}

var taxIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:CIF|NIF)\s*[:\-]?\s*([A-Z]\d{8}[A-Z0-9]?)`),
}

const invoiceToken = `([\p{L}\p{N}\-/]*\p{N}[\p{L}\p{N}\-/]*)`

var numberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:\bN[º°]|\bN\.\s?[º°]|\bNo\.?|\bN\.|(?i:número|numero|núm\.?))[ \t]*(?:de[ \t]+)?(?i:factura)[ \t]*[:\-]?\s*` + invoiceToken),
	regexp.MustCompile(`(?:Número|Numero|N[º°])[ \t]*[:\-]?\s*` + invoiceToken),
}

var datePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)fecha\s+(?:de\s+)?(?:factura(?:ción|cion)?|emisión|emision)\s*[:\-]?\s*([\d/.\-]{8,10})`),
	regexp.MustCompile(`\b(\d{1,2}[/.\-]\d{1,2}[/.\-]\d{2,4})\b`),
}

// AmountField names the record field an amount rule fills.
type AmountField int

const (
	FieldTotal AmountField = iota
	FieldSubtotal
	FieldTax
)

type amountRule struct {
	pattern *regexp.Regexp
	field   AmountField
}

// amountRules are evaluated in order; the first rule that yields a number
// for a field owns it.
var amountRules = []amountRule{
	{regexp.MustCompile(`(?is)(?:\bTotal\s*(?:factura|a pagar|final|en EUR)?|\bImporte total)\s*[:\-()]*\s*([\d.,]+)`), FieldTotal},
	{regexp.MustCompile(`(?is)\bTOTAL\s*[:\-()]*\s*([\d.,]+)`), FieldTotal},
	{regexp.MustCompile(`(?is)(?:Base\s*(?:imponible|imp\.?)|Subtotal|IMPORTE\s*\(base imponible\))\s*[:\-()]*\s*([\d.,]+)`), FieldSubtotal},
	{regexp.MustCompile(`(?is)base imponible\).*?([\d.,]+)`), FieldSubtotal},
	{regexp.MustCompile(`(?is)(?:\bIVA?|\bI\.V\.A\.?|IMPUESTOS\s*\(21|Cuota IVA)\s*[:\-()]*\s*([\d.,]+)`), FieldTax},
	{regexp.MustCompile(`(?is)Total\s*\(base imponible\).*?([\d.,]+)`), FieldSubtotal},
	{regexp.MustCompile(`(?is)Subtotal en EUR.*?([\d.,]+)`), FieldSubtotal},
}

// Amounts are the money fields found in the summary section of an invoice.
type Amounts struct {
	Subtotal *float64
	Tax      *float64
	Total    *float64
}

func (a *Amounts) slot(f AmountField) **float64 {
	switch f {
	case FieldSubtotal:
		return &a.Subtotal
	case FieldTax:
		return &a.Tax
	default:
		return &a.Total
	}
}

// firstSubmatch returns the first capture group of the first pattern
// that matches text.
func firstSubmatch(patterns []*regexp.Regexp, text string) (string, bool) {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// MatchSupplier returns the supplier name anchored on a legal-entity
// suffix, else the first CIF/NIF tax id, else NotDetected.
func MatchSupplier(text string) string {
	if name, ok := firstSubmatch(legalEntityPatterns, text); ok {
		if name = truncate(strings.TrimSpace(name), maxTextLen); name != "" {
			return name
		}
	}
	if id, ok := firstSubmatch(taxIDPatterns, text); ok {
		return id
	}
	return NotDetected
}

// MatchInvoiceNumber returns the labelled invoice number or, failing
// that, the source name without its extension.
func MatchInvoiceNumber(text, sourceName string) string {
	if token, ok := firstSubmatch(numberPatterns, text); ok {
		if id := NormalizeIdentifier(token); id != "" {
			return id
		}
	}
	if name := strings.TrimSuffix(sourceName, filepath.Ext(sourceName)); name != "" {
		return name
	}
	return NotDetected
}

// MatchDate returns the labelled invoice date, else the first date-shaped
// token in the text, else an empty string.
func MatchDate(text string) string {
	if date, ok := firstSubmatch(datePatterns, text); ok {
		return NormalizeDate(date)
	}
	return ""
}

// MatchAmounts scans the last window runes of text for totals, taxable
// base and tax.
func MatchAmounts(text string, window int) Amounts {
	summary := tail(text, window)

	var amounts Amounts
	for _, rule := range amountRules {
		slot := amounts.slot(rule.field)
		if *slot != nil {
			continue
		}
		m := rule.pattern.FindStringSubmatch(summary)
		if m == nil {
			continue
		}
		if v := NormalizeAmount(m[1]); v != nil {
			*slot = v
		}
	}
	return amounts
}

func tail(text string, n int) string {
	if n <= 0 || len(text) <= n {
		return text
	}
	r := []rune(text)
	if len(r) <= n {
		return text
	}
	return string(r[len(r)-n:])
}
