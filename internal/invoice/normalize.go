package invoice

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	nonIdentifierChars = regexp.MustCompile(`[^\p{L}\p{N}\-]`)
	nonDateChars       = regexp.MustCompile(`[^\d/.\-]`)
	currencyChars      = regexp.MustCompile(`(?i)eur|[€$£\s]`)
	nonAmountChars     = regexp.MustCompile(`[^\d.,]`)
)

const maxDateLen = 10

// NormalizeIdentifier keeps letters, digits and hyphens.
func NormalizeIdentifier(s string) string {
	return nonIdentifierChars.ReplaceAllString(strings.TrimSpace(s), "")
}

// NormalizeDate keeps digits and the separators / . - and truncates the
// result to ten characters.
func NormalizeDate(s string) string {
	s = nonDateChars.ReplaceAllString(s, "")
	if len(s) > maxDateLen {
		s = s[:maxDateLen]
	}
	return s
}

// NormalizeAmount parses a money amount written with comma or period
// decimals, with or without thousands separators. It returns nil for
// empty or unparseable input.
func NormalizeAmount(s string) *float64 {
	s = currencyChars.ReplaceAllString(s, "")
	s = nonAmountChars.ReplaceAllString(s, "")
	s = strings.TrimRight(s, ".,")
	if s == "" {
		return nil
	}

	s = canonicalDecimal(s)
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil
	}
	v := d.InexactFloat64()
	return &v
}

// canonicalDecimal rewrites s so that a single period is the decimal
// separator. When both separators appear the rightmost one is the decimal
// mark; a separator repeated on its own is a thousands separator; a lone
// comma is a decimal comma.
func canonicalDecimal(s string) string {
	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			return strings.Replace(s, ",", ".", 1)
		}
		return strings.ReplaceAll(s, ",", "")
	case lastComma >= 0:
		if strings.Count(s, ",") > 1 {
			return strings.ReplaceAll(s, ",", "")
		}
		return strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1:
		return strings.ReplaceAll(s, ".", "")
	}
	return s
}
