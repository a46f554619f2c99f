package services

import (
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizePrice turns a raw register price such as "€343,000.00" into an
// exact, non-negative amount. Grouping commas go first, then every rune
// that is not an ASCII digit or '.' is dropped, which also removes the
// currency glyph and any replacement characters left by a bad encoding.
//
// A token with nothing numeric left, or one that still does not parse
// (e.g. "1.2.3"), yields zero together with a PriceParseError. The error is
// a warning; callers keep the zero and carry on.
func NormalizePrice(raw string) (decimal.Decimal, *PriceParseError) {
	cleaned := strings.ReplaceAll(raw, ",", "")
	cleaned = strings.Map(func(r rune) rune {
		if r == '.' || (r >= '0' && r <= '9') {
			return r
		}
		return -1
	}, cleaned)

	if cleaned == "" {
		return decimal.Zero, &PriceParseError{Raw: raw}
	}

	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, &PriceParseError{Raw: raw, Cleaned: cleaned, Err: err}
	}
	return amount, nil
}
