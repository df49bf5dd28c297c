// Package numfmt converts decimal amounts to and from the comma-decimal
// string form used in persisted ledger rows.
package numfmt

import (
	"strings"

	"github.com/shopspring/decimal"

	"presidia/go_backend/internal/domain/quote"
)

// Encode renders a non-negative amount with exactly two fraction digits and
// a comma decimal separator, e.g. 1234.5 -> "1234,50".
func Encode(d decimal.Decimal) string {
	return strings.Replace(d.StringFixed(2), ".", ",", 1)
}

// Decode inverts Encode. It additionally accepts dots as thousands grouping,
// as found in older ledger rows ("1.234,50"): dots are stripped before the
// comma becomes the decimal point.
func Decode(s string) (decimal.Decimal, error) {
	norm := strings.ReplaceAll(s, ".", "")
	norm = strings.Replace(norm, ",", ".", 1)
	d, err := decimal.NewFromString(norm)
	if err != nil {
		return decimal.Decimal{}, &quote.EncodingError{Field: "amount", Value: s, Reason: "not a locale-formatted number"}
	}
	if d.IsNegative() {
		return decimal.Decimal{}, &quote.EncodingError{Field: "amount", Value: s, Reason: "amount must not be negative"}
	}
	return d, nil
}
