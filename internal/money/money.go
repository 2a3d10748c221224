// Package money provides monetary parsing, rounding and pt-BR display
// formatting. Amounts are decimal.Decimal everywhere; string-typed values
// from the wire are parsed once at the boundary and never re-parsed inline.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// Parse converts a string-encoded monetary value to a decimal. Empty and
// malformed values return zero and ok=false; callers decide whether to log.
func Parse(s string) (decimal.Decimal, bool) {
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

// MustParse converts a known-good string to a decimal, panicking on failure.
// Intended for test fixtures and constants.
func MustParse(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// Percent computes part/whole*100. ok is false when whole is zero; the
// returned value is zero in that case, never NaN.
func Percent(part, whole decimal.Decimal) (decimal.Decimal, bool) {
	if whole.IsZero() {
		return decimal.Zero, false
	}
	return part.Div(whole).Mul(decimal.NewFromInt(100)), true
}

// Round2 rounds to 2 decimal places, half away from zero. This matches the
// tie-break of Number.prototype.toFixed for the magnitudes handled here.
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Round1 rounds to 1 decimal place, half away from zero.
func Round1(d decimal.Decimal) decimal.Decimal {
	return d.Round(1)
}

// FormatBRL renders an amount as Brazilian Real currency text, e.g.
// "R$ 1.234,56". Display only; never parse this back.
func FormatBRL(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatPercent renders a percentage with the given decimal places and a
// trailing percent sign, e.g. "12,5%".
func FormatPercent(d decimal.Decimal, places int32) string {
	f, _ := d.Round(places).Float64()
	return printer.Sprintf("%v%%", number.Decimal(f,
		number.MinFractionDigits(int(places)),
		number.MaxFractionDigits(int(places)),
	))
}
