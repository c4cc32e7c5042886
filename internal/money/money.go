// Package money holds the numeric and formatting primitives shared by
// the ledger core: amount parsing, division that tolerates empty
// periods, percentage rendering, and currency formatting.
package money

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports text that does not parse as a decimal number.
var ErrInvalidAmount = errors.New("invalid amount")

// DefaultSymbol is the currency symbol used when no configuration
// overrides it.
const DefaultSymbol = "€"

// ParseAmount parses a decimal amount from user input. Input is
// trimmed, and a decimal comma is accepted in place of a dot. Sign is
// not checked here; callers enforce positivity as a separate rule.
func ParseAmount(text string) (decimal.Decimal, error) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// SafeDivide returns numerator/denominator, or zero when the
// denominator is zero. Division by zero degrades to a defined result
// instead of failing; percentages and daily averages over empty
// periods rely on this.
func SafeDivide(numerator, denominator decimal.Decimal) decimal.Decimal {
	if denominator.IsZero() {
		return decimal.Zero
	}
	return numerator.Div(denominator)
}

// Percent renders part as a percentage of total, rounded to one
// decimal place, half away from zero. A zero total yields "0%".
// Exact integers drop the fraction digit: Percent(50, 200) == "25%".
func Percent(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "0%"
	}
	p := part.Div(total).Mul(decimal.NewFromInt(100)).Round(1)
	if p.IsInteger() {
		return p.StringFixed(0) + "%"
	}
	return p.StringFixed(1) + "%"
}

// Format renders an amount with the default currency symbol.
func Format(amount decimal.Decimal) string {
	return FormatWith(DefaultSymbol, amount)
}

// FormatWith renders symbol + thousands-grouped amount with exactly
// two fraction digits, independent of host locale: "€1,234.56".
// Negative amounts carry the sign ahead of the symbol.
func FormatWith(symbol string, amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")
	if n, err := strconv.ParseInt(intPart, 10, 64); err == nil {
		intPart = humanize.Comma(n)
	}
	s := symbol + intPart + "." + frac
	if amount.IsNegative() {
		return "-" + s
	}
	return s
}
