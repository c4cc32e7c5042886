package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/money"
)

// Income is money received on a calendar date.
type Income struct {
	Date   time.Time
	Source string
	Amount decimal.Decimal
}

// NewIncome builds a validated Income from raw text fields. A record
// is either fully valid or not created at all.
func NewIncome(dateText, source, amountText string) (Income, error) {
	date, err := ParseDate("date", dateText)
	if err != nil {
		return Income{}, err
	}
	amount, err := parseAmountField("amount", amountText)
	if err != nil {
		return Income{}, err
	}
	in := Income{Date: date, Source: strings.TrimSpace(source), Amount: amount}
	if err := in.Validate(); err != nil {
		return Income{}, err
	}
	return in, nil
}

// Validate enforces the income invariants on already-typed values.
// Bundle import runs the same checks as interactive entry.
func (i Income) Validate() error {
	if i.Date.IsZero() {
		return &ValidationError{Field: "date", Kind: ErrInvalidDate, Reason: "date is required"}
	}
	if strings.TrimSpace(i.Source) == "" {
		return emptyField("source")
	}
	if !i.Amount.IsPositive() {
		return invalidAmount("amount", "must be greater than zero")
	}
	return nil
}

// parseAmountField parses an amount and enforces positivity. Both an
// unparsable value and a non-positive one report the amount kind, with
// field-specific messages.
func parseAmountField(field, text string) (decimal.Decimal, error) {
	d, err := money.ParseAmount(text)
	if err != nil {
		return decimal.Zero, invalidAmount(field, "not a valid number")
	}
	if !d.IsPositive() {
		return decimal.Zero, invalidAmount(field, "must be greater than zero")
	}
	return d, nil
}
