package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Expense is money spent on a calendar date, tagged with a category
// and an optional note.
type Expense struct {
	Date     time.Time
	Category Category
	Amount   decimal.Decimal
	Note     string
}

// NewExpense builds a validated Expense from raw text fields. The
// category match is case-insensitive; the note is optional and a blank
// note is normalized to empty.
func NewExpense(dateText, categoryText, amountText, note string) (Expense, error) {
	date, err := ParseDate("date", dateText)
	if err != nil {
		return Expense{}, err
	}
	category, err := ParseCategory(categoryText)
	if err != nil {
		return Expense{}, err
	}
	amount, err := parseAmountField("amount", amountText)
	if err != nil {
		return Expense{}, err
	}
	ex := Expense{Date: date, Category: category, Amount: amount, Note: strings.TrimSpace(note)}
	if err := ex.Validate(); err != nil {
		return Expense{}, err
	}
	return ex, nil
}

// Validate enforces the expense invariants on already-typed values.
func (e Expense) Validate() error {
	if e.Date.IsZero() {
		return &ValidationError{Field: "date", Kind: ErrInvalidDate, Reason: "date is required"}
	}
	if !e.Category.Valid() {
		return &ValidationError{Field: "category", Kind: ErrInvalidCategory, Reason: "category is not in the fixed set"}
	}
	if !e.Amount.IsPositive() {
		return invalidAmount("amount", "must be greater than zero")
	}
	return nil
}
