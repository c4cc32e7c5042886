package model

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Subscription is a recurring monthly charge. An active subscription
// accrues its full monthly price in every month on or after its start
// date, without pro-rating.
type Subscription struct {
	Name         string
	MonthlyPrice decimal.Decimal
	StartDate    time.Time
	Active       bool
}

// NewSubscription builds a validated Subscription from raw text fields.
func NewSubscription(name, priceText, startText string, active bool) (Subscription, error) {
	start, err := ParseDate("startDate", startText)
	if err != nil {
		return Subscription{}, err
	}
	price, err := parseAmountField("monthlyPrice", priceText)
	if err != nil {
		return Subscription{}, err
	}
	sub := Subscription{Name: strings.TrimSpace(name), MonthlyPrice: price, StartDate: start, Active: active}
	if err := sub.Validate(); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// Validate enforces the subscription invariants on already-typed values.
func (s Subscription) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return emptyField("name")
	}
	if s.StartDate.IsZero() {
		return &ValidationError{Field: "startDate", Kind: ErrInvalidDate, Reason: "start date is required"}
	}
	if !s.MonthlyPrice.IsPositive() {
		return invalidAmount("monthlyPrice", "must be greater than zero")
	}
	return nil
}
