package model

import (
	"errors"
	"fmt"
)

// Sentinel kinds for user-input rejection. Every validation failure
// unwraps to exactly one of these.
var (
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrEmptyField      = errors.New("empty field")
	ErrInvalidCategory = errors.New("invalid category")
	ErrInvalidPeriod   = errors.New("invalid period")
)

// ValidationError describes a single rejected input field. It is always
// recoverable and never corrupts existing ledger state.
type ValidationError struct {
	Field  string
	Kind   error // one of the sentinel kinds above
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalidDate(field, text string) error {
	return &ValidationError{Field: field, Kind: ErrInvalidDate, Reason: fmt.Sprintf("%q is not a valid date (want YYYY-MM-DD)", text)}
}

func invalidAmount(field, reason string) error {
	return &ValidationError{Field: field, Kind: ErrInvalidAmount, Reason: reason}
}

func emptyField(field string) error {
	return &ValidationError{Field: field, Kind: ErrEmptyField, Reason: "must not be blank"}
}
