// Package bundle moves the three ledger collections in and out of the
// process as a structured JSON document. Restore is all-or-nothing:
// every incoming record validates before anything replaces live state.
package bundle

import (
	"fmt"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

// Bundle is a transient grouping of the three collections, used solely
// for bulk transfer. It owns no state beyond what it carries and never
// aliases a live ledger.
type Bundle struct {
	Incomes       []model.Income
	Expenses      []model.Expense
	Subscriptions []model.Subscription
}

// Snapshot copies the ledger's collections into a Bundle. Mutating the
// result does not affect the ledger.
func Snapshot(l *ledger.Ledger) Bundle {
	return Bundle{
		Incomes:       l.Incomes(),
		Expenses:      l.Expenses(),
		Subscriptions: l.Subscriptions(),
	}
}

// Restore validates every record in the bundle and, only if all pass,
// atomically replaces the ledger's three collections. On any failure
// the live ledger is left completely unchanged.
func Restore(l *ledger.Ledger, b Bundle) error {
	for i, in := range b.Incomes {
		if err := in.Validate(); err != nil {
			return fmt.Errorf("incomes[%d]: %w", i, err)
		}
	}
	for i, ex := range b.Expenses {
		if err := ex.Validate(); err != nil {
			return fmt.Errorf("expenses[%d]: %w", i, err)
		}
	}
	for i, sub := range b.Subscriptions {
		if err := sub.Validate(); err != nil {
			return fmt.Errorf("subscriptions[%d]: %w", i, err)
		}
	}

	incomes := make([]model.Income, len(b.Incomes))
	copy(incomes, b.Incomes)
	expenses := make([]model.Expense, len(b.Expenses))
	copy(expenses, b.Expenses)
	subscriptions := make([]model.Subscription, len(b.Subscriptions))
	copy(subscriptions, b.Subscriptions)

	l.Replace(incomes, expenses, subscriptions)
	return nil
}
