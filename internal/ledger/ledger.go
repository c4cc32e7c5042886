// Package ledger holds the in-memory store for a session's incomes,
// expenses, and subscriptions, plus the query operations over them.
package ledger

import (
	"errors"
	"sort"
	"time"

	"github.com/tally-dev/tally/internal/model"
)

// ErrIndexOutOfRange reports a display index beyond the current list.
var ErrIndexOutOfRange = errors.New("index out of range")

// Ledger owns the three record collections for one session. It is
// created empty, mutated by add/remove/toggle, and fully replaced only
// by a successful bundle restore. Records are stored unordered;
// presentation order is always resolved fresh.
type Ledger struct {
	incomes       []model.Income
	expenses      []model.Expense
	subscriptions []model.Subscription
}

// New creates an empty Ledger.
func New() *Ledger {
	return &Ledger{}
}

// AddIncome appends a record. Validation already happened in the
// factory or the bundle restore path.
func (l *Ledger) AddIncome(in model.Income) {
	l.incomes = append(l.incomes, in)
}

// AddExpense appends a record.
func (l *Ledger) AddExpense(ex model.Expense) {
	l.expenses = append(l.expenses, ex)
}

// AddSubscription appends a record.
func (l *Ledger) AddSubscription(sub model.Subscription) {
	l.subscriptions = append(l.subscriptions, sub)
}

// Incomes returns a date-descending copy. Ties sort arbitrarily but
// deterministically within a run.
func (l *Ledger) Incomes() []model.Income {
	order := sortOrder(len(l.incomes), func(i, j int) bool {
		return l.incomes[i].Date.After(l.incomes[j].Date)
	})
	out := make([]model.Income, len(order))
	for k, i := range order {
		out[k] = l.incomes[i]
	}
	return out
}

// Expenses returns a date-descending copy.
func (l *Ledger) Expenses() []model.Expense {
	order := sortOrder(len(l.expenses), func(i, j int) bool {
		return l.expenses[i].Date.After(l.expenses[j].Date)
	})
	out := make([]model.Expense, len(order))
	for k, i := range order {
		out[k] = l.expenses[i]
	}
	return out
}

// Subscriptions returns a copy ordered by start date, newest first.
func (l *Ledger) Subscriptions() []model.Subscription {
	order := sortOrder(len(l.subscriptions), func(i, j int) bool {
		return l.subscriptions[i].StartDate.After(l.subscriptions[j].StartDate)
	})
	out := make([]model.Subscription, len(order))
	for k, i := range order {
		out[k] = l.subscriptions[i]
	}
	return out
}

// RemoveIncome deletes the record at the 1-based position in the
// date-descending view, resolved fresh at call time. Returns the
// removed record.
func (l *Ledger) RemoveIncome(displayIndex int) (model.Income, error) {
	pos, err := l.resolveIncome(displayIndex)
	if err != nil {
		return model.Income{}, err
	}
	removed := l.incomes[pos]
	l.incomes = append(l.incomes[:pos], l.incomes[pos+1:]...)
	return removed, nil
}

// RemoveExpense deletes the record at the 1-based display position.
func (l *Ledger) RemoveExpense(displayIndex int) (model.Expense, error) {
	pos, err := l.resolveExpense(displayIndex)
	if err != nil {
		return model.Expense{}, err
	}
	removed := l.expenses[pos]
	l.expenses = append(l.expenses[:pos], l.expenses[pos+1:]...)
	return removed, nil
}

// RemoveSubscription deletes the record at the 1-based display position.
func (l *Ledger) RemoveSubscription(displayIndex int) (model.Subscription, error) {
	pos, err := l.resolveSubscription(displayIndex)
	if err != nil {
		return model.Subscription{}, err
	}
	removed := l.subscriptions[pos]
	l.subscriptions = append(l.subscriptions[:pos], l.subscriptions[pos+1:]...)
	return removed, nil
}

// ToggleSubscription flips the active flag on the record at the
// 1-based display position and returns the updated record.
func (l *Ledger) ToggleSubscription(displayIndex int) (model.Subscription, error) {
	pos, err := l.resolveSubscription(displayIndex)
	if err != nil {
		return model.Subscription{}, err
	}
	l.subscriptions[pos].Active = !l.subscriptions[pos].Active
	return l.subscriptions[pos], nil
}

// Replace swaps all three collections at once. Bundle restore calls
// this only after every incoming record has validated.
func (l *Ledger) Replace(incomes []model.Income, expenses []model.Expense, subscriptions []model.Subscription) {
	l.incomes = incomes
	l.expenses = expenses
	l.subscriptions = subscriptions
}

func (l *Ledger) resolveIncome(displayIndex int) (int, error) {
	return resolveIndex(len(l.incomes), displayIndex, func(i, j int) bool {
		return l.incomes[i].Date.After(l.incomes[j].Date)
	})
}

func (l *Ledger) resolveExpense(displayIndex int) (int, error) {
	return resolveIndex(len(l.expenses), displayIndex, func(i, j int) bool {
		return l.expenses[i].Date.After(l.expenses[j].Date)
	})
}

func (l *Ledger) resolveSubscription(displayIndex int) (int, error) {
	return resolveIndex(len(l.subscriptions), displayIndex, func(i, j int) bool {
		return l.subscriptions[i].StartDate.After(l.subscriptions[j].StartDate)
	})
}

// sortOrder returns the permutation of [0, n) under less. Listing and
// index resolution share it so that what was shown and what an index
// targets agree within a run.
func sortOrder(n int, less func(i, j int) bool) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return less(order[a], order[b])
	})
	return order
}

// resolveIndex maps a 1-based display index in the current descending
// view to a position in the backing slice. No stale-index protection:
// the view is re-resolved at the moment of the action.
func resolveIndex(n, displayIndex int, less func(i, j int) bool) (int, error) {
	if displayIndex < 1 || displayIndex > n {
		return 0, ErrIndexOutOfRange
	}
	return sortOrder(n, less)[displayIndex-1], nil
}

func sameOrBefore(a, b time.Time) bool {
	return !a.After(b)
}
