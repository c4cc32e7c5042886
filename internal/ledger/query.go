package ledger

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

// EntryKind tags a row in the combined listing.
type EntryKind string

const (
	KindIncome       EntryKind = "income"
	KindExpense      EntryKind = "expense"
	KindSubscription EntryKind = "subscription"
)

// Entry is one row of the combined all-records view.
type Entry struct {
	Date   time.Time
	Kind   EntryKind
	Label  string
	Amount decimal.Decimal
}

// IncomesBetween returns incomes with dates in [from, to], inclusive
// on both ends, date-descending. Only calendar dates are compared; an
// inverted range is simply empty.
func (l *Ledger) IncomesBetween(from, to time.Time) []model.Income {
	return filterByDate(l.Incomes(), func(in model.Income) time.Time { return in.Date }, from, to)
}

// ExpensesBetween returns expenses with dates in [from, to], inclusive.
func (l *Ledger) ExpensesBetween(from, to time.Time) []model.Expense {
	return filterByDate(l.Expenses(), func(ex model.Expense) time.Time { return ex.Date }, from, to)
}

// SubscriptionsBetween returns subscriptions whose start dates fall in
// [from, to], inclusive.
func (l *Ledger) SubscriptionsBetween(from, to time.Time) []model.Subscription {
	return filterByDate(l.Subscriptions(), func(s model.Subscription) time.Time { return s.StartDate }, from, to)
}

// ExpensesByCategory returns expenses with an exact category match,
// date-descending.
func (l *Ledger) ExpensesByCategory(category model.Category) []model.Expense {
	var out []model.Expense
	for _, ex := range l.Expenses() {
		if ex.Category == category {
			out = append(out, ex)
		}
	}
	return out
}

// Entries merges all three collections into one date-descending view.
// Subscriptions are keyed by their start date.
func (l *Ledger) Entries() []Entry {
	var entries []Entry
	for _, in := range l.Incomes() {
		entries = append(entries, Entry{Date: in.Date, Kind: KindIncome, Label: in.Source, Amount: in.Amount})
	}
	for _, ex := range l.Expenses() {
		entries = append(entries, Entry{Date: ex.Date, Kind: KindExpense, Label: expenseLabel(ex), Amount: ex.Amount})
	}
	for _, sub := range l.Subscriptions() {
		entries = append(entries, Entry{Date: sub.StartDate, Kind: KindSubscription, Label: sub.Name, Amount: sub.MonthlyPrice})
	}
	order := sortOrder(len(entries), func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
	out := make([]Entry, len(order))
	for k, i := range order {
		out[k] = entries[i]
	}
	return out
}

func expenseLabel(ex model.Expense) string {
	if ex.Note == "" {
		return string(ex.Category)
	}
	return fmt.Sprintf("%s (%s)", ex.Category, ex.Note)
}

func filterByDate[T any](items []T, date func(T) time.Time, from, to time.Time) []T {
	lo := model.DateOnly(from)
	hi := model.DateOnly(to)
	var out []T
	for _, it := range items {
		d := model.DateOnly(date(it))
		if sameOrBefore(lo, d) && sameOrBefore(d, hi) {
			out = append(out, it)
		}
	}
	return out
}
