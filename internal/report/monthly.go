// Package report derives monthly financial summaries from a ledger.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
)

// CategoryTotal is one row of the category breakdown: the summed
// amount for a category and its share of the month's expense total.
type CategoryTotal struct {
	Category model.Category
	Total    decimal.Decimal
	Percent  string
}

// Monthly is the structured summary for one calendar month. All
// presentation formatting is the shell's responsibility.
type Monthly struct {
	Year              int
	Month             time.Month
	MonthStart        time.Time
	MonthEnd          time.Time
	IncomeTotal       decimal.Decimal
	ExpenseTotal      decimal.Decimal
	SubscriptionTotal decimal.Decimal
	Net               decimal.Decimal
	Categories        []CategoryTotal
	Largest           *model.Expense // nil means no expenses in the month
	DaysInMonth       int
	AverageDaily      decimal.Decimal
}

// ParsePeriod parses a "YYYY-MM" month selector.
func ParsePeriod(text string) (year int, month int, err error) {
	s := strings.TrimSpace(text)
	t, perr := time.Parse("2006-01", s)
	if perr != nil {
		return 0, 0, &model.ValidationError{
			Field:  "period",
			Kind:   model.ErrInvalidPeriod,
			Reason: fmt.Sprintf("%q is not a valid YYYY-MM period", text),
		}
	}
	return t.Year(), int(t.Month()), nil
}

// Generate computes the monthly summary for (year, month) over the
// given ledger.
func Generate(l *ledger.Ledger, year, month int) (*Monthly, error) {
	if month < 1 || month > 12 {
		return nil, &model.ValidationError{
			Field:  "period",
			Kind:   model.ErrInvalidPeriod,
			Reason: fmt.Sprintf("month %d is outside 1..12", month),
		}
	}

	monthStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	days := monthEnd.Day()

	incomeTotal := decimal.Zero
	for _, in := range l.IncomesBetween(monthStart, monthEnd) {
		incomeTotal = incomeTotal.Add(in.Amount)
	}

	expenses := l.ExpensesBetween(monthStart, monthEnd)
	expenseTotal := decimal.Zero
	for _, ex := range expenses {
		expenseTotal = expenseTotal.Add(ex.Amount)
	}

	// An active subscription counts for the whole month once started,
	// even mid-month. No pro-rating.
	subscriptionTotal := decimal.Zero
	for _, sub := range l.Subscriptions() {
		if sub.Active && !sub.StartDate.After(monthEnd) {
			subscriptionTotal = subscriptionTotal.Add(sub.MonthlyPrice)
		}
	}

	return &Monthly{
		Year:              year,
		Month:             time.Month(month),
		MonthStart:        monthStart,
		MonthEnd:          monthEnd,
		IncomeTotal:       incomeTotal,
		ExpenseTotal:      expenseTotal,
		SubscriptionTotal: subscriptionTotal,
		Net:               incomeTotal.Sub(expenseTotal).Sub(subscriptionTotal),
		Categories:        breakdown(expenses, expenseTotal),
		Largest:           largest(expenses),
		DaysInMonth:       days,
		AverageDaily:      money.SafeDivide(expenseTotal, decimal.NewFromInt(int64(days))),
	}, nil
}

// breakdown groups the month's expenses by category, in first-seen
// order, with each group's share of the expense total.
func breakdown(expenses []model.Expense, expenseTotal decimal.Decimal) []CategoryTotal {
	sums := make(map[model.Category]decimal.Decimal)
	var order []model.Category
	for _, ex := range expenses {
		if _, seen := sums[ex.Category]; !seen {
			order = append(order, ex.Category)
		}
		sums[ex.Category] = sums[ex.Category].Add(ex.Amount)
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, c := range order {
		out = append(out, CategoryTotal{
			Category: c,
			Total:    sums[c],
			Percent:  money.Percent(sums[c], expenseTotal),
		})
	}
	return out
}

// largest picks the single expense with the maximum amount. Ties keep
// whichever came first in the current order; this is deterministic
// within a run but not a user-visible ordering guarantee.
func largest(expenses []model.Expense) *model.Expense {
	if len(expenses) == 0 {
		return nil
	}
	max := expenses[0]
	for _, ex := range expenses[1:] {
		if ex.Amount.GreaterThan(max.Amount) {
			max = ex
		}
	}
	return &max
}
