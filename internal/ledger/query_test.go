package ledger

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/model"
)

func TestIncomesBetween_InclusiveEnds(t *testing.T) {
	l := New()
	l.AddIncome(income(date(2025, 9, 1), "start", "1"))
	l.AddIncome(income(date(2025, 9, 15), "mid", "2"))
	l.AddIncome(income(date(2025, 9, 30), "end", "3"))
	l.AddIncome(income(date(2025, 10, 1), "after", "4"))

	got := l.IncomesBetween(date(2025, 9, 1), date(2025, 9, 30))
	require.Len(t, got, 3)
	assert.Equal(t, "end", got[0].Source, "date-descending")
	assert.Equal(t, "start", got[2].Source)
}

func TestFilter_InvertedRangeIsEmpty(t *testing.T) {
	l := New()
	l.AddIncome(income(date(2025, 9, 15), "mid", "2"))
	l.AddExpense(expense(date(2025, 9, 15), model.CategoryFood, "5", ""))

	assert.Empty(t, l.IncomesBetween(date(2025, 9, 30), date(2025, 9, 1)))
	assert.Empty(t, l.ExpensesBetween(date(2025, 9, 30), date(2025, 9, 1)))
}

func TestFilter_ComparesCalendarDatesOnly(t *testing.T) {
	l := New()
	noon := time.Date(2025, 9, 30, 12, 0, 0, 0, time.UTC)
	l.AddIncome(income(noon, "noon", "1"))

	got := l.IncomesBetween(date(2025, 9, 1), date(2025, 9, 30))
	require.Len(t, got, 1, "time-of-day must not exclude the boundary day")
}

func TestExpensesByCategory(t *testing.T) {
	l := New()
	l.AddExpense(expense(date(2025, 9, 10), model.CategoryFood, "150", "Groceries"))
	l.AddExpense(expense(date(2025, 9, 20), model.CategoryFun, "50", ""))
	l.AddExpense(expense(date(2025, 9, 25), model.CategoryFood, "30", ""))

	got := l.ExpensesByCategory(model.CategoryFood)
	require.Len(t, got, 2)
	for _, ex := range got {
		assert.Equal(t, model.CategoryFood, ex.Category)
	}

	assert.Empty(t, l.ExpensesByCategory(model.CategorySchool))
}

func TestEntries_CombinedListing(t *testing.T) {
	l := New()
	l.AddIncome(income(date(2025, 9, 5), "Salary", "2000"))
	l.AddExpense(expense(date(2025, 9, 10), model.CategoryFood, "150", "Groceries"))
	l.AddSubscription(subscription("Streaming", "10", date(2025, 8, 1), true))

	entries := l.Entries()
	require.Len(t, entries, 3)

	// Date-descending across all three kinds; subscriptions keyed by
	// start date.
	assert.Equal(t, KindExpense, entries[0].Kind)
	assert.Equal(t, "Food (Groceries)", entries[0].Label)
	assert.Equal(t, KindIncome, entries[1].Kind)
	assert.Equal(t, "Salary", entries[1].Label)
	assert.Equal(t, KindSubscription, entries[2].Kind)
	assert.Equal(t, "Streaming", entries[2].Label)
	assert.Equal(t, date(2025, 8, 1), entries[2].Date)
}

func TestEntries_ExpenseLabelWithoutNote(t *testing.T) {
	l := New()
	l.AddExpense(expense(date(2025, 9, 20), model.CategoryFun, "50", ""))

	entries := l.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Fun", entries[0].Label)
}
