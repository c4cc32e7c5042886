package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParsePeriod(t *testing.T) {
	year, month, err := ParsePeriod("2025-09")
	require.NoError(t, err)
	assert.Equal(t, 2025, year)
	assert.Equal(t, 9, month)

	for _, bad := range []string{"2025-13", "2025-00", "09-2025", "2025/09", "banana", ""} {
		_, _, err := ParsePeriod(bad)
		require.ErrorIs(t, err, model.ErrInvalidPeriod, "input %q", bad)
	}
}

func TestGenerate_MonthOutOfRange(t *testing.T) {
	_, err := Generate(ledger.New(), 2025, 13)
	require.ErrorIs(t, err, model.ErrInvalidPeriod)
	_, err = Generate(ledger.New(), 2025, 0)
	require.ErrorIs(t, err, model.ErrInvalidPeriod)
}

func TestGenerate_EmptyLedger(t *testing.T) {
	r, err := Generate(ledger.New(), 2025, 9)
	require.NoError(t, err)

	assert.True(t, r.IncomeTotal.IsZero())
	assert.True(t, r.ExpenseTotal.IsZero())
	assert.True(t, r.SubscriptionTotal.IsZero())
	assert.True(t, r.Net.IsZero())
	assert.Empty(t, r.Categories)
	assert.Nil(t, r.Largest, "no expenses")
	assert.Equal(t, 30, r.DaysInMonth)
	assert.True(t, r.AverageDaily.IsZero())
}

func TestGenerate_Scenario(t *testing.T) {
	l := ledger.New()
	l.AddIncome(model.Income{Date: date(2025, 9, 5), Source: "Salary", Amount: dec("2000")})
	l.AddExpense(model.Expense{Date: date(2025, 9, 10), Category: model.CategoryFood, Amount: dec("150"), Note: "Groceries"})
	l.AddExpense(model.Expense{Date: date(2025, 9, 20), Category: model.CategoryFun, Amount: dec("50")})
	l.AddSubscription(model.Subscription{Name: "Streaming", MonthlyPrice: dec("10"), StartDate: date(2025, 8, 1), Active: true})

	r, err := Generate(l, 2025, 9)
	require.NoError(t, err)

	assert.True(t, r.IncomeTotal.Equal(dec("2000")))
	assert.True(t, r.ExpenseTotal.Equal(dec("200")))
	assert.True(t, r.SubscriptionTotal.Equal(dec("10")))
	assert.True(t, r.Net.Equal(dec("1790")))

	require.Len(t, r.Categories, 2)
	byCat := map[model.Category]CategoryTotal{}
	for _, c := range r.Categories {
		byCat[c.Category] = c
	}
	assert.True(t, byCat[model.CategoryFood].Total.Equal(dec("150")))
	assert.Equal(t, "75%", byCat[model.CategoryFood].Percent)
	assert.True(t, byCat[model.CategoryFun].Total.Equal(dec("50")))
	assert.Equal(t, "25%", byCat[model.CategoryFun].Percent)

	require.NotNil(t, r.Largest)
	assert.Equal(t, model.CategoryFood, r.Largest.Category)
	assert.Equal(t, "Groceries", r.Largest.Note)
	assert.True(t, r.Largest.Amount.Equal(dec("150")))

	assert.Equal(t, 30, r.DaysInMonth)
	assert.True(t, r.AverageDaily.Equal(dec("200").Div(dec("30"))))
}

func TestGenerate_SubscriptionAccrual(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		active   bool
		included bool
	}{
		{name: "started before month", start: date(2025, 8, 1), active: true, included: true},
		{name: "started mid-month counts in full", start: date(2025, 9, 15), active: true, included: true},
		{name: "started on month end", start: date(2025, 9, 30), active: true, included: true},
		{name: "starts after month end", start: date(2025, 10, 1), active: true, included: false},
		{name: "inactive regardless of date", start: date(2025, 1, 1), active: false, included: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := ledger.New()
			l.AddSubscription(model.Subscription{Name: "Streaming", MonthlyPrice: dec("10"), StartDate: tt.start, Active: tt.active})

			r, err := Generate(l, 2025, 9)
			require.NoError(t, err)
			if tt.included {
				assert.True(t, r.SubscriptionTotal.Equal(dec("10")))
			} else {
				assert.True(t, r.SubscriptionTotal.IsZero())
			}
		})
	}
}

func TestGenerate_ExpensesOutsideMonthExcluded(t *testing.T) {
	l := ledger.New()
	l.AddExpense(model.Expense{Date: date(2025, 8, 31), Category: model.CategoryFood, Amount: dec("99")})
	l.AddExpense(model.Expense{Date: date(2025, 10, 1), Category: model.CategoryFood, Amount: dec("99")})
	l.AddExpense(model.Expense{Date: date(2025, 9, 1), Category: model.CategoryFood, Amount: dec("1")})
	l.AddExpense(model.Expense{Date: date(2025, 9, 30), Category: model.CategoryFood, Amount: dec("2")})

	r, err := Generate(l, 2025, 9)
	require.NoError(t, err)
	assert.True(t, r.ExpenseTotal.Equal(dec("3")), "both month boundaries are inclusive")
}

func TestGenerate_DaysInMonth(t *testing.T) {
	for _, tt := range []struct {
		year, month, days int
	}{
		{2025, 1, 31},
		{2025, 2, 28},
		{2024, 2, 29},
		{2025, 4, 30},
		{2025, 12, 31},
	} {
		r, err := Generate(ledger.New(), tt.year, tt.month)
		require.NoError(t, err)
		assert.Equal(t, tt.days, r.DaysInMonth, "%04d-%02d", tt.year, tt.month)
	}
}

func TestGenerate_NetCanBeNegative(t *testing.T) {
	l := ledger.New()
	l.AddExpense(model.Expense{Date: date(2025, 9, 1), Category: model.CategoryOther, Amount: dec("300")})

	r, err := Generate(l, 2025, 9)
	require.NoError(t, err)
	assert.True(t, r.Net.Equal(dec("-300")))
}
