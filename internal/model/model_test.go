package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestNewIncome(t *testing.T) {
	in, err := NewIncome("2025-09-05", "  Salary  ", "2000")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 9, 5), in.Date)
	assert.Equal(t, "Salary", in.Source, "source is trimmed")
	assert.True(t, in.Amount.Equal(dec("2000")))
}

func TestNewIncome_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		date   string
		source string
		amount string
		kind   error
	}{
		{name: "bad date", date: "05/09/2025", source: "Salary", amount: "10", kind: ErrInvalidDate},
		{name: "blank source", date: "2025-09-05", source: "   ", amount: "10", kind: ErrEmptyField},
		{name: "unparsable amount", date: "2025-09-05", source: "Salary", amount: "lots", kind: ErrInvalidAmount},
		{name: "zero amount", date: "2025-09-05", source: "Salary", amount: "0", kind: ErrInvalidAmount},
		{name: "negative amount", date: "2025-09-05", source: "Salary", amount: "-5", kind: ErrInvalidAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewIncome(tt.date, tt.source, tt.amount)
			require.ErrorIs(t, err, tt.kind)
		})
	}
}

func TestNewExpense(t *testing.T) {
	ex, err := NewExpense("2025-09-10", "food", "150", "  Groceries  ")
	require.NoError(t, err)
	assert.Equal(t, CategoryFood, ex.Category, "category match is case-insensitive")
	assert.Equal(t, "Groceries", ex.Note, "note is trimmed")
	assert.True(t, ex.Amount.Equal(dec("150")))
}

func TestNewExpense_BlankNote(t *testing.T) {
	ex, err := NewExpense("2025-09-10", "Fun", "50", "   ")
	require.NoError(t, err)
	assert.Empty(t, ex.Note, "blank note normalizes to empty, never fails")
}

func TestNewExpense_UnknownCategory(t *testing.T) {
	_, err := NewExpense("2025-09-10", "Groceries", "150", "")
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestNewSubscription(t *testing.T) {
	sub, err := NewSubscription(" Streaming ", "10", "2025-08-01", true)
	require.NoError(t, err)
	assert.Equal(t, "Streaming", sub.Name)
	assert.Equal(t, date(2025, 8, 1), sub.StartDate)
	assert.True(t, sub.MonthlyPrice.Equal(dec("10")))
	assert.True(t, sub.Active)
}

func TestNewSubscription_Invalid(t *testing.T) {
	_, err := NewSubscription("  ", "10", "2025-08-01", true)
	require.ErrorIs(t, err, ErrEmptyField)

	_, err = NewSubscription("Streaming", "0", "2025-08-01", true)
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = NewSubscription("Streaming", "10", "soon", true)
	require.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDate_DiscardsTimeOfDay(t *testing.T) {
	got, err := ParseDate("date", "2025-09-05T14:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, date(2025, 9, 5), got)
}

func TestParseCategory(t *testing.T) {
	for _, input := range []string{"Food", "food", "FOOD", " food "} {
		c, err := ParseCategory(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, CategoryFood, c)
	}

	_, err := ParseCategory("Foods")
	require.ErrorIs(t, err, ErrInvalidCategory)
}

func TestCategoryJSON_ExactMatchOnly(t *testing.T) {
	var c Category
	require.NoError(t, json.Unmarshal([]byte(`"Transport"`), &c))
	assert.Equal(t, CategoryTransport, c)

	// No case coercion on deserialization.
	require.Error(t, json.Unmarshal([]byte(`"transport"`), &c))
	require.Error(t, json.Unmarshal([]byte(`"Gifts"`), &c))
}

func TestValidate_TypedValues(t *testing.T) {
	// Import runs the same checks on already-typed records.
	err := Income{Date: date(2025, 9, 5), Source: "Salary", Amount: dec("-5")}.Validate()
	require.ErrorIs(t, err, ErrInvalidAmount)

	err = Income{Source: "Salary", Amount: dec("5")}.Validate()
	require.ErrorIs(t, err, ErrInvalidDate)

	err = Expense{Date: date(2025, 9, 5), Category: "Groceries", Amount: dec("5")}.Validate()
	require.ErrorIs(t, err, ErrInvalidCategory)

	err = Subscription{Name: "Streaming", StartDate: date(2025, 8, 1), MonthlyPrice: dec("10")}.Validate()
	require.NoError(t, err)
}
