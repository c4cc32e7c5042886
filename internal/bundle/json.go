package bundle

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/model"
)

func init() {
	// Amounts travel as JSON numbers per the document schema, not as
	// quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// ParseError reports a document that does not conform to the bundle
// schema. It is distinct from record validation: a structural failure
// is reported before validation even runs.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "malformed bundle document: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Document schema: three named arrays. Dates travel as ISO calendar
// dates, categories as exact canonical names.
type document struct {
	Incomes       []incomeDoc       `json:"incomes"`
	Expenses      []expenseDoc      `json:"expenses"`
	Subscriptions []subscriptionDoc `json:"subscriptions"`
}

type incomeDoc struct {
	Date   isoDate         `json:"date"`
	Source string          `json:"source"`
	Amount decimal.Decimal `json:"amount"`
}

type expenseDoc struct {
	Date     isoDate         `json:"date"`
	Category model.Category  `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
	Note     string          `json:"note"`
}

type subscriptionDoc struct {
	Name         string          `json:"name"`
	MonthlyPrice decimal.Decimal `json:"monthlyPrice"`
	StartDate    isoDate         `json:"startDate"`
	IsActive     bool            `json:"isActive"`
}

// isoDate marshals as "2006-01-02" text with no time-of-day.
type isoDate struct {
	time.Time
}

func (d isoDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(model.DateFormat))
}

func (d *isoDate) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(model.DateFormat, s)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	d.Time = t
	return nil
}

// Marshal renders the bundle as document text. The output is always
// parseable by Unmarshal; empty collections serialize as empty arrays.
func Marshal(b Bundle) ([]byte, error) {
	doc := document{
		Incomes:       make([]incomeDoc, 0, len(b.Incomes)),
		Expenses:      make([]expenseDoc, 0, len(b.Expenses)),
		Subscriptions: make([]subscriptionDoc, 0, len(b.Subscriptions)),
	}
	for _, in := range b.Incomes {
		doc.Incomes = append(doc.Incomes, incomeDoc{
			Date:   isoDate{in.Date},
			Source: in.Source,
			Amount: in.Amount,
		})
	}
	for _, ex := range b.Expenses {
		doc.Expenses = append(doc.Expenses, expenseDoc{
			Date:     isoDate{ex.Date},
			Category: ex.Category,
			Amount:   ex.Amount,
			Note:     ex.Note,
		})
	}
	for _, sub := range b.Subscriptions {
		doc.Subscriptions = append(doc.Subscriptions, subscriptionDoc{
			Name:         sub.Name,
			MonthlyPrice: sub.MonthlyPrice,
			StartDate:    isoDate{sub.StartDate},
			IsActive:     sub.Active,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses document text into a Bundle. Any schema violation
// (bad JSON, malformed date or number, unknown category) returns a
// *ParseError. Missing or null arrays are treated as empty. Text
// fields are trimmed the same way interactive entry trims them.
func Unmarshal(data []byte) (Bundle, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Bundle{}, &ParseError{Err: err}
	}

	var b Bundle
	for _, in := range doc.Incomes {
		b.Incomes = append(b.Incomes, model.Income{
			Date:   model.DateOnly(in.Date.Time),
			Source: strings.TrimSpace(in.Source),
			Amount: in.Amount,
		})
	}
	for _, ex := range doc.Expenses {
		b.Expenses = append(b.Expenses, model.Expense{
			Date:     model.DateOnly(ex.Date.Time),
			Category: ex.Category,
			Amount:   ex.Amount,
			Note:     strings.TrimSpace(ex.Note),
		})
	}
	for _, sub := range doc.Subscriptions {
		b.Subscriptions = append(b.Subscriptions, model.Subscription{
			Name:         strings.TrimSpace(sub.Name),
			MonthlyPrice: sub.MonthlyPrice,
			StartDate:    model.DateOnly(sub.StartDate.Time),
			Active:       sub.IsActive,
		})
	}
	return b, nil
}
