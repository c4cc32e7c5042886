// Package menu is the interactive text shell. It collects raw input,
// hands it to the core for validation, and prints results; it holds no
// business rules of its own.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/tally-dev/tally/internal/bundle"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/model"
	"github.com/tally-dev/tally/internal/money"
	"github.com/tally-dev/tally/internal/report"
)

// Menu drives one interactive session over an injected ledger.
type Menu struct {
	ledger   *ledger.Ledger
	scanner  *bufio.Scanner
	out      io.Writer
	log      zerolog.Logger
	currency string
}

// New creates a Menu reading from in and writing to out.
func New(l *ledger.Ledger, in io.Reader, out io.Writer, log zerolog.Logger, currency string) *Menu {
	if currency == "" {
		currency = money.DefaultSymbol
	}
	return &Menu{
		ledger:   l,
		scanner:  bufio.NewScanner(in),
		out:      out,
		log:      log,
		currency: currency,
	}
}

// Run loops until the user quits or input ends.
func (m *Menu) Run() error {
	for {
		m.printMenu()
		choice, ok := m.readLine("> ")
		if !ok {
			return nil
		}
		switch strings.TrimSpace(choice) {
		case "0", "q", "quit":
			fmt.Fprintln(m.out, "Bye.")
			return nil
		case "1":
			m.addIncome()
		case "2":
			m.addExpense()
		case "3":
			m.addSubscription()
		case "4":
			m.listAll()
		case "5":
			m.listIncomes()
		case "6":
			m.listExpenses()
		case "7":
			m.listSubscriptions()
		case "8":
			m.removeIncome()
		case "9":
			m.removeExpense()
		case "10":
			m.removeSubscription()
		case "11":
			m.toggleSubscription()
		case "12":
			m.filterByDateRange()
		case "13":
			m.expensesByCategory()
		case "14":
			m.monthlyReport()
		case "15":
			m.exportBundle()
		case "16":
			m.importBundle()
		default:
			fmt.Fprintln(m.out, "Unknown option.")
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprint(m.out, `
Tally
 1) Add income          9) Remove expense
 2) Add expense        10) Remove subscription
 3) Add subscription   11) Toggle subscription
 4) List everything    12) Filter by date range
 5) List incomes       13) Expenses by category
 6) List expenses      14) Monthly report
 7) List subscriptions 15) Export
 8) Remove income      16) Import
 0) Quit
`)
}

func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.scanner.Scan() {
		return "", false
	}
	return m.scanner.Text(), true
}

func (m *Menu) addIncome() {
	date, _ := m.readLine("Date (YYYY-MM-DD): ")
	source, _ := m.readLine("Source: ")
	amount, _ := m.readLine("Amount: ")

	in, err := model.NewIncome(date, source, amount)
	if err != nil {
		m.fail("add income", err)
		return
	}
	m.ledger.AddIncome(in)
	m.log.Info().Str("source", in.Source).Str("amount", in.Amount.String()).Msg("income added")
	fmt.Fprintf(m.out, "Added income %s of %s.\n", in.Source, m.amount(in.Amount))
}

func (m *Menu) addExpense() {
	date, _ := m.readLine("Date (YYYY-MM-DD): ")
	category, _ := m.readLine(fmt.Sprintf("Category (%s): ", categoryNames()))
	amount, _ := m.readLine("Amount: ")
	note, _ := m.readLine("Note (optional): ")

	ex, err := model.NewExpense(date, category, amount, note)
	if err != nil {
		m.fail("add expense", err)
		return
	}
	m.ledger.AddExpense(ex)
	m.log.Info().Str("category", string(ex.Category)).Str("amount", ex.Amount.String()).Msg("expense added")
	fmt.Fprintf(m.out, "Added %s expense of %s.\n", ex.Category, m.amount(ex.Amount))
}

func (m *Menu) addSubscription() {
	name, _ := m.readLine("Name: ")
	price, _ := m.readLine("Monthly price: ")
	start, _ := m.readLine("Start date (YYYY-MM-DD): ")

	sub, err := model.NewSubscription(name, price, start, true)
	if err != nil {
		m.fail("add subscription", err)
		return
	}
	m.ledger.AddSubscription(sub)
	m.log.Info().Str("name", sub.Name).Str("price", sub.MonthlyPrice.String()).Msg("subscription added")
	fmt.Fprintf(m.out, "Added subscription %s at %s/month.\n", sub.Name, m.amount(sub.MonthlyPrice))
}

func (m *Menu) listAll() {
	entries := m.ledger.Entries()
	if len(entries) == 0 {
		fmt.Fprintln(m.out, "Nothing recorded yet.")
		return
	}
	w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDATE\tTYPE\tDESCRIPTION\tAMOUNT")
	for i, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, e.Date.Format(model.DateFormat), e.Kind, e.Label, m.amount(e.Amount))
	}
	w.Flush()
}

func (m *Menu) listIncomes() {
	incomes := m.ledger.Incomes()
	if len(incomes) == 0 {
		fmt.Fprintln(m.out, "No incomes.")
		return
	}
	m.printIncomes(incomes)
}

func (m *Menu) printIncomes(incomes []model.Income) {
	w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDATE\tSOURCE\tAMOUNT")
	for i, in := range incomes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, in.Date.Format(model.DateFormat), in.Source, m.amount(in.Amount))
	}
	w.Flush()
}

func (m *Menu) listExpenses() {
	expenses := m.ledger.Expenses()
	if len(expenses) == 0 {
		fmt.Fprintln(m.out, "No expenses.")
		return
	}
	m.printExpenses(expenses)
}

func (m *Menu) printExpenses(expenses []model.Expense) {
	w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tDATE\tCATEGORY\tAMOUNT\tNOTE")
	for i, ex := range expenses {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, ex.Date.Format(model.DateFormat), ex.Category, m.amount(ex.Amount), ex.Note)
	}
	w.Flush()
}

func (m *Menu) listSubscriptions() {
	subs := m.ledger.Subscriptions()
	if len(subs) == 0 {
		fmt.Fprintln(m.out, "No subscriptions.")
		return
	}
	m.printSubscriptions(subs)
}

func (m *Menu) printSubscriptions(subs []model.Subscription) {
	w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tPRICE/MONTH\tSTARTED\tSTATUS")
	for i, sub := range subs {
		status := "active"
		if !sub.Active {
			status = "paused"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			i+1, sub.Name, m.amount(sub.MonthlyPrice), sub.StartDate.Format(model.DateFormat), status)
	}
	w.Flush()
}

func (m *Menu) removeIncome() {
	m.listIncomes()
	idx, ok := m.readIndex()
	if !ok {
		return
	}
	removed, err := m.ledger.RemoveIncome(idx)
	if err != nil {
		m.fail("remove income", err)
		return
	}
	fmt.Fprintf(m.out, "Removed income %s of %s.\n", removed.Source, m.amount(removed.Amount))
}

func (m *Menu) removeExpense() {
	m.listExpenses()
	idx, ok := m.readIndex()
	if !ok {
		return
	}
	removed, err := m.ledger.RemoveExpense(idx)
	if err != nil {
		m.fail("remove expense", err)
		return
	}
	fmt.Fprintf(m.out, "Removed %s expense of %s.\n", removed.Category, m.amount(removed.Amount))
}

func (m *Menu) removeSubscription() {
	m.listSubscriptions()
	idx, ok := m.readIndex()
	if !ok {
		return
	}
	removed, err := m.ledger.RemoveSubscription(idx)
	if err != nil {
		m.fail("remove subscription", err)
		return
	}
	fmt.Fprintf(m.out, "Removed subscription %s.\n", removed.Name)
}

func (m *Menu) toggleSubscription() {
	m.listSubscriptions()
	idx, ok := m.readIndex()
	if !ok {
		return
	}
	sub, err := m.ledger.ToggleSubscription(idx)
	if err != nil {
		m.fail("toggle subscription", err)
		return
	}
	state := "active"
	if !sub.Active {
		state = "paused"
	}
	fmt.Fprintf(m.out, "Subscription %s is now %s.\n", sub.Name, state)
}

func (m *Menu) filterByDateRange() {
	fromText, _ := m.readLine("From (YYYY-MM-DD): ")
	from, err := model.ParseDate("from", fromText)
	if err != nil {
		m.fail("filter", err)
		return
	}
	toText, _ := m.readLine("To (YYYY-MM-DD): ")
	to, err := model.ParseDate("to", toText)
	if err != nil {
		m.fail("filter", err)
		return
	}

	incomes := m.ledger.IncomesBetween(from, to)
	expenses := m.ledger.ExpensesBetween(from, to)
	subs := m.ledger.SubscriptionsBetween(from, to)
	if len(incomes) == 0 && len(expenses) == 0 && len(subs) == 0 {
		fmt.Fprintln(m.out, "Nothing in that range.")
		return
	}
	if len(incomes) > 0 {
		fmt.Fprintln(m.out, "Incomes:")
		m.printIncomes(incomes)
	}
	if len(expenses) > 0 {
		fmt.Fprintln(m.out, "Expenses:")
		m.printExpenses(expenses)
	}
	if len(subs) > 0 {
		fmt.Fprintln(m.out, "Subscriptions started in range:")
		m.printSubscriptions(subs)
	}
}

func (m *Menu) expensesByCategory() {
	text, _ := m.readLine(fmt.Sprintf("Category (%s): ", categoryNames()))
	category, err := model.ParseCategory(text)
	if err != nil {
		m.fail("filter by category", err)
		return
	}
	expenses := m.ledger.ExpensesByCategory(category)
	if len(expenses) == 0 {
		fmt.Fprintf(m.out, "No %s expenses.\n", category)
		return
	}
	m.printExpenses(expenses)
}

func (m *Menu) monthlyReport() {
	period, _ := m.readLine("Month (YYYY-MM): ")
	year, month, err := report.ParsePeriod(period)
	if err != nil {
		m.fail("report", err)
		return
	}
	summary, err := report.Generate(m.ledger, year, month)
	if err != nil {
		m.fail("report", err)
		return
	}
	m.printReport(summary)
}

func (m *Menu) printReport(r *report.Monthly) {
	fmt.Fprintf(m.out, "Report for %04d-%02d (%d days)\n", r.Year, int(r.Month), r.DaysInMonth)
	fmt.Fprintf(m.out, "  Income         %s\n", m.amount(r.IncomeTotal))
	fmt.Fprintf(m.out, "  Expenses       %s\n", m.amount(r.ExpenseTotal))
	fmt.Fprintf(m.out, "  Subscriptions  %s\n", m.amount(r.SubscriptionTotal))
	fmt.Fprintf(m.out, "  Net            %s\n", m.amount(r.Net))
	if len(r.Categories) > 0 {
		fmt.Fprintln(m.out, "  By category:")
		w := tabwriter.NewWriter(m.out, 0, 4, 2, ' ', 0)
		for _, c := range r.Categories {
			fmt.Fprintf(w, "    %s\t%s\t%s\n", c.Category, m.amount(c.Total), c.Percent)
		}
		w.Flush()
	}
	if r.Largest == nil {
		fmt.Fprintln(m.out, "  No expenses this month.")
	} else {
		label := string(r.Largest.Category)
		if r.Largest.Note != "" {
			label = fmt.Sprintf("%s (%s)", r.Largest.Category, r.Largest.Note)
		}
		fmt.Fprintf(m.out, "  Largest expense: %s on %s, %s\n",
			label, r.Largest.Date.Format(model.DateFormat), m.amount(r.Largest.Amount))
	}
	fmt.Fprintf(m.out, "  Average daily spend: %s\n", m.amount(r.AverageDaily))
}

func (m *Menu) exportBundle() {
	data, err := bundle.Marshal(bundle.Snapshot(m.ledger))
	if err != nil {
		m.fail("export", err)
		return
	}
	fmt.Fprintln(m.out, string(data))
	m.log.Info().Msg("ledger exported")
}

func (m *Menu) importBundle() {
	fmt.Fprintln(m.out, "Paste the document, then a line with a single '.':")
	var lines []string
	for {
		line, ok := m.readLine("")
		if !ok || strings.TrimSpace(line) == "." {
			break
		}
		lines = append(lines, line)
	}

	b, err := bundle.Unmarshal([]byte(strings.Join(lines, "\n")))
	if err != nil {
		m.fail("import", err)
		return
	}
	if err := bundle.Restore(m.ledger, b); err != nil {
		m.fail("import", err)
		return
	}
	m.log.Info().
		Int("incomes", len(b.Incomes)).
		Int("expenses", len(b.Expenses)).
		Int("subscriptions", len(b.Subscriptions)).
		Msg("ledger imported")
	fmt.Fprintf(m.out, "Imported %d incomes, %d expenses, %d subscriptions.\n",
		len(b.Incomes), len(b.Expenses), len(b.Subscriptions))
}

// readIndex reads a 1-based display index. Non-numeric input is
// reported here; range checking belongs to the ledger.
func (m *Menu) readIndex() (int, bool) {
	text, ok := m.readLine("Number: ")
	if !ok {
		return 0, false
	}
	idx, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		fmt.Fprintln(m.out, "Not a number.")
		return 0, false
	}
	return idx, true
}

func (m *Menu) amount(d decimal.Decimal) string {
	return money.FormatWith(m.currency, d)
}

func (m *Menu) fail(op string, err error) {
	m.log.Debug().Err(err).Str("op", op).Msg("rejected")
	fmt.Fprintf(m.out, "Error: %v\n", err)
}

func categoryNames() string {
	names := make([]string, 0, 5)
	for _, c := range model.Categories() {
		names = append(names, string(c))
	}
	return strings.Join(names, "/")
}

