package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/bundle"
	"github.com/tally-dev/tally/internal/ledger"
	"github.com/tally-dev/tally/internal/money"
	"github.com/tally-dev/tally/internal/report"
)

// newReportCommand prints a monthly summary for a bundle document read
// from stdin. Memory is per-process, so scripted use moves state as
// document text.
func newReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report YYYY-MM",
		Short: "Print a monthly report for a bundle document on stdin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, err := report.ParsePeriod(args[0])
			if err != nil {
				return err
			}

			l, err := readLedger(cmd.InOrStdin())
			if err != nil {
				return err
			}

			summary, err := report.Generate(l, year, month)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report for %04d-%02d (%d days)\n", summary.Year, int(summary.Month), summary.DaysInMonth)
			fmt.Fprintf(out, "  Income         %s\n", money.Format(summary.IncomeTotal))
			fmt.Fprintf(out, "  Expenses       %s\n", money.Format(summary.ExpenseTotal))
			fmt.Fprintf(out, "  Subscriptions  %s\n", money.Format(summary.SubscriptionTotal))
			fmt.Fprintf(out, "  Net            %s\n", money.Format(summary.Net))
			for _, c := range summary.Categories {
				fmt.Fprintf(out, "    %-10s %s  %s\n", c.Category, money.Format(c.Total), c.Percent)
			}
			if summary.Largest == nil {
				fmt.Fprintln(out, "  No expenses this month.")
			} else {
				fmt.Fprintf(out, "  Largest expense: %s on %s, %s\n",
					summary.Largest.Category, summary.Largest.Date.Format("2006-01-02"), money.Format(summary.Largest.Amount))
			}
			fmt.Fprintf(out, "  Average daily spend: %s\n", money.Format(summary.AverageDaily))
			return nil
		},
	}
}

// readLedger restores a fresh ledger from document text on r.
func readLedger(r io.Reader) (*ledger.Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	b, err := bundle.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	l := ledger.New()
	if err := bundle.Restore(l, b); err != nil {
		return nil, err
	}
	return l, nil
}
