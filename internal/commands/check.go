package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tally-dev/tally/internal/bundle"
)

// newCheckCommand validates a bundle document on stdin: schema first,
// then every record against the same rules interactive entry uses.
func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate a bundle document on stdin",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := readLedger(cmd.InOrStdin())
			if err != nil {
				return err
			}
			b := bundle.Snapshot(l)
			fmt.Fprintf(cmd.OutOrStdout(), "OK: %d incomes, %d expenses, %d subscriptions\n",
				len(b.Incomes), len(b.Expenses), len(b.Subscriptions))
			return nil
		},
	}
}
