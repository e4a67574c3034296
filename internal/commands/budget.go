package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/report"
)

func newBudgetCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "budget",
		Short: "Manage monthly deposit budgets",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <YYYY-MM> <amount>",
		Short: "Set a month's deposit target",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[1], err)
			}
			if err := e.svc.SetBudget(args[0], amount); err != nil {
				return err
			}
			if err := e.recordChange("budget set", args[0], amount.String()); err != nil {
				return err
			}
			fmt.Printf("Budget %s = %s\n", args[0], amount)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <YYYY-MM>",
		Short: "Remove a month's deposit target",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			if err := e.svc.RemoveBudget(args[0]); err != nil {
				return err
			}
			if err := e.recordChange("budget rm", args[0], ""); err != nil {
				return err
			}
			fmt.Printf("Removed budget for %s\n", args[0])
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Compare budgeted months against actual deposits",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			snap, err := e.svc.Load()
			if err != nil {
				return err
			}

			lines := report.BudgetStatus(snap.Transactions, snap.Budgets)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "MONTH\tTARGET\tACTUAL\tSHORTFALL\tMET")
			for _, l := range lines {
				met := "no"
				if l.Met {
					met = "yes"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					l.Month, l.Target.StringFixed(2), l.Actual.StringFixed(2),
					l.Shortfall.StringFixed(2), met)
			}
			return w.Flush()
		},
	})

	return cmd
}
