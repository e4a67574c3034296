package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/report"
)

func newReportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "report <YYYY-MM>",
		Short: "Show one month's cash-flow summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			snap, err := e.svc.Load()
			if err != nil {
				return err
			}

			r := report.Monthly(snap.Transactions, args[0])
			fmt.Printf("Month:         %s (%d transactions)\n", r.Month, r.Count)
			fmt.Printf("Deposits:      %s\n", r.Deposits.StringFixed(2))
			fmt.Printf("Withdrawals:   %s\n", r.Withdraws.StringFixed(2))
			fmt.Printf("Dividends:     %s\n", r.Dividends.StringFixed(2))
			fmt.Printf("Fees:          %s\n", r.Fees.StringFixed(2))
			fmt.Printf("Buys:          %s\n", r.Buys.StringFixed(2))
			fmt.Printf("Sells:         %s\n", r.Sells.StringFixed(2))
			fmt.Printf("Net cash flow: %s\n", r.NetCashFlow.StringFixed(2))
			return nil
		},
	}
}
