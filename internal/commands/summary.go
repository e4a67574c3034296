package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/ledger"
)

func newSummaryCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show cash, positions, P&L and total equity",
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

			kpis := ledger.ComputeKPIs(snap.Transactions, snap.Prices)

			fmt.Printf("Cash:       %s\n", kpis.Cash.StringFixed(2))
			fmt.Printf("Invested:   %s\n", kpis.Invested.StringFixed(2))
			fmt.Printf("Equity:     %s\n", kpis.Equity.StringFixed(2))
			fmt.Printf("Unrealized: %s\n", kpis.Unrealized.StringFixed(2))
			fmt.Printf("Realized:   %s\n", kpis.Realized.StringFixed(2))

			if goal := snap.Goals.Equity; goal != nil && goal.IsPositive() {
				pct := kpis.Equity.Div(*goal).Mul(hundredPct)
				fmt.Printf("Goal:       %s of %s (%s%%)\n",
					kpis.Equity.StringFixed(2), goal.StringFixed(2), pct.StringFixed(1))
			}

			if len(kpis.Positions) == 0 {
				return nil
			}

			assets := make([]string, 0, len(kpis.Positions))
			for asset := range kpis.Positions {
				assets = append(assets, asset)
			}
			sort.Strings(assets)

			fmt.Println()
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ASSET\tQTY\tAVG COST\tCOST BASIS\tPRICE\tVALUE\tREALIZED")
			for _, asset := range assets {
				lot := kpis.Positions[asset]
				price := snap.Prices[asset]
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					asset, lot.Quantity, lot.AverageCost.StringFixed(2),
					lot.CostBasis.StringFixed(2), price,
					lot.Quantity.Mul(price).StringFixed(2), lot.RealizedPnL.StringFixed(2))
			}
			return w.Flush()
		},
	}
}
