package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/ledger"
	"github.com/folio-dev/folio/internal/rebalance"
)

var hundredPct = decimal.NewFromInt(100)

func newRebalanceCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rebalance",
		Short: "Suggest trades toward the target allocation",
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

			positions := ledger.Positions(snap.Transactions)
			lines, note := rebalance.Suggestions(positions, snap.Prices, snap.Targets)

			if len(lines) == 0 {
				fmt.Println(note)
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ASSET\tTARGET %\tCURRENT %\tCURRENT\tTARGET\tACTION")
			for _, l := range lines {
				action := "hold"
				if l.Diff.IsPositive() {
					action = "buy " + l.Diff.StringFixed(2)
				} else if l.Diff.IsNegative() {
					action = "sell " + l.Diff.Abs().StringFixed(2)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
					l.Asset, l.TargetPct, l.CurrentPct.StringFixed(1),
					l.CurrentValue.StringFixed(2), l.TargetValue.StringFixed(2), action)
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Println(note)
			return nil
		},
	}
}
