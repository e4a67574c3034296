package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/ledger"
	"github.com/folio-dev/folio/internal/model"
)

func newHistoryCommand(dir *string) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Reconstruct the trailing equity curve",
		Long: "Reconstructs daily equity over the trailing window. Holdings on " +
			"every day are valued at the latest manually entered prices; there " +
			"is no historical price feed.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			snap, err := e.svc.Load()
			if err != nil {
				return err
			}

			window := days
			if window <= 0 {
				window = e.cfg.History.WindowDays
			}

			series := ledger.EquitySeries(snap.Transactions, snap.Prices, window, model.Today())
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "DATE\tEQUITY")
			for _, p := range series {
				fmt.Fprintf(w, "%s\t%s\n", p.Date, p.Equity.StringFixed(2))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "window length in days (default from config)")

	return cmd
}
