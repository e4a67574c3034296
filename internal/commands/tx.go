package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/id"
	"github.com/folio-dev/folio/internal/model"
)

func newTxCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Manage ledger transactions",
	}
	cmd.AddCommand(newTxAddCommand(dir))
	cmd.AddCommand(newTxEditCommand(dir))
	cmd.AddCommand(newTxRmCommand(dir))
	cmd.AddCommand(newTxListCommand(dir))
	return cmd
}

// txFlags are the transaction fields shared by add and edit.
type txFlags struct {
	date  string
	typ   string
	asset string
	qty   string
	price string
	fees  string
	note  string
}

func (f *txFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.date, "date", "", "transaction date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&f.typ, "type", "", "deposit|withdraw|buy|sell|dividend|fee")
	cmd.Flags().StringVar(&f.asset, "asset", "", "ticker (buy/sell only)")
	cmd.Flags().StringVar(&f.qty, "qty", "", "traded quantity (buy/sell only)")
	cmd.Flags().StringVar(&f.price, "price", "", "unit price for trades, cash amount otherwise")
	cmd.Flags().StringVar(&f.fees, "fees", "", "transaction fees")
	cmd.Flags().StringVar(&f.note, "note", "", "free-text note")
}

// apply overlays the set flags onto a transaction.
func (f *txFlags) apply(cmd *cobra.Command, tx *model.Transaction) error {
	if cmd.Flags().Changed("date") {
		d, err := model.ParseDate(f.date)
		if err != nil {
			return err
		}
		tx.Date = d
	}
	if cmd.Flags().Changed("type") {
		tx.Type = model.TxType(f.typ)
	}
	if cmd.Flags().Changed("asset") {
		tx.Asset = model.NormalizeAsset(f.asset)
	}
	if cmd.Flags().Changed("note") {
		tx.Note = f.note
	}

	for _, numeric := range []struct {
		name  string
		value string
		dst   *decimal.Decimal
	}{
		{"qty", f.qty, &tx.Qty},
		{"price", f.price, &tx.Price},
		{"fees", f.fees, &tx.Fees},
	} {
		if !cmd.Flags().Changed(numeric.name) {
			continue
		}
		d, err := decimal.NewFromString(numeric.value)
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", numeric.name, numeric.value, err)
		}
		*numeric.dst = d
	}
	return nil
}

func newTxAddCommand(dir *string) *cobra.Command {
	var flags txFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a transaction to the ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}

			tx := model.Transaction{Date: model.Today()}
			if err := flags.apply(cmd, &tx); err != nil {
				return err
			}
			tx.ID = id.New(tx.Date)

			if err := e.svc.Append(tx); err != nil {
				return err
			}
			if err := e.recordChange("tx add", tx.ID, string(tx.Type)); err != nil {
				return err
			}

			fmt.Printf("Added %s (%s %s)\n", tx.ID, tx.Type, tx.Date)
			return nil
		},
	}

	flags.register(cmd)
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("price")

	return cmd
}

func newTxEditCommand(dir *string) *cobra.Command {
	var flags txFlags

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Replace fields of an existing transaction",
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
			tx, ok := findTx(snap.Transactions, args[0])
			if !ok {
				return fmt.Errorf("transaction %s not found", args[0])
			}

			if err := flags.apply(cmd, &tx); err != nil {
				return err
			}
			if err := e.svc.Replace(tx); err != nil {
				return err
			}
			if err := e.recordChange("tx edit", tx.ID, string(tx.Type)); err != nil {
				return err
			}

			fmt.Printf("Updated %s\n", tx.ID)
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func newTxRmCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a transaction from the ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			if err := e.svc.Remove(args[0]); err != nil {
				return err
			}
			if err := e.recordChange("tx rm", args[0], ""); err != nil {
				return err
			}
			fmt.Printf("Removed %s\n", args[0])
			return nil
		},
	}
}

func newTxListCommand(dir *string) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger transactions in replay order",
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

			txs := snap.Transactions
			if month != "" {
				filtered := txs[:0:0]
				for _, tx := range txs {
					if tx.Date.Month() == month {
						filtered = append(filtered, tx)
					}
				}
				txs = filtered
			}
			sort.SliceStable(txs, func(i, j int) bool {
				return txs[i].Date.Before(txs[j].Date)
			})

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tDATE\tTYPE\tASSET\tQTY\tPRICE\tFEES\tCASH\tNOTE")
			for _, tx := range txs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
					tx.ID, tx.Date, tx.Type, tx.Asset,
					tx.Qty, tx.Price, tx.Fees, tx.Total().StringFixed(2), tx.Note)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "filter by month (YYYY-MM)")

	return cmd
}

func findTx(txs []model.Transaction, txID string) (model.Transaction, bool) {
	for _, tx := range txs {
		if tx.ID == txID {
			return tx, true
		}
	}
	return model.Transaction{}, false
}
