package commands

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/model"
)

func newPriceCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Manage the manual price snapshot",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <asset> <price>",
		Short: "Set the latest unit price for an asset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			price, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing price %q: %w", args[1], err)
			}
			asset := model.NormalizeAsset(args[0])
			if err := e.svc.SetPrice(asset, price); err != nil {
				return err
			}
			if err := e.recordChange("price set", asset, price.String()); err != nil {
				return err
			}
			fmt.Printf("Price %s = %s\n", asset, price)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <asset>",
		Short: "Remove an asset's price",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			asset := model.NormalizeAsset(args[0])
			if err := e.svc.RemovePrice(asset); err != nil {
				return err
			}
			if err := e.recordChange("price rm", asset, ""); err != nil {
				return err
			}
			fmt.Printf("Removed price for %s\n", asset)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the price snapshot",
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

			assets := sortedKeys(snap.Prices)
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ASSET\tPRICE")
			for _, asset := range assets {
				fmt.Fprintf(w, "%s\t%s\n", asset, snap.Prices[asset])
			}
			return w.Flush()
		},
	})

	return cmd
}

func sortedKeys(m map[string]decimal.Decimal) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
