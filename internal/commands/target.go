package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/model"
)

func newTargetCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "target",
		Short: "Manage target allocation percentages",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <asset> <percent>",
		Short: "Set an asset's target allocation (percentage points)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			pct, err := decimal.NewFromString(args[1])
			if err != nil {
				return fmt.Errorf("parsing percentage %q: %w", args[1], err)
			}
			asset := model.NormalizeAsset(args[0])
			if err := e.svc.SetTarget(asset, pct); err != nil {
				return err
			}
			if err := e.recordChange("target set", asset, pct.String()+"%"); err != nil {
				return err
			}
			fmt.Printf("Target %s = %s%%\n", asset, pct)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "rm <asset>",
		Short: "Remove an asset's target allocation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			asset := model.NormalizeAsset(args[0])
			if err := e.svc.RemoveTarget(asset); err != nil {
				return err
			}
			if err := e.recordChange("target rm", asset, ""); err != nil {
				return err
			}
			fmt.Printf("Removed target for %s\n", asset)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List target allocations",
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

			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ASSET\tTARGET %")
			for _, asset := range sortedKeys(snap.Targets) {
				fmt.Fprintf(w, "%s\t%s\n", asset, snap.Targets[asset])
			}
			return w.Flush()
		},
	})

	return cmd
}
