package commands

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newGoalCommand(dir *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "goal",
		Short: "Manage the target equity goal",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <amount>",
		Short: "Set the target equity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			amount, err := decimal.NewFromString(args[0])
			if err != nil {
				return fmt.Errorf("parsing amount %q: %w", args[0], err)
			}
			if err := e.svc.SetGoal(amount); err != nil {
				return err
			}
			if err := e.recordChange("goal set", amount.String(), ""); err != nil {
				return err
			}
			fmt.Printf("Goal equity = %s\n", amount)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Clear the target equity",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			if err := e.svc.ClearGoal(); err != nil {
				return err
			}
			if err := e.recordChange("goal clear", "", ""); err != nil {
				return err
			}
			fmt.Println("Goal cleared")
			return nil
		},
	})

	return cmd
}
