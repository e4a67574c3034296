package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var dir string

	rootCmd := &cobra.Command{
		Use:     "folio",
		Short:   "Personal portfolio ledger and accounting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&dir, "dir", "C", ".", "portfolio data directory")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newTxCommand(&dir))
	rootCmd.AddCommand(newPriceCommand(&dir))
	rootCmd.AddCommand(newTargetCommand(&dir))
	rootCmd.AddCommand(newGoalCommand(&dir))
	rootCmd.AddCommand(newBudgetCommand(&dir))
	rootCmd.AddCommand(newSummaryCommand(&dir))
	rootCmd.AddCommand(newHistoryCommand(&dir))
	rootCmd.AddCommand(newReportCommand(&dir))
	rootCmd.AddCommand(newRebalanceCommand(&dir))
	rootCmd.AddCommand(newImportCommand(&dir))
	rootCmd.AddCommand(newExportCommand(&dir))
	rootCmd.AddCommand(newImportCSVCommand(&dir))

	return rootCmd
}
