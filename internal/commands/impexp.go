package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/folio-dev/folio/internal/id"
	"github.com/folio-dev/folio/internal/importer"
)

func newImportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the snapshot with another snapshot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			if err := e.svc.Import(args[0]); err != nil {
				return err
			}
			if err := e.recordChange("import", args[0], "replaced snapshot"); err != nil {
				return err
			}
			fmt.Printf("Imported %s\n", args[0])
			return nil
		},
	}
}

func newExportCommand(dir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "export <file>",
		Short: "Write the snapshot to another file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}
			if err := e.svc.Export(args[0]); err != nil {
				return err
			}
			fmt.Printf("Exported to %s\n", args[0])
			return nil
		},
	}
}

func newImportCSVCommand(dir *string) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import-csv <file>",
		Short: "Append transactions from a CSV export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(*dir)
			if err != nil {
				return err
			}

			registry := importer.DefaultRegistry()
			parser := registry.Get(format)
			if parser == nil {
				return fmt.Errorf("unknown format %q (have: %v)", format, registry.Formats())
			}

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("opening %s: %w", args[0], err)
			}
			defer f.Close()

			txns, err := parser.Parse(f)
			if err != nil {
				return fmt.Errorf("parsing %s: %w", args[0], err)
			}

			for _, tx := range txns {
				tx.ID = id.New(tx.Date)
				if err := e.svc.Append(tx); err != nil {
					return fmt.Errorf("appending row for %s: %w", tx.Date, err)
				}
			}
			if err := e.recordChange("import-csv", args[0], fmt.Sprintf("%d transactions", len(txns))); err != nil {
				return err
			}

			fmt.Printf("Imported %d transactions from %s\n", len(txns), args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "generic", "CSV format")

	return cmd
}
