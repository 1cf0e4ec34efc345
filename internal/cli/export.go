package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradelab/trading-support/internal/ledger"
)

var (
	exportOut    string
	exportFormat string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the full trade history to CSV or JSON",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, err := openLedger()
		if err != nil {
			return err
		}

		out, err := svc.Export(exportOut, exportFormat)
		if err != nil {
			return err
		}
		fmt.Printf("Exported trade history to %s\n", out)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "data/trades_export.csv", "export destination")
	exportCmd.Flags().StringVar(&exportFormat, "format", ledger.FormatCSV, "export format (csv/json)")
	rootCmd.AddCommand(exportCmd)
}
