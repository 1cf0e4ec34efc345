package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settleNote string

var settleCmd = &cobra.Command{
	Use:   "settle <trade-id>",
	Short: "Close a trade at its exit price and realize the PnL",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		svc, err := openLedger()
		if err != nil {
			return err
		}

		exitPrice, err := promptExitPrice()
		if err != nil {
			return err
		}

		trade, err := svc.SettleTrade(args[0], exitPrice, settleNote)
		if err != nil {
			return err
		}

		fmt.Printf("Trade %s closed with realized P&L: %s\n", trade.ID, renderPnL(*trade.RealizedPnL))
		return nil
	},
}

func init() {
	settleCmd.Flags().StringVar(&settleNote, "note", "", "note to store with the settlement")
	rootCmd.AddCommand(settleCmd)
}
