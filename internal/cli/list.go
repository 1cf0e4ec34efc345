package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tradelab/trading-support/internal/ledger"
	"github.com/tradelab/trading-support/internal/types"
)

var pendingCmd = &cobra.Command{
	Use:   "pending",
	Short: "List trades still waiting for execution or settlement",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, err := openLedger()
		if err != nil {
			return err
		}

		trades, err := svc.ListTrades(types.StatusPending)
		if err != nil {
			return err
		}
		if len(trades) == 0 {
			fmt.Println("No pending trades.")
			return nil
		}
		fmt.Print(renderTradeList(trades))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show every field of a single trade",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		svc, err := openLedger()
		if err != nil {
			return err
		}

		trade, err := svc.GetTrade(args[0])
		if err != nil {
			return err
		}
		if trade == nil {
			return ledger.ErrTradeNotFound
		}
		fmt.Print(renderTrade(trade))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate performance over all settled trades",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		svc, err := openLedger()
		if err != nil {
			return err
		}

		stats, err := svc.Stats()
		if err != nil {
			return err
		}
		fmt.Print(renderStats(stats))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pendingCmd, showCmd, statsCmd)
}
