// Package cli wires the interactive command surface: cobra commands,
// survey prompts, and table rendering over the ledger and exchange
// client.
package cli

import (
	"github.com/spf13/cobra"
	"github.com/tradelab/trading-support/internal/config"
	"github.com/tradelab/trading-support/internal/database"
	"github.com/tradelab/trading-support/internal/ledger"
)

var (
	cfgPath string
	dbPath  string
)

var rootCmd = &cobra.Command{
	Use:   "journal",
	Short: "Personal trade journal and order-execution assistant",
	Long: `Journal records trade theses, optionally places the matching order on
the exchange, tracks each trade through its lifecycle
(pending -> executed -> closed), and reports realized PnL and
aggregate performance.

Typical flow:
  journal plan              record a thesis, preview it, execute or leave pending
  journal settle <id>       close a trade at its exit price
  journal pending           list trades still waiting
  journal stats             aggregate performance
  journal export            dump the full history to CSV or JSON`,
	SilenceUsage: true,
}

// Execute runs the root command tree.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default "+config.DefaultPath+" or $"+config.EnvConfigPath+")")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", database.DefaultPath, "path to the trade journal database")
}

// openLedger opens the journal store for commands that touch trade state.
func openLedger() (*ledger.Service, error) {
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		return nil, err
	}
	return ledger.NewService(db), nil
}
