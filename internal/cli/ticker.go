package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/tradelab/trading-support/internal/config"
	"github.com/tradelab/trading-support/internal/exchange"
)

var tickerCmd = &cobra.Command{
	Use:   "ticker <symbol>",
	Short: "Fetch the public market snapshot for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		client := exchange.NewClient(cfg)
		snapshot, err := client.Ticker(strings.ToUpper(args[0]))
		if err != nil {
			return err
		}

		keys := make([]string, 0, len(snapshot))
		for k := range snapshot {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Printf("%s%v\n", labelStyle.Render(fmt.Sprintf("%-12s", k)), snapshot[k])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tickerCmd)
}
