package cli

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/tradelab/trading-support/internal/briefing"
	"github.com/tradelab/trading-support/internal/config"
	"github.com/tradelab/trading-support/internal/exchange"
	"github.com/tradelab/trading-support/internal/ledger"
	"github.com/tradelab/trading-support/internal/notify"
)

var (
	planOrderType string
	planNote      string
	planPaper     bool
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Record a trade thesis, preview it, and optionally execute",
	Long: `Plan walks through the pre-trade checklist: it prompts for the thesis,
delivers the briefing to the notification channel, records the trade
as pending, and on confirmation either paper-executes it or places a
real order on the exchange.`,
	Args: cobra.NoArgs,
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVar(&planOrderType, "order-type", "limit", "order type (limit/market)")
	planCmd.Flags().StringVar(&planNote, "note", "", "extra context for the briefing")
	planCmd.Flags().BoolVar(&planPaper, "paper", false, "force paper trade irrespective of config")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	answers, err := promptPlan()
	if err != nil {
		return err
	}

	summary := briefing.Render(briefing.Plan{
		Asset:      answers.Asset,
		Direction:  answers.Direction,
		Size:       answers.Size,
		EntryPrice: answers.EntryPrice,
		ExitLogic:  answers.ExitLogic,
		Reasoning:  answers.Reasoning,
		Extra:      planNote,
	})

	// Delivery comes before recording: a briefing that never reached
	// the channel must not leave an orphaned ledger entry behind.
	if cfg.TelegramBotToken != "" && cfg.TelegramTarget != "" {
		fmt.Println("Sending the pre-trade brief to Telegram...")
		notifier := notify.NewTelegramNotifier(cfg.TelegramBotToken, cfg.TelegramTarget)
		if err := notifier.Send(summary); err != nil {
			return fmt.Errorf("failed to send briefing: %w", err)
		}
	} else {
		log.Warn().Msg("telegram not configured, skipping briefing delivery")
	}

	svc, err := openLedger()
	if err != nil {
		return err
	}

	tradeID, err := svc.CreateTrade(answers.Asset, answers.Direction, answers.EntryPrice, answers.Size, answers.Reasoning, answers.ExitLogic, summary)
	if err != nil {
		return err
	}
	fmt.Printf("Pre-trade briefing recorded (trade id: %s).\n", tradeID)

	execute, err := confirm("Execute trade now?")
	if err != nil {
		return err
	}
	if !execute {
		fmt.Println("Trade left pending. You can execute later with `settle`.")
		return nil
	}

	// Explicit --paper beats the config default.
	usePaper := *cfg.PaperTrade
	if cmd.Flags().Changed("paper") {
		usePaper = planPaper
	}

	if usePaper {
		if err := svc.MarkExecuted(tradeID, answers.EntryPrice, ""); err != nil {
			return err
		}
		fmt.Println("Paper trade recorded.")
		return displayTrade(svc, tradeID)
	}

	client := exchange.NewClient(cfg)
	fmt.Println("Placing order via exchange API...")
	resp, err := client.PlaceOrder(answers.Asset, answers.Direction, answers.Size, &answers.EntryPrice, planOrderType)
	if err != nil {
		return err
	}

	executedPrice := resp.Price
	if executedPrice == 0 {
		executedPrice = answers.EntryPrice
	}
	if err := svc.MarkExecuted(tradeID, executedPrice, resp.OrderID); err != nil {
		return err
	}
	fmt.Println("Trade executed.")
	return displayTrade(svc, tradeID)
}

func displayTrade(svc *ledger.Service, tradeID string) error {
	trade, err := svc.GetTrade(tradeID)
	if err != nil {
		return err
	}
	if trade == nil {
		return ledger.ErrTradeNotFound
	}
	fmt.Print(renderTrade(trade))
	return nil
}
