package ledger

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/tradelab/trading-support/internal/types"
	"gorm.io/gorm"
)

var (
	ErrTradeNotFound = errors.New("trade not found")
	// ErrNotExecuted means the trade has no recorded entry price, so
	// there is nothing to settle against.
	ErrNotExecuted = errors.New("entry price not recorded yet")
	ErrTradeClosed = errors.New("trade already closed")
	// ErrNotPending means the trade already moved past the pending
	// state and cannot be marked executed again.
	ErrNotPending = errors.New("trade is not pending")
)

// timeFormat is ISO-8601 with fixed-width microseconds so stored
// timestamps order lexicographically.
const timeFormat = "2006-01-02T15:04:05.000000Z07:00"

// Service is the single source of truth for trade state. Every
// mutation is committed before the call returns.
type Service struct {
	db *Database
}

func NewService(gormDB *gorm.DB) *Service {
	return &Service{
		db: NewDatabase(gormDB),
	}
}

// CreateTrade records a planned trade and returns its id. The side is
// accepted case-insensitively and stored lowercase; the entry price
// recorded here is the planned one, overwritten at execution with the
// actual fill.
func (s *Service) CreateTrade(asset, side string, entryPrice, size float64, reasoning, exitLogic, summary string) (string, error) {
	normalized, err := types.NormalizeSide(side)
	if err != nil {
		return "", err
	}

	trade := &types.Trade{
		ID:              uuid.New().String(),
		Timestamp:       time.Now().UTC().Format(timeFormat),
		Asset:           asset,
		Side:            normalized,
		EntryPrice:      &entryPrice,
		Size:            size,
		Reasoning:       reasoning,
		ExitLogic:       exitLogic,
		Status:          types.StatusPending,
		PreTradeMessage: summary,
	}

	if err := s.db.CreateTrade(trade); err != nil {
		return "", err
	}

	log.Info().
		Str("trade_id", trade.ID).
		Str("asset", asset).
		Str("side", normalized).
		Float64("size", size).
		Msg("trade plan recorded")

	return trade.ID, nil
}

// MarkExecuted moves a pending trade to executed, overwriting the
// planned entry price with the actual fill price and storing the
// exchange order id when one exists.
func (s *Service) MarkExecuted(tradeID string, executedPrice float64, orderID string) error {
	trade, err := s.db.GetTrade(tradeID)
	if err != nil {
		return err
	}
	if trade == nil {
		return ErrTradeNotFound
	}
	if trade.Status != types.StatusPending {
		return ErrNotPending
	}

	trade.EntryPrice = &executedPrice
	trade.Status = types.StatusExecuted
	if orderID != "" {
		trade.OrderID = &orderID
	}

	if err := s.db.UpdateTrade(trade); err != nil {
		return err
	}

	log.Info().
		Str("trade_id", tradeID).
		Float64("executed_price", executedPrice).
		Str("order_id", orderID).
		Msg("trade marked executed")

	return nil
}

// SettleTrade closes a trade at exitPrice and computes its realized
// PnL: (exit-entry)*size for buys, (entry-exit)*size for sells. A
// closed trade never changes again.
func (s *Service) SettleTrade(tradeID string, exitPrice float64, note string) (*types.Trade, error) {
	trade, err := s.db.GetTrade(tradeID)
	if err != nil {
		return nil, err
	}
	if trade == nil {
		return nil, ErrTradeNotFound
	}
	if trade.Status == types.StatusClosed {
		return nil, ErrTradeClosed
	}
	if trade.EntryPrice == nil {
		return nil, ErrNotExecuted
	}

	var pnl float64
	if trade.Side == types.SideBuy {
		pnl = (exitPrice - *trade.EntryPrice) * trade.Size
	} else {
		pnl = (*trade.EntryPrice - exitPrice) * trade.Size
	}

	exitTime := time.Now().UTC().Format(timeFormat)
	trade.ExitPrice = &exitPrice
	trade.ExitTime = &exitTime
	trade.RealizedPnL = &pnl
	trade.Status = types.StatusClosed
	if note != "" {
		trade.ExitNote = &note
	}

	if err := s.db.UpdateTrade(trade); err != nil {
		return nil, err
	}

	log.Info().
		Str("trade_id", tradeID).
		Float64("exit_price", exitPrice).
		Float64("realized_pnl", pnl).
		Msg("trade settled")

	return trade, nil
}

// GetTrade returns nil without error when the id is unknown.
func (s *Service) GetTrade(tradeID string) (*types.Trade, error) {
	return s.db.GetTrade(tradeID)
}

// ListTrades returns trades newest first by creation timestamp. An
// empty status returns everything.
func (s *Service) ListTrades(status string) ([]types.Trade, error) {
	return s.db.ListTrades(status)
}

// Stats aggregates over all trades with a realized PnL. Zero closed
// trades yields all-zero stats, never a division by zero.
func (s *Service) Stats() (*types.Stats, error) {
	trades, err := s.db.SettledTrades()
	if err != nil {
		return nil, err
	}

	stats := &types.Stats{}
	for _, trade := range trades {
		if trade.RealizedPnL == nil {
			continue
		}
		pnl := *trade.RealizedPnL
		stats.Trades++
		stats.TotalPnL += pnl
		if pnl > 0 {
			stats.Wins++
		} else if pnl < 0 {
			stats.Losses++
		}
	}
	if stats.Trades > 0 {
		stats.AveragePnL = stats.TotalPnL / float64(stats.Trades)
		stats.WinRate = float64(stats.Wins) / float64(stats.Trades) * 100
	}
	return stats, nil
}
