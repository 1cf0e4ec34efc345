package types

import (
	"errors"
	"strconv"
	"strings"
)

// Trade sides
const (
	SideBuy  = "buy"
	SideSell = "sell"
)

// Trade lifecycle statuses. A trade only ever moves forward:
// pending -> executed -> closed.
const (
	StatusPending  = "pending"
	StatusExecuted = "executed"
	StatusClosed   = "closed"
)

var ErrInvalidSide = errors.New("side must be buy or sell")

// Trade is the unit of persistence: one row per trade in the journal.
// Descriptive fields are set at creation and never change; lifecycle
// fields are mutated only by MarkExecuted and SettleTrade.
type Trade struct {
	ID              string   `gorm:"primaryKey" json:"id"`
	Timestamp       string   `json:"timestamp"` // creation time, UTC RFC 3339
	Asset           string   `json:"asset"`
	Side            string   `json:"side"` // buy or sell, lowercase
	EntryPrice      *float64 `json:"entry_price"`
	Size            float64  `json:"size"`
	Reasoning       string   `json:"reasoning"`
	ExitLogic       string   `json:"exit_logic"`
	Status          string   `json:"status"` // pending, executed, closed
	PreTradeMessage string   `json:"pre_trade_message"`
	OrderID         *string  `json:"order_id"`
	ExitPrice       *float64 `json:"exit_price"`
	ExitTime        *string  `json:"exit_time"` // UTC RFC 3339
	// Explicit column name because default GORM naming turns "PnL" into "pn_l".
	RealizedPnL *float64 `gorm:"column:realized_pnl" json:"realized_pnl"`
	ExitNote    *string  `json:"exit_note"`
}

func (Trade) TableName() string {
	return "trades"
}

// ExportFields is the declared column order shared by every tabular
// rendering of a trade: CSV export headers and display tables. It must
// match the field order of the Trade struct.
var ExportFields = []string{
	"id",
	"timestamp",
	"asset",
	"side",
	"entry_price",
	"size",
	"reasoning",
	"exit_logic",
	"status",
	"pre_trade_message",
	"order_id",
	"exit_price",
	"exit_time",
	"realized_pnl",
	"exit_note",
}

// ExportRow renders the trade in ExportFields order. Null fields become
// empty strings.
func (t *Trade) ExportRow() []string {
	return []string{
		t.ID,
		t.Timestamp,
		t.Asset,
		t.Side,
		floatField(t.EntryPrice),
		strconv.FormatFloat(t.Size, 'f', -1, 64),
		t.Reasoning,
		t.ExitLogic,
		t.Status,
		t.PreTradeMessage,
		stringField(t.OrderID),
		floatField(t.ExitPrice),
		stringField(t.ExitTime),
		floatField(t.RealizedPnL),
		stringField(t.ExitNote),
	}
}

// NormalizeSide lowercases the side and rejects anything that is not
// buy or sell.
func NormalizeSide(side string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(side))
	if s != SideBuy && s != SideSell {
		return "", ErrInvalidSide
	}
	return s, nil
}

// Stats aggregates realized performance over all closed trades.
type Stats struct {
	Trades     int     `json:"trades"`
	TotalPnL   float64 `json:"total_pnl"`
	AveragePnL float64 `json:"average_pnl"`
	Wins       int     `json:"wins"`
	Losses     int     `json:"losses"`
	WinRate    float64 `json:"win_rate"`
}

func stringField(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func floatField(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}
