package ledger

import (
	"errors"

	"github.com/tradelab/trading-support/internal/types"
	"gorm.io/gorm"
)

// Database wraps the GORM connection with typed accessors for the
// trades table. Row-to-record mapping lives in the Trade struct's
// column tags; nothing here enumerates fields reflectively.
type Database struct {
	db *gorm.DB
}

func NewDatabase(db *gorm.DB) *Database {
	return &Database{db: db}
}

func (d *Database) CreateTrade(trade *types.Trade) error {
	return d.db.Create(trade).Error
}

// GetTrade returns nil without error when no row matches.
func (d *Database) GetTrade(tradeID string) (*types.Trade, error) {
	var trade types.Trade
	if err := d.db.Where("id = ?", tradeID).First(&trade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trade, nil
}

func (d *Database) UpdateTrade(trade *types.Trade) error {
	return d.db.Save(trade).Error
}

// ListTrades returns trades newest first, optionally filtered by status.
func (d *Database) ListTrades(status string) ([]types.Trade, error) {
	var trades []types.Trade
	query := d.db.Order("timestamp DESC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}

// SettledTrades returns every trade with a realized PnL on record.
func (d *Database) SettledTrades() ([]types.Trade, error) {
	var trades []types.Trade
	if err := d.db.Where("realized_pnl IS NOT NULL").Find(&trades).Error; err != nil {
		return nil, err
	}
	return trades, nil
}
