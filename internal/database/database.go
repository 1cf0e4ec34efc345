package database

import (
	"os"
	"path/filepath"

	"github.com/tradelab/trading-support/internal/types"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DefaultPath is where the journal lives unless the caller says otherwise.
const DefaultPath = "data/trades.db"

// NewDatabase opens (creating if needed) the SQLite journal at path and
// returns a GORM DB connection with the schema migrated. Parent
// directories are created as needed. Durability and cross-process
// serialization are SQLite's own transaction guarantees; no extra
// locking layer is added here.
func NewDatabase(path string) (*gorm.DB, error) {
	if path == "" {
		path = DefaultPath
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(&types.Trade{}); err != nil {
		return nil, err
	}

	return db, nil
}
