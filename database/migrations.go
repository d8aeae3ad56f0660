package database

import (
	"fmt"

	"gorm.io/gorm"
)

// OptimizeIndexes creates the indexes backing the stats queries.
func OptimizeIndexes(db *gorm.DB) error {
	// Exchange-scoped lookups, newest trades first
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_merged_trades_exchange_date
		ON merged_trades (exchange, trade_date DESC)
	`).Error; err != nil {
		return fmt.Errorf("failed to create exchange/date index: %w", err)
	}

	// Distinct pair counting per exchange
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_merged_trades_exchange_pair
		ON merged_trades (exchange, buy_currency, sell_currency)
	`).Error; err != nil {
		return fmt.Errorf("failed to create exchange/pair index: %w", err)
	}

	return nil
}
