package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the export timestamp format (day first, 24h clock).
const DateLayout = "02.01.2006 15:04"

// MergedTrade is the persisted form of one merged trade record.
type MergedTrade struct {
	ID           uint                `gorm:"primaryKey" json:"id"`
	RecordType   string              `gorm:"size:32" json:"record_type"`
	BuyAmount    decimal.NullDecimal `gorm:"type:numeric(30,10)" json:"buy_amount"`
	BuyCurrency  string              `gorm:"size:16" json:"buy_currency"`
	SellAmount   decimal.NullDecimal `gorm:"type:numeric(30,10)" json:"sell_amount"`
	SellCurrency string              `gorm:"size:16" json:"sell_currency"`
	Fee          decimal.NullDecimal `gorm:"type:numeric(30,10)" json:"fee"`
	FeeCurrency  string              `gorm:"size:16" json:"fee_currency"`
	Exchange     string              `gorm:"size:64;index:idx_exchange_date" json:"exchange"`
	TradeGroup   string              `gorm:"size:128" json:"trade_group"`
	Comment      string              `json:"comment"`
	TradeDate    time.Time           `gorm:"index:idx_exchange_date" json:"trade_date"`
	TxID         string              `gorm:"size:128" json:"tx_id"`
	CreatedAt    time.Time           `json:"created_at"`
}

func (MergedTrade) TableName() string {
	return "merged_trades"
}

// TradeStats is the aggregate returned by the API for one exchange.
type TradeStats struct {
	Exchange   string     `json:"exchange"`
	TradeCount int64      `json:"trade_count"`
	PairCount  int64      `json:"pair_count"`
	FirstTrade *time.Time `json:"first_trade,omitempty"`
	LastTrade  *time.Time `json:"last_trade,omitempty"`
}

// NewMergedTrade converts a merged record into its persisted form. String
// fields are trimmed (the export pads them), and the date is parsed from the
// export timestamp format; a date without a time part is accepted.
func NewMergedTrade(r TradeRecord) (MergedTrade, error) {
	tradeDate, err := time.Parse(DateLayout, r.Date)
	if err != nil {
		tradeDate, err = time.Parse("02.01.2006", r.DatePart())
		if err != nil {
			return MergedTrade{}, fmt.Errorf("invalid trade date %q: %w", r.Date, err)
		}
	}

	return MergedTrade{
		RecordType:   strings.TrimSpace(r.RecordType),
		BuyAmount:    r.BuyAmount,
		BuyCurrency:  strings.TrimSpace(r.BuyCurrency),
		SellAmount:   r.SellAmount,
		SellCurrency: strings.TrimSpace(r.SellCurrency),
		Fee:          r.Fee,
		FeeCurrency:  strings.TrimSpace(r.FeeCurrency),
		Exchange:     strings.TrimSpace(r.Exchange),
		TradeGroup:   strings.TrimSpace(r.Group),
		Comment:      strings.TrimSpace(r.Comment),
		TradeDate:    tradeDate,
		TxID:         strings.TrimSpace(r.TxID),
		CreatedAt:    time.Now(),
	}, nil
}
