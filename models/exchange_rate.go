package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the current conversion ratio from one currency to the
// reference currency. A single snapshot per pair, no history.
type ExchangeRate struct {
	FromCurrency string `gorm:"primaryKey" json:"from_currency"`
	ToCurrency   string `gorm:"primaryKey" json:"to_currency"`
	// Ratio is the amount of ToCurrency one unit of FromCurrency buys.
	Ratio decimal.Decimal `gorm:"type:numeric;not null" json:"ratio"`
	// Date of the last sync that touched this pair.
	Date time.Time `gorm:"type:date" json:"date"`
}
