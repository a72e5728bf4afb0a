package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Company struct {
	// Ticker symbol of the company. One row per ticker.
	Ticker string `gorm:"primaryKey" json:"ticker"`
	// Company name. Written on first insert, never overwritten.
	Name string `gorm:"not null" json:"name"`
	// Market capitalization in the company's reporting currency.
	MarketCap decimal.Decimal `gorm:"type:numeric;not null" json:"market_cap"`
	// ISO code of the reporting currency.
	Currency string `gorm:"not null" json:"currency"`
	// Date of the observation. Overwritten on every sync.
	Date time.Time `gorm:"type:date" json:"date"`
	// Sector is written on first insert, never overwritten.
	Sector  string `gorm:"not null" json:"sector"`
	Website string `json:"website,omitempty"`
}
