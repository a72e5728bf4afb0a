package fetcher

import (
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"stockpool/internal/yahoo"
	"stockpool/models"
	"stockpool/store"
)

// NormalizeQuotes maps provider quotes into company records stamped with the
// current date. A quote missing any required field, or carrying a currency
// code money doesn't know, is dropped; its symbol is returned so the caller
// can report it. Input order is preserved.
func NormalizeQuotes(quotes []yahoo.Quote, now time.Time) ([]models.Company, []string) {
	day := dateOf(now)

	var companies []models.Company
	var skipped []string

	for _, q := range quotes {
		if !complete(q) {
			skipped = append(skipped, symbolOf(q))
			continue
		}

		companies = append(companies, models.Company{
			Ticker:    q.Symbol,
			Name:      q.ShortName,
			MarketCap: decimal.NewFromFloat(*q.MarketCap),
			Currency:  q.FinancialCurrency,
			Date:      day,
			Sector:    q.Sector,
			Website:   q.Website,
		})
	}

	return companies, skipped
}

func complete(q yahoo.Quote) bool {
	if q.Symbol == "" || q.ShortName == "" || q.MarketCap == nil || q.Sector == "" {
		return false
	}
	return money.GetCurrency(q.FinancialCurrency) != nil
}

func symbolOf(q yahoo.Quote) string {
	if q.Symbol == "" {
		return "<unknown>"
	}
	return q.Symbol
}

// NormalizeRates turns USD-quoted provider rates ("1 USD = rate × currency")
// into to-USD conversion ratios for every stored currency except the
// reference currency itself. Currencies the provider does not quote, or
// quotes at a non-positive rate, are dropped and returned for reporting.
func NormalizeRates(stored []string, usdRates map[string]decimal.Decimal, now time.Time) ([]models.ExchangeRate, []string) {
	day := dateOf(now)
	one := decimal.NewFromInt(1)

	var rates []models.ExchangeRate
	var skipped []string

	for _, currency := range stored {
		if currency == store.ReferenceCurrency {
			continue
		}

		rate, ok := usdRates[currency]
		if !ok || !rate.IsPositive() {
			skipped = append(skipped, currency)
			continue
		}

		rates = append(rates, models.ExchangeRate{
			FromCurrency: currency,
			ToCurrency:   store.ReferenceCurrency,
			Ratio:        one.Div(rate),
			Date:         day,
		})
	}

	return rates, skipped
}

func dateOf(now time.Time) time.Time {
	year, month, day := now.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
