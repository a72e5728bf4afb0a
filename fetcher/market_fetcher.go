package fetcher

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stockpool/core"
	"stockpool/internal"
	"stockpool/internal/yahoo"
	"stockpool/store"
)

// MarketFetcher syncs company market data for a set of tickers.
type MarketFetcher struct {
	store  *store.Store
	client *yahoo.Client
	logger *zap.SugaredLogger
}

func NewMarketFetcher(db *gorm.DB, cfg core.Config) (*MarketFetcher, error) {
	logger, err := internal.NewLogger(cfg.Environment)
	if err != nil {
		return nil, err
	}

	return &MarketFetcher{
		store:  store.New(db),
		client: yahoo.NewClient(cfg.MarketAPIURL, cfg.MarketAPIKey),
		logger: logger,
	}, nil
}

// Run fetches, normalizes and upserts market data for the given tickers.
// Tickers may arrive pre-split or as space-delimited strings. Incomplete
// provider records are skipped and logged; provider or store failures abort
// the run.
func (f *MarketFetcher) Run(tickers []string) error {
	symbols := splitTickers(tickers)
	f.logger.Infof("Syncing market data for %d tickers...", len(symbols))

	quotes, err := f.client.GetQuotes(symbols)
	if err != nil {
		f.logger.Errorf("Failed to fetch market data: %v", err)
		return err
	}

	companies, skipped := NormalizeQuotes(quotes, time.Now())
	for _, symbol := range skipped {
		f.logger.Infof("Skipping %v: incomplete market data", symbol)
	}

	if err := f.store.UpsertCompanies(companies); err != nil {
		f.logger.Errorf("Failed to upsert companies: %v", err)
		return err
	}

	f.logger.Infof("Upserted %d companies", len(companies))
	return nil
}

func splitTickers(tickers []string) []string {
	return strings.Fields(strings.Join(tickers, " "))
}
