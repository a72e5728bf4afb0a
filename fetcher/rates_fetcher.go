package fetcher

import (
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"stockpool/core"
	"stockpool/internal"
	"stockpool/internal/forex"
	"stockpool/store"
)

// RatesFetcher syncs exchange rates for every currency present among stored
// companies.
type RatesFetcher struct {
	store  *store.Store
	client *forex.Client
	logger *zap.SugaredLogger
}

func NewRatesFetcher(db *gorm.DB, cfg core.Config) (*RatesFetcher, error) {
	logger, err := internal.NewLogger(cfg.Environment)
	if err != nil {
		return nil, err
	}

	return &RatesFetcher{
		store:  store.New(db),
		client: forex.NewClient(cfg.ForexAPIURL),
		logger: logger,
	}, nil
}

// Run fetches USD-quoted rates, inverts them into to-USD ratios for the
// stored currencies, and upserts the result. Currencies the provider does
// not cover are skipped and logged.
func (f *RatesFetcher) Run() error {
	currencies, err := f.store.DistinctCurrencies()
	if err != nil {
		f.logger.Errorf("Failed to fetch stored currencies: %v", err)
		return err
	}

	f.logger.Infof("Syncing exchange rates for %d currencies...", len(currencies))

	usdRates, err := f.client.Rates(store.ReferenceCurrency)
	if err != nil {
		f.logger.Errorf("Failed to fetch exchange rates: %v", err)
		return err
	}

	rates, skipped := NormalizeRates(currencies, usdRates, time.Now())
	for _, currency := range skipped {
		f.logger.Infof("Skipping %v: no quote from rate provider", currency)
	}

	if err := f.store.UpsertExchangeRates(rates); err != nil {
		f.logger.Errorf("Failed to upsert exchange rates: %v", err)
		return err
	}

	f.logger.Infof("Upserted %d exchange rates", len(rates))
	return nil
}
