package store

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stockpool/models"
)

// ReferenceCurrency is the currency all stored exchange rates convert into.
const ReferenceCurrency = "USD"

// DefaultSampleCount is how many companies a query returns when the caller
// does not say otherwise.
const DefaultSampleCount = 10

// Store owns all reads and writes against the relational tables.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// UpsertCompanies writes a batch of companies in one transaction. New tickers
// are inserted; existing tickers get their market cap, date, currency and
// website updated, while name and sector keep their first-inserted values.
// Any statement error rolls back the whole batch.
func (s *Store) UpsertCompanies(companies []models.Company) error {
	if len(companies) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return companyUpsert(tx, companies).Error
	})
}

func companyUpsert(tx *gorm.DB, companies []models.Company) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "ticker"}},
		DoUpdates: clause.AssignmentColumns([]string{"market_cap", "date", "currency", "website"}),
	}).Create(&companies)
}

// UpsertExchangeRates writes a batch of rates in one transaction, keyed by the
// (from, to) currency pair. Conflicting pairs get ratio and date updated.
func (s *Store) UpsertExchangeRates(rates []models.ExchangeRate) error {
	if len(rates) == 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		return rateUpsert(tx, rates).Error
	})
}

func rateUpsert(tx *gorm.DB, rates []models.ExchangeRate) *gorm.DB {
	return tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "from_currency"}, {Name: "to_currency"}},
		DoUpdates: clause.AssignmentColumns([]string{"ratio", "date"}),
	}).Create(&rates)
}

// DistinctCurrencies lists every currency currently present among stored
// companies. Feeds the rate sync.
func (s *Store) DistinctCurrencies() ([]string, error) {
	var currencies []string
	err := s.db.Model(&models.Company{}).
		Distinct().
		Pluck("currency", &currencies).Error
	if err != nil {
		return nil, err
	}
	return currencies, nil
}

// SampleParams filter a company sample. Zero values mean "no filter" and the
// default count.
type SampleParams struct {
	// Count caps the number of rows returned. Non-positive means
	// DefaultSampleCount.
	Count int
	// Exclude lists tickers that must not appear in the result.
	Exclude []string
	// Sectors, when non-empty, restricts results to these sectors.
	Sectors []string
}

// SampleCompanies returns up to Count companies drawn uniformly at random
// from the rows matching the filters. Fewer rows come back when fewer
// qualify. Market caps are in each company's stored currency.
func (s *Store) SampleCompanies(p SampleParams) ([]models.Company, error) {
	var companies []models.Company
	if err := sampleQuery(s.db, p).Find(&companies).Error; err != nil {
		return nil, err
	}
	return companies, nil
}

// sampleQuery builds the filtered sample as parameterized clauses. Caller
// input only ever appears as bind variables.
func sampleQuery(db *gorm.DB, p SampleParams) *gorm.DB {
	count := p.Count
	if count <= 0 {
		count = DefaultSampleCount
	}

	q := db.Model(&models.Company{})
	if len(p.Exclude) > 0 {
		q = q.Where("ticker NOT IN ?", p.Exclude)
	}
	if len(p.Sectors) > 0 {
		q = q.Where("sector IN ?", p.Sectors)
	}

	return q.Order("RANDOM()").Limit(count)
}
