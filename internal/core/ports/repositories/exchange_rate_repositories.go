package repositories

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// FindRateTable returns the latest rate of every currency quoted against baseCurrencyCode.
	FindRateTable(ctx context.Context, baseCurrencyCode string) (domain.RateTable, error)
}

// ExchangeRateWriter defines write operations for exchange rate data
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate, or updates the rate already effective on the same date.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error
}

// ExchangeRateRepositoryFacade combines all exchange rate-related repository interfaces
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
