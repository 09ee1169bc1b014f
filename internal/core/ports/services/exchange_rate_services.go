package services

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/SscSPs/expense_settlement_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRateTable returns the system rate table quoted against baseCurrencyCode.
	GetRateTable(ctx context.Context, baseCurrencyCode string) (domain.RateTable, error)

	// GetMasterData lists the active currencies with their rate tables.
	GetMasterData(ctx context.Context) ([]domain.CurrencyWithRates, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate persists a new exchange rate.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
