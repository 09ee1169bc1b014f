package repositories

import (
	"context"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListActiveCurrencies retrieves all active currencies ordered by code.
	ListActiveCurrencies(ctx context.Context) ([]domain.Currency, error)
}
