package settlement

import (
	"fmt"
	"sort"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerPrecision is the number of decimals kept in ledger cells and totals.
const LedgerPrecision int32 = 2

// Normalize converts amount from fromCurrency into baseCurrency. The rate
// table holds units of fromCurrency per one unit of base, so conversion is a
// division. Same-currency amounts pass through untouched whatever the table
// says. The result is not rounded.
func Normalize(amount decimal.Decimal, fromCurrency, baseCurrency string, rates domain.RateTable) (decimal.Decimal, error) {
	if fromCurrency == baseCurrency {
		return amount, nil
	}
	rate, ok := rates.Rate(fromCurrency)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no rate for '%s' against '%s'", apperrors.ErrRateUnavailable, fromCurrency, baseCurrency)
	}
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rate for '%s' must be positive, got %s", apperrors.ErrRateUnavailable, fromCurrency, rate.String())
	}
	return amount.Div(rate), nil
}

// MissingRates lists, in ascending order, every expense currency other than
// the base that has no usable rate in the table.
func MissingRates(expenses []domain.ExpenseShare, baseCurrency string, rates domain.RateTable) []string {
	missing := map[string]struct{}{}
	for _, exp := range expenses {
		if exp.CurrencyCode == baseCurrency {
			continue
		}
		if rate, ok := rates.Rate(exp.CurrencyCode); !ok || !rate.IsPositive() {
			missing[exp.CurrencyCode] = struct{}{}
		}
	}
	codes := make([]string, 0, len(missing))
	for code := range missing {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// InvolvedCurrencies returns the distinct expense currencies, sorted.
func InvolvedCurrencies(expenses []domain.ExpenseShare) []string {
	seen := map[string]struct{}{}
	for _, exp := range expenses {
		seen[exp.CurrencyCode] = struct{}{}
	}
	codes := make([]string, 0, len(seen))
	for code := range seen {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
