package domain

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate stores how many units of ToCurrencyCode one unit of FromCurrencyCode buys.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	AuditFields
}

// RateTable maps a currency code to the units of that currency per one unit
// of the calculation's base currency. The base currency itself is implied at 1.
type RateTable map[string]decimal.Decimal

// Rate returns the rate for code, if present.
func (t RateTable) Rate(code string) (decimal.Decimal, bool) {
	if t == nil {
		return decimal.Zero, false
	}
	r, ok := t[code]
	return r, ok
}

// Codes returns the currency codes in ascending order.
func (t RateTable) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
