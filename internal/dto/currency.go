package dto

import (
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
)

// CurrencyResponse defines the data returned for a currency with its system rates.
type CurrencyResponse struct {
	CurrencyCode string           `json:"currencyCode"`
	Symbol       string           `json:"symbol"`
	Name         string           `json:"name"`
	Rates        domain.RateTable `json:"rates"`
}

// MasterDataResponse is the reference data a client needs to build a calculation request.
type MasterDataResponse struct {
	Currencies []CurrencyResponse `json:"currencies"`
}

// ToMasterDataResponse converts currencies with their rate tables to MasterDataResponse DTO
func ToMasterDataResponse(currencies []domain.CurrencyWithRates) MasterDataResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = CurrencyResponse{
			CurrencyCode: curr.CurrencyCode,
			Symbol:       curr.Symbol,
			Name:         curr.Name,
			Rates:        curr.Rates,
		}
	}
	return MasterDataResponse{Currencies: res}
}
