package dto

import (
	"strings"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SplitLineRequest allocates part of an expense to one participant.
type SplitLineRequest struct {
	ParticipantID string          `json:"participantID" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"decimal_gte0"`
}

// ExpenseShareRequest is one expense submitted for calculation together with its cost split.
type ExpenseShareRequest struct {
	ExpenseID    string             `json:"expenseID" binding:"required"`
	CurrencyCode string             `json:"currencyCode" binding:"required,currency_code"`
	Amount       decimal.Decimal    `json:"amount" binding:"decimal_gte0"`
	PaidBy       string             `json:"paidBy" binding:"required"`
	Splits       []SplitLineRequest `json:"splits" binding:"required,min=1,dive"`
}

// CalculationOptionsRequest records how the caller built the request.
type CalculationOptionsRequest struct {
	ExpenseSelection string `json:"expenseSelection" binding:"max=50"`
	SplitCost        string `json:"splitCost" binding:"max=50"`
	ExchangeRate     string `json:"exchangeRate" binding:"max=50"`
}

// CreateCalculationRequest defines the data needed to run a settlement calculation.
// ExchangeRates, when present, replaces the system rate table for this run.
type CreateCalculationRequest struct {
	BaseCurrency     string                     `json:"baseCurrency" binding:"required,currency_code"`
	Purpose          string                     `json:"purpose" binding:"max=500"`
	Options          CalculationOptionsRequest  `json:"options"`
	ExchangeRates    map[string]decimal.Decimal `json:"exchangeRates,omitempty"`
	ExpensesInvolved []ExpenseShareRequest      `json:"expensesInvolved" binding:"required,min=1,dive"`
}

// ToExpenseShares converts the submitted expenses to domain values with
// upper-cased currency codes.
func (r CreateCalculationRequest) ToExpenseShares() []domain.ExpenseShare {
	shares := make([]domain.ExpenseShare, len(r.ExpensesInvolved))
	for i, e := range r.ExpensesInvolved {
		splits := make([]domain.SplitLine, len(e.Splits))
		for j, s := range e.Splits {
			splits[j] = domain.SplitLine{ParticipantID: s.ParticipantID, Amount: s.Amount}
		}
		shares[i] = domain.ExpenseShare{
			ExpenseID:    e.ExpenseID,
			CurrencyCode: strings.ToUpper(e.CurrencyCode),
			Amount:       e.Amount,
			PaidBy:       e.PaidBy,
			Splits:       splits,
		}
	}
	return shares
}

// CalculationResponse defines the data returned for a calculation. The share
// token itself is only ever returned by the share endpoint.
type CalculationResponse struct {
	CalculationID      string                    `json:"calculationID"`
	EventID            string                    `json:"eventID"`
	BaseCurrency       string                    `json:"baseCurrency"`
	Purpose            string                    `json:"purpose,omitempty"`
	Options            domain.CalculationOptions `json:"options"`
	SystemRates        domain.RateTable          `json:"systemRates,omitempty"`
	CalculationRates   domain.RateTable          `json:"calculationRates"`
	InvolvedCurrencies []string                  `json:"involvedCurrencies"`
	ExpensesInvolved   []domain.ExpenseShare     `json:"expensesInvolved"`
	LedgerDirect       domain.DebtLedger         `json:"ledgerDirect"`
	LedgerSimplified   domain.DebtLedger         `json:"ledgerSimplified"`
	TotalAmount        decimal.Decimal           `json:"totalAmount"`
	ParticipantCount   int                       `json:"participantCount"`
	ShareStatus        domain.ShareStatus        `json:"shareStatus"`
	ShareTokenExpiry   *time.Time                `json:"shareTokenExpiry,omitempty"`
	IsActive           bool                      `json:"isActive"`
	CreatedAt          time.Time                 `json:"createdAt"`
	CreatedBy          string                    `json:"createdBy"`
	LastUpdatedAt      time.Time                 `json:"lastUpdatedAt"`
	LastUpdatedBy      string                    `json:"lastUpdatedBy"`
}

// ToCalculationResponse converts a domain.Calculation to CalculationResponse DTO.
func ToCalculationResponse(c *domain.Calculation, status domain.ShareStatus) CalculationResponse {
	return CalculationResponse{
		CalculationID:      c.CalculationID,
		EventID:            c.EventID,
		BaseCurrency:       c.BaseCurrency,
		Purpose:            c.Purpose,
		Options:            c.Options,
		SystemRates:        c.SystemRates,
		CalculationRates:   c.CalculationRates,
		InvolvedCurrencies: c.InvolvedCurrencies,
		ExpensesInvolved:   c.ExpensesInvolved,
		LedgerDirect:       c.LedgerDirect,
		LedgerSimplified:   c.LedgerSimplified,
		TotalAmount:        c.TotalAmount,
		ParticipantCount:   c.ParticipantCount,
		ShareStatus:        status,
		ShareTokenExpiry:   c.ShareTokenExpiry,
		IsActive:           c.IsActive,
		CreatedAt:          c.CreatedAt,
		CreatedBy:          c.CreatedBy,
		LastUpdatedAt:      c.LastUpdatedAt,
		LastUpdatedBy:      c.LastUpdatedBy,
	}
}

// ListCalculationsResponse wraps the calculations of one event.
type ListCalculationsResponse struct {
	Calculations []CalculationResponse `json:"calculations"`
}
