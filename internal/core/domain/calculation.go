package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ShareStatus is the lifecycle state of a calculation's share token.
type ShareStatus string

const (
	ShareAbsent  ShareStatus = "ABSENT"
	ShareActive  ShareStatus = "ACTIVE"
	ShareExpired ShareStatus = "EXPIRED"
)

// CalculationOptions records how the caller selected expenses, split costs
// and picked rates. The values are opaque to the engine.
type CalculationOptions struct {
	ExpenseSelection string `json:"expenseSelection,omitempty"`
	SplitCost        string `json:"splitCost,omitempty"`
	ExchangeRate     string `json:"exchangeRate,omitempty"`
}

// Calculation is the persisted result of one settlement run. It is immutable
// after creation except for IsActive and the share token fields.
type Calculation struct {
	CalculationID      string             `json:"calculationID"`
	EventID            string             `json:"eventID"`
	BaseCurrency       string             `json:"baseCurrency"`
	Purpose            string             `json:"purpose,omitempty"`
	Options            CalculationOptions `json:"options"`
	SystemRates        RateTable          `json:"systemRates,omitempty"`
	CalculationRates   RateTable          `json:"calculationRates"`
	InvolvedCurrencies []string           `json:"involvedCurrencies"`
	ExpensesInvolved   []ExpenseShare     `json:"expensesInvolved"`
	LedgerDirect       DebtLedger         `json:"ledgerDirect"`
	LedgerSimplified   DebtLedger         `json:"ledgerSimplified"`
	TotalAmount        decimal.Decimal    `json:"totalAmount"`
	ParticipantCount   int                `json:"participantCount"`
	ShareToken         string             `json:"-"`
	ShareTokenExpiry   *time.Time         `json:"shareTokenExpiry,omitempty"`
	IsActive           bool               `json:"isActive"`
	AuditFields
}

// ExpenseIDs returns the ids of the expenses that fed this calculation.
func (c *Calculation) ExpenseIDs() []string {
	ids := make([]string, 0, len(c.ExpensesInvolved))
	for _, e := range c.ExpensesInvolved {
		ids = append(ids, e.ExpenseID)
	}
	return ids
}

// SharedCalculation is what an unauthenticated share-link holder gets back.
type SharedCalculation struct {
	Event       Event       `json:"event"`
	Calculation Calculation `json:"calculation"`
}
