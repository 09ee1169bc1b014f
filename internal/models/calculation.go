package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Calculation is a row of the calculations table. The JSONB columns are kept
// as raw bytes and decoded by the mapping layer.
type Calculation struct {
	CalculationID      string
	EventID            string
	BaseCurrency       string
	Purpose            *string
	Options            []byte
	SystemRates        []byte
	CalculationRates   []byte
	InvolvedCurrencies []byte
	ExpensesInvolved   []byte
	LedgerDirect       []byte
	LedgerSimplified   []byte
	TotalAmount        decimal.Decimal
	ParticipantCount   int
	ShareToken         *string
	ShareTokenExpiry   *time.Time
	IsActive           bool
	AuditFields
}
