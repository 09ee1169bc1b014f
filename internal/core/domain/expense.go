package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a stored expense of an event.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	EventID      string          `json:"eventID"`
	ExpenseType  string          `json:"expenseType"`
	Description  string          `json:"description,omitempty"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	PaidBy       string          `json:"paidBy"`
	IsCalculated bool            `json:"isCalculated"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}

// SplitLine allocates part of an expense to one participant.
type SplitLine struct {
	ParticipantID string          `json:"participantID"`
	Amount        decimal.Decimal `json:"amount"`
}

// ExpenseShare is the cost-split definition of one expense in a calculation.
// The split amounts do not need to add up to Amount.
type ExpenseShare struct {
	ExpenseID    string          `json:"expenseID"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	PaidBy       string          `json:"paidBy"`
	Splits       []SplitLine     `json:"splits"`
}
