package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a row of the expenses table.
type Expense struct {
	ExpenseID    string          `json:"expenseID"`
	EventID      string          `json:"eventID"`
	ExpenseType  string          `json:"expenseType"`
	Description  *string         `json:"description"`
	CurrencyCode string          `json:"currencyCode"`
	Amount       decimal.Decimal `json:"amount"`
	ExpenseDate  time.Time       `json:"expenseDate"`
	PaidBy       string          `json:"paidBy"`
	IsCalculated bool            `json:"isCalculated"`
	IsActive     bool            `json:"isActive"`
	AuditFields
}
