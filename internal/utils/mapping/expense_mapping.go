package mapping

import (
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/SscSPs/expense_settlement_app/internal/models"
)

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:    m.ExpenseID,
		EventID:      m.EventID,
		ExpenseType:  m.ExpenseType,
		Description:  derefString(m.Description),
		CurrencyCode: m.CurrencyCode,
		Amount:       m.Amount,
		ExpenseDate:  m.ExpenseDate,
		PaidBy:       m.PaidBy,
		IsCalculated: m.IsCalculated,
		IsActive:     m.IsActive,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
