package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// ExpenseReader defines read operations for expense data
type ExpenseReader interface {
	// FindExpensesByIDs returns the expenses that exist among expenseIDs.
	// Missing ids are simply absent from the result.
	FindExpensesByIDs(ctx context.Context, expenseIDs []string) ([]domain.Expense, error)
}

// ExpenseWriter defines write operations for expense data
type ExpenseWriter interface {
	// MarkExpensesCalculatedInTx flags the expenses as calculated using the caller's transaction.
	MarkExpensesCalculatedInTx(ctx context.Context, tx pgx.Tx, expenseIDs []string, userID string, at time.Time) error
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces
type ExpenseRepositoryFacade interface {
	ExpenseReader
	ExpenseWriter
}
