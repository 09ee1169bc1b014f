package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/apperrors"
	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_settlement_app/internal/core/ports/repositories"
	"github.com/SscSPs/expense_settlement_app/internal/models"
	"github.com/SscSPs/expense_settlement_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxExpenseRepository reads expenses and flags them once calculated.
type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

// FindExpensesByIDs returns the expenses that exist among expenseIDs.
func (r *PgxExpenseRepository) FindExpensesByIDs(ctx context.Context, expenseIDs []string) ([]domain.Expense, error) {
	if len(expenseIDs) == 0 {
		return []domain.Expense{}, nil
	}

	query := `
		SELECT expense_id, event_id, expense_type, description, currency_code, amount, expense_date,
		       paid_by, is_calculated, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM expenses
		WHERE expense_id = ANY($1);
	`
	rows, err := r.Pool.Query(ctx, query, expenseIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	modelExpenses, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Expense, error) {
		var m models.Expense
		err := row.Scan(
			&m.ExpenseID, &m.EventID, &m.ExpenseType, &m.Description, &m.CurrencyCode, &m.Amount, &m.ExpenseDate,
			&m.PaidBy, &m.IsCalculated, &m.IsActive, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan expenses: %w", err)
	}

	return mapping.ToDomainExpenseSlice(modelExpenses), nil
}

// MarkExpensesCalculatedInTx flags the expenses as calculated using the caller's transaction.
// Every id must match a row that is not yet calculated. A shortfall means a
// concurrent calculation claimed some of them and is reported as a validation error.
func (r *PgxExpenseRepository) MarkExpensesCalculatedInTx(ctx context.Context, tx pgx.Tx, expenseIDs []string, userID string, at time.Time) error {
	if len(expenseIDs) == 0 {
		return nil
	}

	query := `
		UPDATE expenses
		SET is_calculated = TRUE, last_updated_at = $2, last_updated_by = $3
		WHERE expense_id = ANY($1) AND is_calculated = FALSE;
	`
	tag, err := tx.Exec(ctx, query, expenseIDs, at, userID)
	if err != nil {
		return fmt.Errorf("failed to mark expenses calculated: %w", err)
	}
	if tag.RowsAffected() != int64(len(expenseIDs)) {
		return apperrors.NewValidationError(fmt.Sprintf("expense already calculated: expected to mark %d expenses, marked %d", len(expenseIDs), tag.RowsAffected()))
	}
	return nil
}
