package pgsql

import (
	"context"
	"errors"
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

// PgxCalculationRepository stores settlement calculations.
type PgxCalculationRepository struct {
	BaseRepository
}

func newPgxCalculationRepository(pool *pgxpool.Pool) *PgxCalculationRepository {
	return &PgxCalculationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CalculationRepositoryWithTx = (*PgxCalculationRepository)(nil)

const calculationColumns = `
	calculation_id, event_id, base_currency, purpose, options, system_rates, calculation_rates,
	involved_currencies, expenses_involved, ledger_direct, ledger_simplified, total_amount,
	participant_count, share_token, share_token_expiry, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

func scanCalculation(row pgx.CollectableRow) (models.Calculation, error) {
	var m models.Calculation
	err := row.Scan(
		&m.CalculationID, &m.EventID, &m.BaseCurrency, &m.Purpose, &m.Options, &m.SystemRates, &m.CalculationRates,
		&m.InvolvedCurrencies, &m.ExpensesInvolved, &m.LedgerDirect, &m.LedgerSimplified, &m.TotalAmount,
		&m.ParticipantCount, &m.ShareToken, &m.ShareTokenExpiry, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveCalculationInTx inserts a new calculation using the caller's transaction.
func (r *PgxCalculationRepository) SaveCalculationInTx(ctx context.Context, tx pgx.Tx, calculation domain.Calculation) error {
	m, err := mapping.ToModelCalculation(calculation)
	if err != nil {
		return err
	}

	query := `INSERT INTO calculations (` + calculationColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);`

	_, err = tx.Exec(ctx, query,
		m.CalculationID, m.EventID, m.BaseCurrency, m.Purpose, m.Options, m.SystemRates, m.CalculationRates,
		m.InvolvedCurrencies, m.ExpensesInvolved, m.LedgerDirect, m.LedgerSimplified, m.TotalAmount,
		m.ParticipantCount, m.ShareToken, m.ShareTokenExpiry, m.IsActive,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: calculation %s", apperrors.ErrDuplicate, m.CalculationID)
		}
		return fmt.Errorf("failed to insert calculation %s: %w", m.CalculationID, err)
	}
	return nil
}

// FindCalculationByID retrieves a calculation regardless of its active flag.
func (r *PgxCalculationRepository) FindCalculationByID(ctx context.Context, calculationID string) (*domain.Calculation, error) {
	query := `SELECT ` + calculationColumns + ` FROM calculations WHERE calculation_id = $1;`

	rows, err := r.Pool.Query(ctx, query, calculationID)
	if err != nil {
		return nil, fmt.Errorf("failed to find calculation %s: %w", calculationID, err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, scanCalculation)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("calculation " + calculationID + " not found")
		}
		return nil, fmt.Errorf("failed to scan calculation %s: %w", calculationID, err)
	}

	calc, err := mapping.ToDomainCalculation(m)
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

// ListCalculationsByEvent retrieves the active calculations of an event, newest first.
func (r *PgxCalculationRepository) ListCalculationsByEvent(ctx context.Context, eventID string) ([]domain.Calculation, error) {
	query := `SELECT ` + calculationColumns + `
		FROM calculations
		WHERE event_id = $1 AND is_active
		ORDER BY created_at DESC;`

	rows, err := r.Pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to list calculations for event %s: %w", eventID, err)
	}
	modelCalcs, err := pgx.CollectRows(rows, scanCalculation)
	if err != nil {
		return nil, fmt.Errorf("failed to scan calculations for event %s: %w", eventID, err)
	}

	calcs := make([]domain.Calculation, 0, len(modelCalcs))
	for _, m := range modelCalcs {
		calc, err := mapping.ToDomainCalculation(m)
		if err != nil {
			return nil, err
		}
		calcs = append(calcs, calc)
	}
	return calcs, nil
}

// UpdateShareToken overwrites the share token and its expiry.
func (r *PgxCalculationRepository) UpdateShareToken(ctx context.Context, calculationID, token string, expiry time.Time, userID string, at time.Time) error {
	query := `
		UPDATE calculations
		SET share_token = $2, share_token_expiry = $3, last_updated_at = $4, last_updated_by = $5
		WHERE calculation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, calculationID, token, expiry, at, userID)
	if err != nil {
		return fmt.Errorf("failed to update share token of calculation %s: %w", calculationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("calculation " + calculationID + " not found")
	}
	return nil
}

// DeactivateCalculation marks a calculation inactive.
func (r *PgxCalculationRepository) DeactivateCalculation(ctx context.Context, calculationID, userID string, at time.Time) error {
	query := `
		UPDATE calculations
		SET is_active = FALSE, last_updated_at = $2, last_updated_by = $3
		WHERE calculation_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, calculationID, at, userID)
	if err != nil {
		return fmt.Errorf("failed to deactivate calculation %s: %w", calculationID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("calculation " + calculationID + " not found")
	}
	return nil
}
