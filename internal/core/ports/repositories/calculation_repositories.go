package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/expense_settlement_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// CalculationReader defines read operations for calculation records
type CalculationReader interface {
	// FindCalculationByID retrieves a calculation regardless of its active flag.
	FindCalculationByID(ctx context.Context, calculationID string) (*domain.Calculation, error)

	// ListCalculationsByEvent retrieves the active calculations of an event, newest first.
	ListCalculationsByEvent(ctx context.Context, eventID string) ([]domain.Calculation, error)
}

// CalculationWriter defines write operations for calculation records
type CalculationWriter interface {
	// SaveCalculationInTx inserts a new calculation using the caller's transaction.
	SaveCalculationInTx(ctx context.Context, tx pgx.Tx, calculation domain.Calculation) error

	// UpdateShareToken overwrites the share token and its expiry.
	UpdateShareToken(ctx context.Context, calculationID, token string, expiry time.Time, userID string, at time.Time) error

	// DeactivateCalculation marks a calculation inactive.
	DeactivateCalculation(ctx context.Context, calculationID, userID string, at time.Time) error
}

// CalculationRepositoryFacade combines all calculation-related repository interfaces
type CalculationRepositoryFacade interface {
	CalculationReader
	CalculationWriter
}

// CalculationRepositoryWithTx extends CalculationRepositoryFacade with transaction capabilities
type CalculationRepositoryWithTx interface {
	CalculationRepositoryFacade
	TransactionManager
}
